package service

import (
	"context"
	"fmt"

	"github.com/dmaselli/roicanvas/internal/domain"
	"github.com/dmaselli/roicanvas/internal/finance"
	"github.com/dmaselli/roicanvas/internal/portfolio"
	"github.com/dmaselli/roicanvas/internal/repository"
	"github.com/dmaselli/roicanvas/internal/roadmap"
)

type analysisService struct {
	initiatives repository.InitiativeRepo
}

func NewAnalysisService(initiatives repository.InitiativeRepo) AnalysisService {
	return &analysisService{initiatives: initiatives}
}

// Analyze runs the full pipeline over the workbook in capture order. The
// stages are pure, so the result is fully determined by the workbook
// contents and the request.
func (s *analysisService) Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error) {
	if err := req.Selection.Validate(); err != nil {
		return nil, err
	}

	stored, err := s.initiatives.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(stored) == 0 {
		return nil, fmt.Errorf("no initiatives captured yet")
	}

	batch := make([]domain.Initiative, len(stored))
	for i, in := range stored {
		batch[i] = *in
	}

	metrics := finance.ComputeBatch(req.FinancePolicy, batch)

	scored, err := portfolio.ScoreBatch(batch, metrics, req.Weights)
	if err != nil {
		return nil, fmt.Errorf("scoring initiatives: %w", err)
	}

	selected, err := portfolio.Select(scored, req.Selection)
	if err != nil {
		return nil, err
	}

	entries := roadmap.Generate(req.RoadmapPolicy, selected.Accepted, req.PlanStart)

	return &AnalysisResult{
		Initiatives: batch,
		Metrics:     metrics,
		Summary:     finance.Summarize(metrics),
		Scored:      scored,
		Portfolio:   selected,
		Roadmap:     entries,
	}, nil
}
