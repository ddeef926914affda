package service

import (
	"context"
	"time"

	"github.com/dmaselli/roicanvas/internal/canvas"
)

type canvasService struct {
	analysis AnalysisService
}

func NewCanvasService(analysis AnalysisService) CanvasService {
	return &canvasService{analysis: analysis}
}

// Build runs the analysis pipeline and assembles the canvas document from
// its outputs. The returned result lets callers render the intermediate
// stages alongside the canvas.
func (s *canvasService) Build(ctx context.Context, meta canvas.Meta, req AnalysisRequest) (*canvas.Canvas, *AnalysisResult, error) {
	result, err := s.analysis.Analyze(ctx, req)
	if err != nil {
		return nil, nil, err
	}

	if meta.Date.IsZero() {
		meta.Date = time.Now().UTC()
	}

	c := canvas.Assemble(meta, result.Initiatives, result.Portfolio, result.Roadmap)
	return &c, result, nil
}
