package service

import (
	"context"
	"time"

	"github.com/dmaselli/roicanvas/internal/canvas"
	"github.com/dmaselli/roicanvas/internal/domain"
	"github.com/dmaselli/roicanvas/internal/finance"
	"github.com/dmaselli/roicanvas/internal/portfolio"
	"github.com/dmaselli/roicanvas/internal/roadmap"
)

// InitiativeService manages the captured initiative workbook.
type InitiativeService interface {
	Create(ctx context.Context, in *domain.Initiative) error
	// Resolve finds an initiative by full id, unique id prefix, or exact name.
	Resolve(ctx context.Context, ref string) (*domain.Initiative, error)
	List(ctx context.Context) ([]*domain.Initiative, error)
	Update(ctx context.Context, in *domain.Initiative) error
	Delete(ctx context.Context, id string) error
	// ImportFile loads a JSON batch into the workbook. Validation problems
	// are returned together, and the batch is inserted atomically: nothing
	// is persisted when any record is invalid or any insert fails.
	ImportFile(ctx context.Context, path string) (int, []error, error)
}

// AnalysisRequest carries every policy knob the pipeline needs, so a run is
// fully determined by the request plus the workbook contents.
type AnalysisRequest struct {
	FinancePolicy finance.Policy
	Weights       portfolio.Weights
	Selection     portfolio.Config
	RoadmapPolicy roadmap.Policy
	PlanStart     time.Time
}

// AnalysisResult is the output of one full pipeline run.
type AnalysisResult struct {
	Initiatives []domain.Initiative
	Metrics     []finance.Metrics
	Summary     finance.PortfolioSummary
	Scored      []portfolio.ScoredInitiative
	Portfolio   *portfolio.Portfolio
	Roadmap     []roadmap.Entry
}

// AnalysisService runs the finance, scoring, selection and roadmap stages
// over the captured workbook.
type AnalysisService interface {
	Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error)
}

// CanvasService assembles the full canvas document from an analysis run.
type CanvasService interface {
	Build(ctx context.Context, meta canvas.Meta, req AnalysisRequest) (*canvas.Canvas, *AnalysisResult, error)
}
