package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmaselli/roicanvas/internal/cli/formatter"
	"github.com/dmaselli/roicanvas/internal/service"
)

func newPlanCmd(app *App) *cobra.Command {
	var (
		budget      float64
		maxProjects int
		minROI      float64
		startDate   string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Score, select and schedule the captured initiatives",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := analysisRequest(app, cmd, budget, maxProjects, minROI, startDate)
			if err != nil {
				return err
			}

			result, err := app.Analysis.Analyze(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatSummary(result.Summary))
			fmt.Println(formatter.FormatScoreTable(result.Scored))
			fmt.Println(formatter.FormatMatrix(result.Scored))
			fmt.Println(formatter.FormatPortfolio(result.Portfolio))
			fmt.Println(formatter.FormatRoadmap(result.Roadmap))
			return nil
		},
	}

	registerPlanFlags(cmd, &budget, &maxProjects, &minROI, &startDate)
	return cmd
}

// registerPlanFlags binds the selection overrides shared by plan and canvas.
func registerPlanFlags(cmd *cobra.Command, budget *float64, maxProjects *int, minROI *float64, startDate *string) {
	cmd.Flags().Float64Var(budget, "budget", 0, "Budget limit over the analysis window (overrides config)")
	cmd.Flags().IntVar(maxProjects, "max-projects", 0, "Maximum number of funded initiatives (overrides config)")
	cmd.Flags().Float64Var(minROI, "min-roi", 0, "Minimum ROI percent to consider (overrides config)")
	cmd.Flags().StringVar(startDate, "start-date", "", "Plan start date, YYYY-MM-DD (default today)")
}

// analysisRequest builds the pipeline request from config plus any flag
// overrides the user set on this invocation.
func analysisRequest(app *App, cmd *cobra.Command, budget float64, maxProjects int, minROI float64, startDate string) (service.AnalysisRequest, error) {
	selection := app.Config.PortfolioConfig()
	if cmd.Flags().Changed("budget") {
		selection.BudgetLimit = budget
	}
	if cmd.Flags().Changed("max-projects") {
		selection.MaxProjects = maxProjects
	}
	if cmd.Flags().Changed("min-roi") {
		selection.MinROIThreshold = minROI
	}

	planStart := time.Now().UTC().Truncate(24 * time.Hour)
	if startDate != "" {
		t, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			return service.AnalysisRequest{}, fmt.Errorf("invalid --start-date %q: expected YYYY-MM-DD", startDate)
		}
		planStart = t
	}

	return service.AnalysisRequest{
		FinancePolicy: app.Config.FinancePolicy(),
		Weights:       app.Config.ScoreWeights(),
		Selection:     selection,
		RoadmapPolicy: app.Config.RoadmapPolicy(),
		PlanStart:     planStart,
	}, nil
}
