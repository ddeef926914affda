package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmaselli/roicanvas/internal/config"
	"github.com/dmaselli/roicanvas/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Initiatives service.InitiativeService
	Analysis    service.AnalysisService
	Canvas      service.CanvasService

	Config     *config.Config
	ConfigPath string

	// IsInteractive reports whether stdin is a terminal; the capture form
	// refuses to run against a pipe.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "roicanvas" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "roicanvas",
		Short: "AI initiative ROI analysis and roadmap planner",
	}

	root.AddCommand(
		newInitiativeCmd(app),
		newCaptureCmd(app),
		newPlanCmd(app),
		newCanvasCmd(app),
		newConfigCmd(app),
	)

	return root
}
