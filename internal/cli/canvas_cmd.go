package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmaselli/roicanvas/internal/canvas"
	"github.com/dmaselli/roicanvas/internal/cli/formatter"
)

func newCanvasCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "canvas",
		Short: "Assemble the ROI canvas from the captured workbook",
	}

	cmd.AddCommand(newCanvasShowCmd(app), newCanvasExportCmd(app))
	return cmd
}

func canvasMeta(app *App) canvas.Meta {
	org := app.Config.Organization
	return canvas.Meta{
		Organization:   org.Name,
		DesignedBy:     org.DesignedBy,
		DesignedFor:    org.DesignedFor,
		PrimaryGoal:    org.PrimaryGoal,
		StrategicFocus: org.StrategicFocus,
	}
}

func newCanvasShowCmd(app *App) *cobra.Command {
	var (
		budget      float64
		maxProjects int
		minROI      float64
		startDate   string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render the canvas to the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := analysisRequest(app, cmd, budget, maxProjects, minROI, startDate)
			if err != nil {
				return err
			}

			c, _, err := app.Canvas.Build(context.Background(), canvasMeta(app), req)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatCanvas(c))
			return nil
		},
	}

	registerPlanFlags(cmd, &budget, &maxProjects, &minROI, &startDate)
	return cmd
}

func newCanvasExportCmd(app *App) *cobra.Command {
	var (
		budget      float64
		maxProjects int
		minROI      float64
		startDate   string
		outPath     string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the canvas as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := analysisRequest(app, cmd, budget, maxProjects, minROI, startDate)
			if err != nil {
				return err
			}

			c, _, err := app.Canvas.Build(context.Background(), canvasMeta(app), req)
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(c, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding canvas: %w", err)
			}
			data = append(data, '\n')

			if outPath == "" {
				fmt.Print(string(data))
				return nil
			}
			if err := os.WriteFile(outPath, data, 0644); err != nil {
				return fmt.Errorf("writing canvas: %w", err)
			}

			fmt.Printf("Canvas written to %s\n", outPath)
			return nil
		},
	}

	registerPlanFlags(cmd, &budget, &maxProjects, &minROI, &startDate)
	cmd.Flags().StringVar(&outPath, "out", "", "Output file (default stdout)")
	return cmd
}
