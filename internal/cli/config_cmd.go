package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmaselli/roicanvas/internal/cli/formatter"
	"github.com/dmaselli/roicanvas/internal/config"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	cmd.AddCommand(newConfigInitCmd(app), newConfigShowCmd(app))
	return cmd
}

func newConfigInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.ConfigPath
			if path == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}

			if err := config.Default().Save(path); err != nil {
				return err
			}

			fmt.Printf("Config written to %s\n", path)
			return nil
		},
	}
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the active configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(app.Config)
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}

			fmt.Println(formatter.Header("Configuration"))
			if app.ConfigPath != "" {
				fmt.Println(formatter.Dim(app.ConfigPath))
			}
			fmt.Print(string(data))
			return nil
		},
	}
}
