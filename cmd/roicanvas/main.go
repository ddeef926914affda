package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/dmaselli/roicanvas/internal/cli"
	"github.com/dmaselli/roicanvas/internal/config"
	"github.com/dmaselli/roicanvas/internal/db"
	"github.com/dmaselli/roicanvas/internal/repository"
	"github.com/dmaselli/roicanvas/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.roicanvas/roicanvas.db
	dbPath := os.Getenv("ROICANVAS_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".roicanvas", "roicanvas.db")
	}

	// Determine config path: env var or default ~/.roicanvas/config.yaml
	configPath := os.Getenv("ROICANVAS_CONFIG")
	if configPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		configPath = p
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Open workbook database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repository and services
	initiativeRepo := repository.NewSQLiteInitiativeRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)
	analysisSvc := service.NewAnalysisService(initiativeRepo)

	app := &cli.App{
		Initiatives: service.NewInitiativeService(initiativeRepo, uow),
		Analysis:    analysisSvc,
		Canvas:      service.NewCanvasService(analysisSvc),
		Config:      cfg,
		ConfigPath:  configPath,
	}

	// Detect interactive terminal for the capture form.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
