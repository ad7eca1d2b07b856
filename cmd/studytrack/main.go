package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/studytrack/internal/cli"
	"github.com/alexanderramin/studytrack/internal/db"
	"github.com/alexanderramin/studytrack/internal/repository"
	"github.com/alexanderramin/studytrack/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.studytrack/studytrack.db
	dbPath := os.Getenv("STUDYTRACK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".studytrack", "studytrack.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	planRepo := repository.NewSQLitePlanRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Plans:    service.NewPlanService(planRepo),
		Sessions: service.NewSessionService(sessionRepo, planRepo, uow),
		Stats:    service.NewStatsService(planRepo, sessionRepo),
		Transfer: service.NewTransferService(planRepo, sessionRepo, uow),
	}

	// Detect interactive terminal for wizard forms and the timer view.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
