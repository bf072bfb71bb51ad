package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/lmarsden/mentorlog/internal/cli"
	"github.com/lmarsden/mentorlog/internal/config"
	"github.com/lmarsden/mentorlog/internal/db"
	"github.com/lmarsden/mentorlog/internal/repository"
	"github.com/lmarsden/mentorlog/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	dayRepo := repository.NewSQLiteDayLogRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	days := service.NewDayService(dayRepo)

	app := &cli.App{
		Days:       days,
		Sessions:   service.NewSessionService(sessionRepo, days, cfg),
		Export:     service.NewExportService(sessionRepo, cfg.ExportDir),
		Seeder:     service.NewSeedService(uow),
		Stats:      service.NewStatsService(dayRepo, sessionRepo),
		Categories: cfg.Categories,
		Interactive: isatty.IsTerminal(os.Stdin.Fd()) ||
			isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}

	return cli.NewRootCmd(app).Execute()
}
