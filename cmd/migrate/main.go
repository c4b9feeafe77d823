package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"fitplan/config"
	logs "fitplan/internal/infra/log"
	"fitplan/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

// Supported subcommands:
// - up:     Apply every pending migration
// - down:   Roll back the most recent migration
// - status: Print the applied state of each migration

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "build logger")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "connect postgres")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "get sql.DB")
	}
	defer sqlDB.Close()

	switch command {
	case "up":
		return postgres.Migrate(ctx, sqlDB, logger)

	case "down":
		if err := postgres.MigrateDown(ctx, sqlDB); err != nil {
			return err
		}
		logger.Info("Rolled back latest migration")

		return nil

	case "status":
		statuses, err := postgres.MigrationStatus(ctx, sqlDB)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			logger.Info("Migration",
				slog.String("source", s.Source.Path),
				slog.Int64("version", s.Source.Version),
				slog.String("state", string(s.State)),
			)
		}

		return nil

	default:
		printUsage()

		return errors.Errorf("unknown command %q", command)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: migrate <up|down|status>")
}
