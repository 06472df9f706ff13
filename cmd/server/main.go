package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/diewo77/go-assets/internal/config"
	"github.com/diewo77/go-assets/internal/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var (
	migrateOnlyFlag = flag.Bool("migrate-only", false, "Run DB migrations and exit")
	seedOnlyFlag    = flag.Bool("seed-only", false, "Run DB seed and exit")
)

func main() {
	flag.Parse()

	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	code := execute(cfg, log)
	_ = log.Sync()
	os.Exit(code)
}

// execute runs the app and maps its outcome to a process exit code.
func execute(cfg *config.Config, log *zap.Logger) int {
	if err := run(cfg, log); err != nil {
		log.Error("fatal", zap.Error(err))
		return 1
	}
	return 0
}

func run(cfg *config.Config, log *zap.Logger) error {
	app, err := NewApp(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() { _ = app.Close() }()

	if *migrateOnlyFlag {
		return app.Migrate()
	}
	if *seedOnlyFlag {
		if err := app.Migrate(); err != nil {
			return err
		}
		return app.Seed()
	}

	if err := app.Migrate(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	if cfg.App.Seed {
		if err := app.Seed(); err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return app.Run(ctx)
}
