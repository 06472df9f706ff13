package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/diewo77/go-assets/internal/config"
	"github.com/diewo77/go-assets/internal/db"
	"github.com/diewo77/go-assets/internal/server"
	"github.com/diewo77/go-assets/view"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App owns the database handle and the HTTP server.
type App struct {
	cfg *config.Config
	log *zap.Logger
	db  *gorm.DB
	srv *http.Server
}

// NewApp connects to the database and builds the HTTP server.
func NewApp(cfg *config.Config, log *zap.Logger) (*App, error) {
	conn, err := db.Connect(cfg.Database, log)
	if err != nil {
		return nil, err
	}
	view.SetDev(cfg.App.Dev)
	a := &App{cfg: cfg, log: log, db: conn}
	a.srv = &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      server.New(conn, server.Options{DefaultLang: cfg.App.DefaultLang, Logger: log}),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}
	return a, nil
}

// Handler exposes the root handler.
func (a *App) Handler() http.Handler { return a.srv.Handler }

// Migrate creates the schema; SQL migrations run when MIGRATIONS is enabled.
func (a *App) Migrate() error {
	if err := db.Migrate(a.db, a.cfg.Database, a.cfg.App.Migrations, a.log); err != nil {
		return err
	}
	a.log.Info("migrations completed")
	return nil
}

func (a *App) Seed() error {
	if err := db.Seed(a.db); err != nil {
		return err
	}
	a.log.Info("seeding completed")
	return nil
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.log.Info("server starting", zap.String("addr", a.srv.Addr), zap.Bool("dev", a.cfg.App.Dev))
		if err := a.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	a.log.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	a.log.Info("server stopped gracefully")
	return nil
}

// Close releases the database connection.
func (a *App) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
