package db

import (
	"embed"
	"errors"
	"fmt"

	"github.com/diewo77/go-assets/internal/config"
	"github.com/diewo77/go-assets/internal/models"
	migrate "github.com/golang-migrate/migrate/v4"
	// Registers the postgres/postgresql URL schemes for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Models lists every table the application owns, in creation order.
func Models() []any {
	return []any{&models.Client{}, &models.Equipment{}}
}

// Migrate creates or updates the schema. With useSQL on a PostgreSQL database
// the embedded SQL migrations run through golang-migrate; otherwise gorm's
// AutoMigrate is used.
func Migrate(db *gorm.DB, cfg config.DatabaseConfig, useSQL bool, log *zap.Logger) error {
	if useSQL && cfg.IsPostgres() {
		log.Info("running sql migrations")
		if err := runSQLMigrations(cfg.URL); err != nil {
			return fmt.Errorf("sql migrations failed: %w", err)
		}
	} else {
		for _, m := range Models() {
			if err := db.AutoMigrate(m); err != nil {
				return fmt.Errorf("automigrate %T: %w", m, err)
			}
		}
	}
	for _, table := range []string{"clients", "equipment"} {
		if !db.Migrator().HasTable(table) {
			return errors.New("missing table after migration: " + table)
		}
	}
	return nil
}

func runSQLMigrations(dsn string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return err
	}
	defer m.Close()
	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
