package db

import (
	"fmt"
	"net/url"
	"time"

	"github.com/diewo77/go-assets/internal/config"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// retryDelay is the pause between connection attempts.
var retryDelay = 2 * time.Second

// Connect opens the database selected by cfg, retrying while the server starts up.
func Connect(cfg config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.Debug {
		logLevel = logger.Info
	}
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel), TranslateError: true}

	var dialector gorm.Dialector
	if cfg.IsPostgres() {
		dialector = postgres.Open(cfg.URL)
		log.Info("connecting to database", zap.String("driver", "postgres"), zap.String("url", maskURL(cfg.URL)))
	} else {
		dialector = sqlite.Open(cfg.SQLitePath())
		log.Info("connecting to database", zap.String("driver", "sqlite"), zap.String("path", cfg.SQLitePath()))
	}

	attempts := cfg.MaxRetries
	if attempts < 1 {
		attempts = 1
	}
	var db *gorm.DB
	var err error
	for i := 0; i < attempts; i++ {
		db, err = gorm.Open(dialector, gcfg)
		if err == nil {
			break
		}
		log.Warn("database connection failed", zap.Int("attempt", i+1), zap.Int("max", attempts), zap.Error(err))
		if i < attempts-1 {
			time.Sleep(retryDelay)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database after %d attempts: %w", attempts, err)
	}
	if pingErr := db.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}
	return db, nil
}

// maskURL hides the password of a connection URL for logging.
func maskURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<invalid url>"
	}
	return u.Redacted()
}
