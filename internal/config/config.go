// Package config provides application configuration loaded from an optional
// YAML file and environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	App      AppConfig      `yaml:"app"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string `yaml:"port"`
	ReadTimeout  int    `yaml:"read_timeout"`  // seconds
	WriteTimeout int    `yaml:"write_timeout"` // seconds
	IdleTimeout  int    `yaml:"idle_timeout"`  // seconds
}

// DatabaseConfig holds the connection URL. A postgres:// or postgresql:// URL
// selects PostgreSQL; anything else is treated as a SQLite file path.
type DatabaseConfig struct {
	URL        string `yaml:"url"`
	Debug      bool   `yaml:"debug"`
	MaxRetries int    `yaml:"max_retries"`
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Dev         bool   `yaml:"dev"`
	Migrations  bool   `yaml:"migrations"`
	Seed        bool   `yaml:"seed"`
	DefaultLang string `yaml:"default_lang"`
}

// LogConfig selects the zap level and encoder ("json" or "console").
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

const DefaultSQLitePath = "mantenimiento_v2.db"

// IsPostgres reports whether the URL targets PostgreSQL.
func (d DatabaseConfig) IsPostgres() bool {
	u := strings.ToLower(d.URL)
	return strings.HasPrefix(u, "postgres://") || strings.HasPrefix(u, "postgresql://")
}

// SQLitePath returns the file path for the SQLite driver.
func (d DatabaseConfig) SQLitePath() string {
	p := strings.TrimPrefix(d.URL, "sqlite:///")
	p = strings.TrimPrefix(p, "sqlite://")
	if p == "" {
		return DefaultSQLitePath
	}
	return p
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         "5000",
			ReadTimeout:  15,
			WriteTimeout: 30,
			IdleTimeout:  60,
		},
		Database: DatabaseConfig{
			URL:        DefaultSQLitePath,
			MaxRetries: 5,
		},
		App: AppConfig{
			DefaultLang: "en",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads configuration. Precedence: environment > CONFIG_FILE (YAML) > defaults.
func Load() (*Config, error) {
	cfg := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}
	applyEnv(cfg)
	cfg.Database.URL = normalizeDatabaseURL(cfg.Database.URL)
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Server.Port = getEnv("PORT", cfg.Server.Port)
	cfg.Server.ReadTimeout = getEnvInt("SERVER_READ_TIMEOUT", cfg.Server.ReadTimeout)
	cfg.Server.WriteTimeout = getEnvInt("SERVER_WRITE_TIMEOUT", cfg.Server.WriteTimeout)
	cfg.Server.IdleTimeout = getEnvInt("SERVER_IDLE_TIMEOUT", cfg.Server.IdleTimeout)

	cfg.Database.URL = getEnv("DATABASE_URL", cfg.Database.URL)
	cfg.Database.Debug = getEnvBool("DB_DEBUG", cfg.Database.Debug)
	cfg.Database.MaxRetries = getEnvInt("DB_MAX_RETRIES", cfg.Database.MaxRetries)

	cfg.App.Dev = getEnvBool("DEV", cfg.App.Dev)
	cfg.App.Migrations = getEnvBool("MIGRATIONS", cfg.App.Migrations)
	cfg.App.Seed = getEnvBool("DB_SEED", cfg.App.Seed)
	cfg.App.DefaultLang = getEnv("DEFAULT_LANG", cfg.App.DefaultLang)

	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("LOG_FORMAT", cfg.Log.Format)
}

// normalizeDatabaseURL rewrites Heroku-style postgres:// URLs to postgresql://.
func normalizeDatabaseURL(raw string) string {
	s := strings.Trim(strings.TrimSpace(raw), "\"'")
	if strings.HasPrefix(s, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(s, "postgres://")
	}
	return s
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the integer value of an environment variable or a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

// getEnvBool returns the boolean value of an environment variable or a default.
// Accepts "1", "true", "yes" as true; everything else is false.
func getEnvBool(key string, defaultValue bool) bool {
	value := strings.ToLower(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value == "1" || value == "true" || value == "yes"
}
