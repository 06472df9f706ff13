package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/diewo77/go-assets/internal/config"
	"go.uber.org/zap"
)

func newE2EApp(t *testing.T) *App {
	t.Helper()
	cfg := &config.Config{
		Server:   config.ServerConfig{Port: "0", ReadTimeout: 5, WriteTimeout: 5, IdleTimeout: 5},
		Database: config.DatabaseConfig{URL: filepath.Join(t.TempDir(), "e2e.db"), MaxRetries: 1},
		App:      config.AppConfig{DefaultLang: "en"},
	}
	app, err := NewApp(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })
	if err := app.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := app.Seed(); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return app
}

func TestSeededReportE2E(t *testing.T) {
	app := newE2EApp(t)
	h := app.Handler()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/clients", nil))
	var clients []struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &clients); err != nil || len(clients) != 2 {
		t.Fatalf("clients = %s, %v", w.Body.String(), err)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/export-pdf", nil))
	if w.Code != http.StatusOK || !strings.HasPrefix(w.Body.String(), "%PDF") {
		t.Fatalf("global pdf = %d", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, "reporte_mantenimiento.pdf") {
		t.Fatalf("disposition = %q", got)
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?client_id=1", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Client: Hospital Central") {
		t.Fatalf("dashboard = %d", w.Code)
	}
}

func TestMigrateTwiceE2E(t *testing.T) {
	app := newE2EApp(t)
	if err := app.Migrate(); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
	if err := app.Seed(); err != nil {
		t.Fatalf("second seed: %v", err)
	}
}
