package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Port != 8000 {
		t.Errorf("Port = %d, want 8000", cfg.Port)
	}
	if cfg.ProgressBasis != "harga" {
		t.Errorf("ProgressBasis = %q, want harga", cfg.ProgressBasis)
	}
	if cfg.ReconcileTolerance != 1 {
		t.Errorf("ReconcileTolerance = %d, want 1", cfg.ReconcileTolerance)
	}
	if cfg.CatalogCacheTTL != 5*time.Minute {
		t.Errorf("CatalogCacheTTL = %v", cfg.CatalogCacheTTL)
	}
	if len(cfg.CorsAllowedOrigins) != 1 || cfg.CorsAllowedOrigins[0] != "*" {
		t.Errorf("CorsAllowedOrigins = %v", cfg.CorsAllowedOrigins)
	}
	if cfg.TraceSampleRatio != 1 {
		t.Errorf("TraceSampleRatio = %v, want 1", cfg.TraceSampleRatio)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PROGRESS_MILESTONE_BASIS", "TOTAL")
	t.Setenv("STRICT_QUOTES", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://admin.rumahkita.id, https://sales.rumahkita.id")
	t.Setenv("CATALOG_CACHE_TTL", "30s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d", cfg.Port)
	}
	if cfg.ProgressBasis != "total" {
		t.Errorf("ProgressBasis = %q", cfg.ProgressBasis)
	}
	if !cfg.StrictQuotes {
		t.Error("StrictQuotes should be true")
	}
	if len(cfg.CorsAllowedOrigins) != 2 || cfg.CorsAllowedOrigins[1] != "https://sales.rumahkita.id" {
		t.Errorf("CorsAllowedOrigins = %v", cfg.CorsAllowedOrigins)
	}
	if cfg.CatalogCacheTTL != 30*time.Second {
		t.Errorf("CatalogCacheTTL = %v", cfg.CatalogCacheTTL)
	}
	if cfg.LogLevel != "DEBUG" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.Addr() != ":9090" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
}

func TestLoadConfigInvalidBasis(t *testing.T) {
	t.Setenv("PROGRESS_MILESTONE_BASIS", "diskon")

	if _, err := LoadConfig(); err == nil {
		t.Error("expected error for unknown basis")
	}
}

func TestLoadConfigInvalidSampleRatio(t *testing.T) {
	t.Setenv("TRACE_SAMPLE_RATIO", "1.5")

	if _, err := LoadConfig(); err == nil {
		t.Error("expected error for sample ratio above 1")
	}
}
