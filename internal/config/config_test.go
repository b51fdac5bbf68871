package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "jobbridge")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_NAME", "jobbridge")
	t.Setenv("DB_USER", "jobbridge")
	t.Setenv("JWT_ACCESS_SECRET", "access")
	t.Setenv("JWT_REFRESH_SECRET", "refresh")
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Chdir(t.TempDir())
	setRequired(t)
	t.Setenv("HTTP_PORT", "")
	t.Setenv("JWT_ACCESS_SECRET", "")

	_, err := Load()
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected errMissingRequiredEnv, got %v", err)
	}
	if !strings.Contains(err.Error(), "HTTP_PORT") || !strings.Contains(err.Error(), "JWT_ACCESS_SECRET") {
		t.Fatalf("error should name every missing key: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	setRequired(t)
	t.Setenv("MATCHING_TIMEOUT", "")
	t.Setenv("S3_BUCKET", "")
	t.Setenv("RABBITMQ_URL", "")
	t.Setenv("DB_SLOW_QUERY_THRESHOLD", "")
	t.Setenv("REDIS_DB", "")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.App.MatchingTimeout != 5*time.Second {
		t.Fatalf("unexpected matching timeout %s", cfg.App.MatchingTimeout)
	}
	if cfg.Database.SlowQueryThreshold != 500*time.Millisecond || cfg.Redis.DB != 0 {
		t.Fatalf("unexpected slow query threshold %s / redis db %d", cfg.Database.SlowQueryThreshold, cfg.Redis.DB)
	}
	if cfg.Database.DBSSLMode != "disable" {
		t.Fatalf("unexpected ssl mode %q", cfg.Database.DBSSLMode)
	}
	if cfg.Storage.Enabled() || cfg.Events.Enabled() {
		t.Fatalf("storage and events should be disabled by default")
	}
	if len(cfg.App.CORSOrigins) != 2 || cfg.App.CORSOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected cors origins %v", cfg.App.CORSOrigins)
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Chdir(t.TempDir())
	setRequired(t)
	t.Setenv("MATCHING_TIMEOUT", "soon")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "MATCHING_TIMEOUT") {
		t.Fatalf("expected invalid MATCHING_TIMEOUT error, got %v", err)
	}
}
