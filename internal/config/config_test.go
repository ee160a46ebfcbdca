package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	t.Setenv("GCS_BUCKET", "uploads")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_BucketIsRequired(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("GCS_BUCKET", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when GCS_BUCKET is missing")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("GCS_BUCKET", "uploads")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.MaxUploadBytes != 10<<20 {
		t.Fatalf("unexpected MaxUploadBytes: %d", cfg.MaxUploadBytes)
	}
	if cfg.NHLStatsBaseURL != "https://statsapi.web.nhl.com/api/v1" {
		t.Fatalf("unexpected NHLStatsBaseURL: %q", cfg.NHLStatsBaseURL)
	}
	if cfg.NHLStatsTimeout != 0 {
		t.Fatalf("expected no stats client timeout by default, got %s", cfg.NHLStatsTimeout)
	}
}

func TestLoad_MaxUploadBytesValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("GCS_BUCKET", "uploads")
	t.Setenv("MAX_UPLOAD_BYTES", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for MAX_UPLOAD_BYTES=0")
	}

	t.Setenv("MAX_UPLOAD_BYTES", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-numeric MAX_UPLOAD_BYTES")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("GCS_BUCKET", "uploads")
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("GCS_BUCKET", "uploads")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_TimeoutParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("GCS_BUCKET", "uploads")
	t.Setenv("NHLSTATS_TIMEOUT", "20s")
	t.Setenv("APP_READ_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.NHLStatsTimeout != 20*time.Second {
		t.Fatalf("unexpected NHLStatsTimeout: %s", cfg.NHLStatsTimeout)
	}
	if cfg.ReadTimeout != 5*time.Second {
		t.Fatalf("unexpected ReadTimeout: %s", cfg.ReadTimeout)
	}
}
