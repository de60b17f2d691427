package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.SourceURL != DefaultSourceURL {
		t.Fatalf("source_url = %q", cfg.SourceURL)
	}
	if cfg.UserAgent != "Mozilla/5.0" {
		t.Fatalf("user_agent = %q", cfg.UserAgent)
	}
	if cfg.FetchTimeout != 10*time.Second {
		t.Fatalf("fetch_timeout = %s", cfg.FetchTimeout)
	}
	if cfg.LogLevel != "error" {
		t.Fatalf("log_level = %q", cfg.LogLevel)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SOURCE_URL", "https://example.com/front")
	t.Setenv("FETCH_TIMEOUT_SECONDS", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SourceURL != "https://example.com/front" {
		t.Fatalf("source_url = %q", cfg.SourceURL)
	}
	if cfg.FetchTimeout != 3*time.Second {
		t.Fatalf("fetch_timeout = %s", cfg.FetchTimeout)
	}
}

func TestLoadRejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT_SECONDS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero timeout")
	}
}
