package config

import (
	"errors"
	"path/filepath"
	"testing"

	"codeberg.org/snonux/cloudtranslate/internal/testutil"
)

func TestLoad(t *testing.T) {
	dir := testutil.CreateStateDir(t, `{"google_api_key": "test-key", "monthly_limit": 100000}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.GoogleAPIKey != "test-key" {
		t.Errorf("Expected key 'test-key', got %q", cfg.GoogleAPIKey)
	}
	if cfg.MonthlyLimit != 100000 {
		t.Errorf("Expected limit 100000, got %d", cfg.MonthlyLimit)
	}
	if cfg.Provider != "google" {
		t.Errorf("Expected default provider 'google', got %q", cfg.Provider)
	}
	if cfg.Dir != dir {
		t.Errorf("Expected dir %q, got %q", dir, cfg.Dir)
	}
}

func TestLoadDefaultLimit(t *testing.T) {
	dir := testutil.CreateStateDir(t, `{"google_api_key": "test-key"}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MonthlyLimit != DefaultMonthlyLimit {
		t.Errorf("Expected default limit %d, got %d", DefaultMonthlyLimit, cfg.MonthlyLimit)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("Expected error for missing config.json")
	}
	var cerr *Error
	if !errors.As(err, &cerr) {
		t.Fatalf("Expected config.Error, got %T", err)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := testutil.CreateStateDir(t, `{broken`)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("Expected error for malformed config.json")
	}
	var cerr *Error
	if !errors.As(err, &cerr) {
		t.Fatalf("Expected config.Error, got %T", err)
	}
}

func TestLoadProviderSelection(t *testing.T) {
	dir := testutil.CreateStateDir(t, `{"provider": "openai", "openai_api_key": "sk-test"}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Provider != "openai" {
		t.Errorf("Expected provider 'openai', got %q", cfg.Provider)
	}
	if cfg.OpenAIAPIKey != "sk-test" {
		t.Errorf("Expected openai key 'sk-test', got %q", cfg.OpenAIAPIKey)
	}
}

func TestLoadEnvOverridesKey(t *testing.T) {
	dir := testutil.CreateStateDir(t, `{"google_api_key": "from-file"}`)
	t.Setenv("GOOGLE_API_KEY", "from-env")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.GoogleAPIKey != "from-env" {
		t.Errorf("Expected env var to win, got %q", cfg.GoogleAPIKey)
	}
}

func TestStatePaths(t *testing.T) {
	cfg := &Config{Dir: "/data"}

	if got := cfg.UsagePath(); got != filepath.Join("/data", "usage.json") {
		t.Errorf("Unexpected usage path %q", got)
	}
	if got := cfg.HistoryPath(); got != filepath.Join("/data", "history.json") {
		t.Errorf("Unexpected history path %q", got)
	}
}
