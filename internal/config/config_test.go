package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("debug: true\n"), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Debug {
		t.Error("debug flag not parsed")
	}
	if cfg.Server.Host != "localhost" || cfg.Server.Port != 8080 {
		t.Errorf("server defaults = %s:%d", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.Search.FuzzyThreshold != 0.6 {
		t.Errorf("fuzzy threshold default = %v, want 0.6", cfg.Search.FuzzyThreshold)
	}
	if cfg.Enricher.Model != "gemini-2.0-flash" {
		t.Errorf("enricher model default = %q", cfg.Enricher.Model)
	}
}

func TestLoadExplicitValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  host: 0.0.0.0
  port: 9090
search:
  fuzzy_threshold: 0.8
  suggestion_limit: 10
enricher:
  enabled: true
  model: gemini-1.5-pro
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Search.FuzzyThreshold != 0.8 {
		t.Errorf("fuzzy threshold = %v, want 0.8", cfg.Search.FuzzyThreshold)
	}
	if !cfg.Enricher.Enabled || cfg.Enricher.Model != "gemini-1.5-pro" {
		t.Errorf("enricher config = %+v", cfg.Enricher)
	}
}

func TestLoadRelativeDatabasePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("storage:\n  database_path: ./data/sessions.db\n"), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := filepath.Join(dir, "data", "sessions.db")
	if cfg.Storage.DatabasePath != want {
		t.Errorf("database path = %q, want %q", cfg.Storage.DatabasePath, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestAPIKeyFromEnvironment(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	cfg := &Config{Enricher: EnricherConfig{APIKey: "file-key"}}
	ApplyDefaults(cfg)
	if cfg.Enricher.APIKey != "env-key" {
		t.Errorf("api key = %q, want environment to win", cfg.Enricher.APIKey)
	}
}
