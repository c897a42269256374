package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.UniProt.BaseURL != "https://rest.uniprot.org/uniprotkb/search" {
		t.Errorf("unexpected base URL: %s", cfg.UniProt.BaseURL)
	}
	if cfg.UniProt.PageSize != 500 {
		t.Errorf("expected page size 500, got %d", cfg.UniProt.PageSize)
	}
	if cfg.RateLimit.RequestDelay != Duration(340*time.Millisecond) {
		t.Errorf("expected 340ms request delay, got %v", cfg.RateLimit.RequestDelay)
	}
	if cfg.Retry.MaxAttempts != 5 {
		t.Errorf("expected 5 retry attempts, got %d", cfg.Retry.MaxAttempts)
	}
	if cfg.Output.File != "uniprot_output.tsv" {
		t.Errorf("unexpected default output file: %s", cfg.Output.File)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "upfetch.yaml")
	content := `
uniprot:
  page_size: 100
  user_agent: "custom-agent/2.0"
rate_limit:
  request_delay: 500ms
output:
  file: "custom.tsv"
logging:
  level: "debug"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg := DefaultConfig()
	if err := cfg.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if cfg.UniProt.PageSize != 100 {
		t.Errorf("expected page size 100, got %d", cfg.UniProt.PageSize)
	}
	if cfg.UniProt.UserAgent != "custom-agent/2.0" {
		t.Errorf("unexpected user agent: %s", cfg.UniProt.UserAgent)
	}
	if cfg.RateLimit.RequestDelay != Duration(500*time.Millisecond) {
		t.Errorf("expected 500ms delay, got %v", cfg.RateLimit.RequestDelay)
	}
	if cfg.Output.File != "custom.tsv" {
		t.Errorf("unexpected output file: %s", cfg.Output.File)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("unexpected log level: %s", cfg.Logging.Level)
	}
	// Untouched fields keep their defaults
	if cfg.UniProt.BaseURL != "https://rest.uniprot.org/uniprotkb/search" {
		t.Errorf("base URL should keep default, got %s", cfg.UniProt.BaseURL)
	}
}

func TestLoadFromFileInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("uniprot: [not a map"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg := DefaultConfig()
	if err := cfg.LoadFromFile(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("UPFETCH_OUTPUT", "env.tsv")
	t.Setenv("UPFETCH_PAGE_SIZE", "250")
	t.Setenv("UPFETCH_REQUEST_DELAY_MS", "100")
	t.Setenv("UPFETCH_LOG_LEVEL", "warn")

	cfg := DefaultConfig()
	if err := cfg.LoadFromEnv(); err != nil {
		t.Fatalf("LoadFromEnv failed: %v", err)
	}

	if cfg.Output.File != "env.tsv" {
		t.Errorf("unexpected output file: %s", cfg.Output.File)
	}
	if cfg.UniProt.PageSize != 250 {
		t.Errorf("expected page size 250, got %d", cfg.UniProt.PageSize)
	}
	if cfg.RateLimit.RequestDelay != Duration(100*time.Millisecond) {
		t.Errorf("expected 100ms delay, got %v", cfg.RateLimit.RequestDelay)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("unexpected log level: %s", cfg.Logging.Level)
	}
}

func TestMergeCommandLineFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MergeCommandLineFlags(map[string]interface{}{
		"output":      "flag.tsv",
		"page-size":   50,
		"max-retries": 7,
		"log-level":   "debug",
	})

	if cfg.Output.File != "flag.tsv" {
		t.Errorf("unexpected output file: %s", cfg.Output.File)
	}
	if cfg.UniProt.PageSize != 50 {
		t.Errorf("expected page size 50, got %d", cfg.UniProt.PageSize)
	}
	if cfg.Retry.MaxAttempts != 7 {
		t.Errorf("expected 7 retry attempts, got %d", cfg.Retry.MaxAttempts)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("unexpected log level: %s", cfg.Logging.Level)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty base URL", func(c *Config) { c.UniProt.BaseURL = "" }},
		{"non-http base URL", func(c *Config) { c.UniProt.BaseURL = "ftp://example.org" }},
		{"empty fields", func(c *Config) { c.UniProt.Fields = "" }},
		{"zero page size", func(c *Config) { c.UniProt.PageSize = 0 }},
		{"oversized page", func(c *Config) { c.UniProt.PageSize = 1000 }},
		{"no pacing at all", func(c *Config) { c.RateLimit.RequestDelay = 0; c.RateLimit.RequestsPerMinute = 0 }},
		{"zero retries", func(c *Config) { c.Retry.MaxAttempts = 0 }},
		{"multiplier below one", func(c *Config) { c.Retry.Multiplier = 0.5 }},
		{"empty output path", func(c *Config) { c.Output.File = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "upfetch.yaml")
	if err := os.WriteFile(path, []byte("output:\n  file: \"file.tsv\"\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("UPFETCH_OUTPUT", "env.tsv")

	// Flags beat environment, which beats the file
	cfg, err := Load(path, map[string]interface{}{"output": "flag.tsv"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output.File != "flag.tsv" {
		t.Errorf("expected flag value to win, got %s", cfg.Output.File)
	}

	cfg, err = Load(path, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Output.File != "env.tsv" {
		t.Errorf("expected env value to win over file, got %s", cfg.Output.File)
	}
}
