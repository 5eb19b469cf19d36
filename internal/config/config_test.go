package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BackendURL != DefaultBackendURL || cfg.MaxResults != DefaultMaxResults {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}

	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("default config not written: %v", err)
	}
	if perm := fi.Mode().Perm(); perm != 0o600 {
		t.Errorf("perm = %o, want 600", perm)
	}
}

func TestLoadNormalizesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "backend_url: http://api.local:8000/\ntheme: NEON\nmax_results: -3\nmonth_split:\n  limit_past: 5\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BackendURL != "http://api.local:8000" {
		t.Errorf("BackendURL = %q, trailing slash should be trimmed", cfg.BackendURL)
	}
	if cfg.Theme != "neon" {
		t.Errorf("Theme = %q, want neon", cfg.Theme)
	}
	if cfg.MaxResults != DefaultMaxResults {
		t.Errorf("MaxResults = %d, want default", cfg.MaxResults)
	}
	if cfg.MonthSplit.LimitPast != 5 || cfg.MonthSplit.LimitFuture != 50 {
		t.Errorf("MonthSplit = %+v", cfg.MonthSplit)
	}
	if cfg.DateLayout != DefaultDateLayout {
		t.Errorf("DateLayout = %q", cfg.DateLayout)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("backend_url: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PLANNER_BACKEND_URL", "https://example.org/")
	t.Setenv("PLANNER_THEME", "mono")
	t.Setenv("PLANNER_LOG_LEVEL", "debug")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	if cfg.BackendURL != "https://example.org" || cfg.Theme != "mono" || cfg.LogLevel != "debug" {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad scheme", func(c *Config) { c.BackendURL = "ftp://host" }, true},
		{"bad timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }, true},
		{"good timezone", func(c *Config) { c.Timezone = "UTC" }, false},
		{"bad cron", func(c *Config) { c.Refresh = "every minute" }, true},
		{"good cron", func(c *Config) { c.Refresh = "*/5 * * * *" }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestLoadReturnsDefaultsWhenSaveFails(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(filepath.Join(blocker, "config.yaml"))
	if err == nil {
		t.Fatal("expected save error")
	}
	if cfg == nil || cfg.BackendURL != DefaultBackendURL {
		t.Fatalf("want usable defaults, got %+v", cfg)
	}
}
