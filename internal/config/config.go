package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBackendURL = "http://127.0.0.1:5000"
	DefaultDateLayout = "02.01.2006, 15:04:05"
	DefaultMaxResults = 20
)

// MonthSplitConfig bounds the two lists returned by the month-split endpoint.
type MonthSplitConfig struct {
	LimitPast   int `yaml:"limit_past"`
	LimitFuture int `yaml:"limit_future"`
}

// Config is the top-level client configuration.
type Config struct {
	// BackendURL is the base URL of the calendar/fitness/food API.
	BackendURL string `yaml:"backend_url"`

	// TimeoutSeconds caps every HTTP request.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// Theme is one of classic, neon, mono.
	Theme string `yaml:"theme"`

	// Timezone is the IANA zone exact timestamps are shown in. Empty means local.
	Timezone string `yaml:"timezone"`

	// DateLayout is a Go time layout for exact timestamps.
	DateLayout string `yaml:"date_layout"`

	// MaxResults is the calendar table size used when the input is empty.
	MaxResults int `yaml:"max_results"`

	MonthSplit MonthSplitConfig `yaml:"month_split"`

	// NowLimit bounds the upcoming list of the now-and-next panel.
	NowLimit int `yaml:"now_limit"`

	// Refresh is a cron spec ("*/5 * * * *") that reloads the calendar
	// panel while the TUI is open. Empty disables it.
	Refresh string `yaml:"refresh"`

	// LogFile receives diagnostics while the TUI owns the terminal.
	LogFile string `yaml:"log_file"`

	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		BackendURL:     DefaultBackendURL,
		TimeoutSeconds: 30,
		Theme:          "classic",
		DateLayout:     DefaultDateLayout,
		MaxResults:     DefaultMaxResults,
		MonthSplit:     MonthSplitConfig{LimitPast: 50, LimitFuture: 50},
		NowLimit:       10,
		LogLevel:       "error",
	}
}

// DefaultPath is $XDG_CONFIG_HOME/planner/config.yaml (or the OS equivalent).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "planner.yaml"
	}
	return filepath.Join(dir, "planner", "config.yaml")
}

// Normalize fills in missing/zero values so partially-filled files still work.
func (c *Config) Normalize() {
	c.BackendURL = strings.TrimRight(strings.TrimSpace(c.BackendURL), "/")
	if c.BackendURL == "" {
		c.BackendURL = DefaultBackendURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
	switch strings.ToLower(c.Theme) {
	case "classic", "neon", "mono":
		c.Theme = strings.ToLower(c.Theme)
	default:
		c.Theme = "classic"
	}
	if c.DateLayout == "" {
		c.DateLayout = DefaultDateLayout
	}
	if c.MaxResults <= 0 {
		c.MaxResults = DefaultMaxResults
	}
	if c.MonthSplit.LimitPast <= 0 {
		c.MonthSplit.LimitPast = 50
	}
	if c.MonthSplit.LimitFuture <= 0 {
		c.MonthSplit.LimitFuture = 50
	}
	if c.NowLimit <= 0 {
		c.NowLimit = 10
	}
	c.Refresh = strings.TrimSpace(c.Refresh)
	if c.LogFile == "" {
		c.LogFile = filepath.Join(filepath.Dir(DefaultPath()), "planner.log")
	}
	if c.LogLevel == "" {
		c.LogLevel = "error"
	}
}

// ApplyEnv lets PLANNER_* variables override file values.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv("PLANNER_BACKEND_URL")); v != "" {
		c.BackendURL = v
	}
	if v := strings.TrimSpace(os.Getenv("PLANNER_THEME")); v != "" {
		c.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("PLANNER_LOG_LEVEL")); v != "" {
		c.LogLevel = v
	}
	c.Normalize()
}

// Validate reports values Normalize cannot repair.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BackendURL)
	if err != nil {
		return fmt.Errorf("backend_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("backend_url: unsupported scheme %q", u.Scheme)
	}
	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("timezone: %w", err)
		}
	}
	if c.Refresh != "" {
		if _, err := cron.ParseStandard(c.Refresh); err != nil {
			return fmt.Errorf("refresh: %w", err)
		}
	}
	return nil
}

// Location resolves Timezone, falling back to time.Local.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Timeout is TimeoutSeconds as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load reads configuration from the given YAML path.
//
// Behavior:
//   - If the file does not exist, a default config is written with 0600
//     perms and returned.
//   - Otherwise the YAML is unmarshalled and normalized.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				// Caller decides whether an unwritable path matters.
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}

// Save writes cfg to path atomically (temp file + rename, 0600).
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".planner-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
