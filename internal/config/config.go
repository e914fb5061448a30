package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// FileName is the per-directory config file
const FileName = ".taskboard.json"

// Config represents the full taskboard configuration
type Config struct {
	API     APIConfig     `json:"api"`
	Mock    MockConfig    `json:"mock"`
	UI      UIConfig      `json:"ui"`
	Session SessionConfig `json:"session"`
	Log     LogConfig     `json:"log"`
}

// APIConfig selects and tunes the transport
type APIConfig struct {
	URL       string `json:"url" env:"TASKBOARD_API_URL"`
	UseMock   bool   `json:"useMock" env:"TASKBOARD_USE_MOCK_API"`
	TimeoutMs int    `json:"timeoutMs" env:"TASKBOARD_API_TIMEOUT_MS"`
}

// MockConfig contains in-process backend settings
type MockConfig struct {
	MinLatencyMs    int    `json:"minLatencyMs"`
	MaxLatencyMs    int    `json:"maxLatencyMs"`
	TokenTTLMinutes int    `json:"tokenTtlMinutes"`
	Secret          string `json:"secret" env:"TASKBOARD_MOCK_SECRET"`
	Addr            string `json:"addr" env:"TASKBOARD_MOCK_ADDR"`
}

// UIConfig contains TUI settings
type UIConfig struct {
	SearchDebounceMs  int    `json:"searchDebounceMs"`
	DragThreshold     int    `json:"dragThreshold"`
	ErrorToastSeconds int    `json:"errorToastSeconds"`
	InfoToastSeconds  int    `json:"infoToastSeconds"`
	DefaultView       string `json:"defaultView"`
}

// SessionConfig locates durable session storage
type SessionConfig struct {
	DBPath string `json:"dbPath" env:"TASKBOARD_SESSION_DB"`
}

// LogConfig contains log output settings
type LogConfig struct {
	File  string `json:"file" env:"TASKBOARD_LOG_FILE"`
	Level string `json:"level" env:"TASKBOARD_LOG_LEVEL"`
}

// Dir returns the user-level config directory
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "taskboard")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".taskboard"
	}
	return filepath.Join(home, ".config", "taskboard")
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	dir := Dir()
	return &Config{
		API: APIConfig{
			URL:       "http://localhost:8080/api",
			TimeoutMs: 10000,
		},
		Mock: MockConfig{
			MinLatencyMs:    300,
			MaxLatencyMs:    500,
			TokenTTLMinutes: 60,
			Secret:          "taskboard-mock-secret",
			Addr:            ":8080",
		},
		UI: UIConfig{
			SearchDebounceMs:  300,
			DragThreshold:     8,
			ErrorToastSeconds: 5,
			InfoToastSeconds:  3,
			DefaultView:       "board",
		},
		Session: SessionConfig{
			DBPath: filepath.Join(dir, "session.db"),
		},
		Log: LogConfig{
			File:  filepath.Join(dir, "taskboard.log"),
			Level: "info",
		},
	}
}

// LoadConfig loads configuration for the given working directory. The
// project file wins over the user file; environment variables win over both.
func LoadConfig(projectPath string) (*Config, error) {
	cfg, err := loadFile(projectPath)
	if err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}

func loadFile(projectPath string) (*Config, error) {
	candidates := []string{
		filepath.Join(projectPath, FileName),
		filepath.Join(Dir(), "config.json"),
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := ParseVersionedConfig(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return MergeWithDefaults(cfg), nil
	}

	// Return defaults if no config files found
	return DefaultConfig(), nil
}

// SaveConfig saves configuration to the specified path with version information
func SaveConfig(cfg *Config, path string) error {
	data, err := MarshalVersionedConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	// API
	if cfg.API.URL == "" {
		cfg.API.URL = defaults.API.URL
	}
	if cfg.API.TimeoutMs == 0 {
		cfg.API.TimeoutMs = defaults.API.TimeoutMs
	}

	// Mock
	if cfg.Mock.MinLatencyMs == 0 && cfg.Mock.MaxLatencyMs == 0 {
		cfg.Mock.MinLatencyMs = defaults.Mock.MinLatencyMs
		cfg.Mock.MaxLatencyMs = defaults.Mock.MaxLatencyMs
	}
	if cfg.Mock.MaxLatencyMs < cfg.Mock.MinLatencyMs {
		cfg.Mock.MaxLatencyMs = cfg.Mock.MinLatencyMs
	}
	if cfg.Mock.TokenTTLMinutes == 0 {
		cfg.Mock.TokenTTLMinutes = defaults.Mock.TokenTTLMinutes
	}
	if cfg.Mock.Secret == "" {
		cfg.Mock.Secret = defaults.Mock.Secret
	}
	if cfg.Mock.Addr == "" {
		cfg.Mock.Addr = defaults.Mock.Addr
	}

	// UI
	if cfg.UI.SearchDebounceMs == 0 {
		cfg.UI.SearchDebounceMs = defaults.UI.SearchDebounceMs
	}
	if cfg.UI.DragThreshold == 0 {
		cfg.UI.DragThreshold = defaults.UI.DragThreshold
	}
	if cfg.UI.ErrorToastSeconds == 0 {
		cfg.UI.ErrorToastSeconds = defaults.UI.ErrorToastSeconds
	}
	if cfg.UI.InfoToastSeconds == 0 {
		cfg.UI.InfoToastSeconds = defaults.UI.InfoToastSeconds
	}
	if cfg.UI.DefaultView == "" {
		cfg.UI.DefaultView = defaults.UI.DefaultView
	}

	// Session and logging
	if cfg.Session.DBPath == "" {
		cfg.Session.DBPath = defaults.Session.DBPath
	}
	if cfg.Log.File == "" {
		cfg.Log.File = defaults.Log.File
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}

	return cfg
}

// Load loads configuration from the current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return LoadConfig(cwd)
}

// Timeout is the per-request deadline
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutMs) * time.Millisecond
}

// SearchDebounce is the quiet period before a search query applies
func (c *Config) SearchDebounce() time.Duration {
	return time.Duration(c.UI.SearchDebounceMs) * time.Millisecond
}

// LatencyRange returns the mock backend's latency bounds
func (c *Config) LatencyRange() (time.Duration, time.Duration) {
	return time.Duration(c.Mock.MinLatencyMs) * time.Millisecond,
		time.Duration(c.Mock.MaxLatencyMs) * time.Millisecond
}

// TokenTTL is the lifetime of tokens issued by the mock backend
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.Mock.TokenTTLMinutes) * time.Minute
}

// LogLevel parses the configured level, falling back to info
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}
