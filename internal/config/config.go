package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/riordanpawley/toastdemo/internal/types"
)

// FileName is the project-local config file looked up in the working directory
const FileName = ".toastdemo.yaml"

// Config represents the full toastdemo configuration
type Config struct {
	Form FormConfig `yaml:"form" json:"form"`
	UI   UIConfig   `yaml:"ui" json:"ui"`
	Log  LogConfig  `yaml:"log" json:"log"`
}

// FormConfig holds the values the form starts with
type FormConfig struct {
	Message         string  `yaml:"message" json:"message"`
	Position        string  `yaml:"position" json:"position"`
	AutoDismiss     bool    `yaml:"autoDismiss" json:"autoDismiss"`
	DurationSeconds float64 `yaml:"durationSeconds" json:"durationSeconds"`
}

// UIConfig contains rendering settings
type UIConfig struct {
	ToastWidth int `yaml:"toastWidth" json:"toastWidth"`
	// MaxVisible caps how many toasts one position draws; the rest are summarised
	MaxVisible int `yaml:"maxVisible" json:"maxVisible"`
}

// LogConfig controls where slog output goes. The TUI owns the terminal, so
// logs are written to a file.
type LogConfig struct {
	File  string `yaml:"file" json:"file"`
	Level string `yaml:"level" json:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Form: FormConfig{
			Message:         "",
			Position:        types.BottomRight.String(),
			AutoDismiss:     false,
			DurationSeconds: 1,
		},
		UI: UIConfig{
			ToastWidth: 32,
			MaxVisible: 5,
		},
		Log: LogConfig{
			File:  filepath.Join(os.TempDir(), "toastdemo.log"),
			Level: "info",
		},
	}
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.Form.Position == "" {
		cfg.Form.Position = defaults.Form.Position
	}
	if cfg.Form.DurationSeconds <= 0 {
		cfg.Form.DurationSeconds = defaults.Form.DurationSeconds
	}

	if cfg.UI.ToastWidth <= 0 {
		cfg.UI.ToastWidth = defaults.UI.ToastWidth
	}
	if cfg.UI.MaxVisible <= 0 {
		cfg.UI.MaxVisible = defaults.UI.MaxVisible
	}

	if cfg.Log.File == "" {
		cfg.Log.File = defaults.Log.File
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}

	return cfg
}

// Validate checks enum-valued settings
func (c *Config) Validate() error {
	if _, err := c.Form.DefaultPosition(); err != nil {
		return fmt.Errorf("form.position: %w", err)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// DefaultPosition parses the configured starting position
func (f FormConfig) DefaultPosition() (types.Position, error) {
	return types.ParsePosition(f.Position)
}

// SlogLevel parses the configured log level
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(l.Level))); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}

// LoadConfig loads configuration with priority:
// 1. explicit path (must exist)
// 2. .toastdemo.yaml in dir
// 3. $XDG_CONFIG_HOME/toastdemo/config.yaml
// 4. Defaults
func LoadConfig(path, dir string) (*Config, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return parseFile(path, data)
	}

	candidates := []string{filepath.Join(dir, FileName)}
	if userDir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(userDir, "toastdemo", "config.yaml"))
	}

	for _, candidate := range candidates {
		data, err := os.ReadFile(candidate)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", candidate, err)
		}
		return parseFile(candidate, data)
	}

	return DefaultConfig(), nil
}

func parseFile(path string, data []byte) (*Config, error) {
	cfg, err := ParseVersionedConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg = MergeWithDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig saves configuration to the specified path with version information
func SaveConfig(cfg *Config, path string) error {
	data, err := MarshalVersionedConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load is a convenience function that loads config relative to the current directory
func Load(path string) (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(path, cwd)
}
