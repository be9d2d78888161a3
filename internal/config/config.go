// Package config provides configuration for qoderbridge.
// Configuration is loaded with the following precedence:
// embedded defaults → config file → environment variables.
package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/bonarz/qoderbridge/internal/dirs"
)

//go:embed defaults/config.yaml
var defaultsFS embed.FS

// Config holds all configuration settings for qoderbridge.
type Config struct {
	// Tool is the external binary to invoke.
	Tool string `yaml:"tool"`

	// ProjectDir is the default directory for workflow runs.
	ProjectDir string `yaml:"project_dir"`

	// TasksDir is where task context records are written.
	TasksDir string `yaml:"tasks_dir"`

	// Timeout in seconds per invocation; 0 disables it.
	Timeout int `yaml:"timeout"`

	// ExtraFlags are appended to every invocation.
	ExtraFlags string `yaml:"extra_flags"`
}

// Load loads configuration from the default config directory.
func Load() (*Config, error) {
	return LoadWithDir(dirs.ConfigDir())
}

// LoadWithDir loads configuration with an explicit config directory.
// Missing config files are fine; the embedded defaults apply.
func LoadWithDir(configDir string) (*Config, error) {
	cfg, err := loadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("load embedded defaults: %w", err)
	}

	path := filepath.Join(configDir, "config.yaml")
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	applyEnv(cfg)

	if cfg.Tool == "" {
		cfg.Tool = "qodercli"
	}
	if cfg.ProjectDir == "" {
		cfg.ProjectDir = dirs.WorkspaceDir()
	}
	if cfg.TasksDir == "" {
		cfg.TasksDir = dirs.TasksDir()
	}

	return cfg, nil
}

func loadEmbedded() (*Config, error) {
	data, err := defaultsFS.ReadFile("defaults/config.yaml")
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv overrides config fields from QODERBRIDGE_* environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("QODERBRIDGE_TOOL"); v != "" {
		cfg.Tool = v
	}
	if v := os.Getenv("QODERBRIDGE_PROJECT_DIR"); v != "" {
		cfg.ProjectDir = v
	}
	if v := os.Getenv("QODERBRIDGE_TASKS_DIR"); v != "" {
		cfg.TasksDir = v
	}
	if v := os.Getenv("QODERBRIDGE_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Timeout = n
		}
	}
	if v := os.Getenv("QODERBRIDGE_EXTRA_FLAGS"); v != "" {
		cfg.ExtraFlags = v
	}
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	if c.Tool == "" {
		return fmt.Errorf("tool must not be empty")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}
