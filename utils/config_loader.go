package utils

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ─── Output / logging configs ───────────────────────────────────────────

type OutputConfig struct {
	Dir           string `yaml:"dir"`
	SessionPrefix string `yaml:"session_prefix"` // empty: write straight into Dir
	Mode          string `yaml:"mode"`           // "faithful" or "hardened"
	BufferSizeKB  int    `yaml:"buffer_size_kb"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Config is the top-level structure for printutils.yaml.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Dir: ".", Mode: "faithful", BufferSizeKB: 64},
		Log:    LogConfig{Level: "info"},
	}
}

// ─── Loaders ────────────────────────────────────────────────────────────

// LoadConfig reads and parses a yaml config. Fields left out keep their
// DefaultConfig values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if _, err := ParseLogLevel(cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	switch strings.ToLower(cfg.Output.Mode) {
	case "faithful", "hardened":
	default:
		return nil, fmt.Errorf("parse config: unknown output mode %q", cfg.Output.Mode)
	}
	return cfg, nil
}
