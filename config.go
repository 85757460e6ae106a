package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"tav/internal/tablib"
)

// Loader batch sizes and the boundary proximity that triggers a refill.
const (
	defaultInitialBatch = 100
	defaultScrollBatch  = 50
	loadProximity       = 10
)

// Config is the optional user configuration, read from
// $XDG_CONFIG_HOME/tav/config.yaml (or ~/.config/tav/config.yaml).
type Config struct {
	InitialBatchSize int          `yaml:"initial_batch_size"`
	ScrollBatchSize  int          `yaml:"scroll_batch_size"`
	ShowRowLabels    bool         `yaml:"show_row_labels"`
	Colors           ColorsConfig `yaml:"colors"`
}

// ColorsConfig overrides the per-type cell colors. Values are anything
// lipgloss accepts: ANSI indexes ("6") or hex ("#5fd7ff").
type ColorsConfig struct {
	Int      string `yaml:"int,omitempty"`
	Float    string `yaml:"float,omitempty"`
	Text     string `yaml:"text,omitempty"`
	Bool     string `yaml:"bool,omitempty"`
	Date     string `yaml:"date,omitempty"`
	Datetime string `yaml:"datetime,omitempty"`
}

func defaultConfig() *Config {
	return &Config{
		InitialBatchSize: defaultInitialBatch,
		ScrollBatchSize:  defaultScrollBatch,
		ShowRowLabels:    false,
	}
}

// getConfigDir returns the configuration directory following the XDG
// Base Directory spec.
func getConfigDir() (string, error) {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, "tav"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "tav"), nil
}

// loadConfig reads config.yaml, returning defaults when the file does
// not exist.
func loadConfig() (*Config, error) {
	cfg := defaultConfig()

	configDir, err := getConfigDir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(configDir, "config.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("could not read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", path, err)
	}
	if cfg.InitialBatchSize <= 0 {
		cfg.InitialBatchSize = defaultInitialBatch
	}
	if cfg.ScrollBatchSize <= 0 {
		cfg.ScrollBatchSize = defaultScrollBatch
	}
	return cfg, nil
}

func (c *Config) typeColorOverrides() map[tablib.DType]string {
	out := make(map[tablib.DType]string)
	set := func(d tablib.DType, v string) {
		if v != "" {
			out[d] = v
		}
	}
	set(tablib.Int, c.Colors.Int)
	set(tablib.Float, c.Colors.Float)
	set(tablib.Text, c.Colors.Text)
	set(tablib.Bool, c.Colors.Bool)
	set(tablib.Date, c.Colors.Date)
	set(tablib.Datetime, c.Colors.Datetime)
	return out
}
