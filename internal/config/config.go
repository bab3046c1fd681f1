package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/animation"
	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	DefaultSize      = 20
	DefaultAlgorithm = "selection"
	DefaultTheme     = "classic"
	DefaultWidth     = 100
	DefaultHeight    = 16
)

type Config struct {
	Size       int    `yaml:"size"`
	Algorithm  string `yaml:"algorithm"`
	IntervalMs int    `yaml:"interval_ms"`
	Seed       int64  `yaml:"seed"`
	Theme      string `yaml:"theme"`
	// Values replaces the random sequence when set.
	Values []int         `yaml:"values,omitempty"`
	Chart  ChartConfig   `yaml:"chart"`
	Server ServerConfig  `yaml:"server"`
	Log    LoggingConfig `yaml:"log"`
}

type ChartConfig struct {
	Width   int  `yaml:"width"`
	Height  int  `yaml:"height"`
	Profile bool `yaml:"profile"`
}

type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type LoggingConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		Size:       DefaultSize,
		Algorithm:  DefaultAlgorithm,
		IntervalMs: animation.DefaultIntervalMs,
		Theme:      DefaultTheme,
		Chart: ChartConfig{
			Width:   DefaultWidth,
			Height:  DefaultHeight,
			Profile: true,
		},
		Server: ServerConfig{
			Addr:        ":8080",
			CORSOrigins: []string{"*"},
		},
		Log: LoggingConfig{Level: "info"},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the fields the animation core would otherwise reject.
func (c *Config) Validate() error {
	if len(c.Values) > 0 {
		if err := sorting.ValidateValues(c.Values); err != nil {
			return err
		}
	} else if err := sorting.ValidateSize(c.Size); err != nil {
		return err
	}
	if _, err := sorting.ParseAlgorithm(c.Algorithm); err != nil {
		return err
	}
	if c.IntervalMs < animation.MinIntervalMs || c.IntervalMs > animation.MaxIntervalMs {
		return fmt.Errorf("%w: %d", animation.ErrInvalidInterval, c.IntervalMs)
	}
	return nil
}

// GetAlgorithm returns the parsed algorithm, falling back to the default.
func (c *Config) GetAlgorithm() sorting.Algorithm {
	a, err := sorting.ParseAlgorithm(c.Algorithm)
	if err != nil {
		a, _ = sorting.ParseAlgorithm(DefaultAlgorithm)
	}
	return a
}

// SequenceSize is the number of bars this config produces.
func (c *Config) SequenceSize() int {
	if len(c.Values) > 0 {
		return len(c.Values)
	}
	return c.Size
}
