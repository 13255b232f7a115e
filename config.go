package lambda

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds the settings a host needs to open a window and run an App.
type Config struct {
	Title      string  `yaml:"title"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	TPS        int     `yaml:"tps"`
	Gravity    float64 `yaml:"gravity"`
	Debug      bool    `yaml:"debug"`
	ClearColor Color   `yaml:"clearColor"`
	LogLevel   string  `yaml:"logLevel"`
	LogFile    string  `yaml:"logFile"`
	// Script optionally names an input script resource, loaded from
	// ResourceDir and run on startup.
	Script string `yaml:"script"`
}

// DefaultConfig returns an 800x600 window at 60 ticks per second with a
// black background and info logging to stderr.
func DefaultConfig() Config {
	return Config{
		Title:      "lambda",
		Width:      800,
		Height:     600,
		TPS:        60,
		Gravity:    DefaultGravity,
		ClearColor: ColorBlack,
		LogLevel:   "info",
	}
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
// Fields missing from data keep their defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML file at path. An empty path yields
// DefaultConfig.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid window size %dx%d", c.Width, c.Height))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("invalid tps %d", c.TPS))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level parses LogLevel. An empty level is info.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return l, nil
}
