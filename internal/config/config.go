// Package config loads daemon and CLI configuration from YAML files
// with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/wlproof/proofdoc/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrInvalidTimeout = errors.New("invalid render timeout")
	ErrInvalidWorkers = errors.New("invalid worker count")
)

// Bounds for validated fields.
const (
	MinTimeoutSeconds = 1
	MaxTimeoutSeconds = 600
	MaxWorkers        = 64
)

// DefaultAddr matches the port the original admin backend listened on.
const DefaultAddr = ":2030"

// Config holds daemon and CLI configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Assets AssetsConfig `yaml:"assets"`
	Render RenderConfig `yaml:"render"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig defines the HTTP listener.
type ServerConfig struct {
	Addr string `yaml:"addr"` // listen address (default ":2030")
}

// AssetsConfig locates stored upload assets.
type AssetsConfig struct {
	Dir string `yaml:"dir"` // upload directory (empty = no store, placeholder fallbacks only)
}

// RenderConfig tunes the render pipeline.
type RenderConfig struct {
	TimeoutSeconds int `yaml:"timeoutSeconds"` // content-load bound (default 60)
	Workers        int `yaml:"workers"`        // concurrent renders (0 = auto)
}

// LogConfig tunes daemon logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // zerolog level name (default "info")
	Pretty bool   `yaml:"pretty"` // human-readable console output
}

// Default returns a Config with default values applied.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Addr: DefaultAddr},
		Render: RenderConfig{TimeoutSeconds: 60},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads a YAML config file, applies defaults for absent fields and
// environment overrides, and validates the result. An empty path skips
// the file and returns defaults plus environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
			}
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
		applyDefaults(cfg)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Timeout returns the render timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Render.TimeoutSeconds) * time.Second
}

// Validate checks bounds on tunable fields.
func (c *Config) Validate() error {
	if c.Render.TimeoutSeconds < MinTimeoutSeconds || c.Render.TimeoutSeconds > MaxTimeoutSeconds {
		return fmt.Errorf("%w: %d (must be between %d and %d seconds)",
			ErrInvalidTimeout, c.Render.TimeoutSeconds, MinTimeoutSeconds, MaxTimeoutSeconds)
	}
	if c.Render.Workers < 0 || c.Render.Workers > MaxWorkers {
		return fmt.Errorf("%w: %d (must be between 0 and %d)",
			ErrInvalidWorkers, c.Render.Workers, MaxWorkers)
	}
	return nil
}

// applyDefaults fills zero values left by a partial config file.
func applyDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultAddr
	}
	if cfg.Render.TimeoutSeconds == 0 {
		cfg.Render.TimeoutSeconds = 60
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// applyEnv overrides config fields from the environment.
func applyEnv(cfg *Config) {
	if v := os.Getenv("PROOFDOC_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("PROOFDOC_ASSET_DIR"); v != "" {
		cfg.Assets.Dir = v
	}
	if v := os.Getenv("PROOFDOC_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Render.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("PROOFDOC_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}
