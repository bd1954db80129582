// Package config provides configuration management for the FifoKit demo
// harness.
//
// Configuration is loaded from a JSON file, then overridden by FIFOKIT_*
// environment variables, then validated. Everything is a runtime setting,
// including the debug dump; there are no compile-time switches.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/c360/fifokit/errors"
)

// maxConfigSize limits config file reads to prevent memory exhaustion
// from a mistaken path.
const maxConfigSize = 1 << 20 // 1MB

// Config represents the complete demo configuration
type Config struct {
	Demo    DemoConfig    `json:"demo"`
	Metrics MetricsConfig `json:"metrics"`
}

// DemoConfig defines the workload the harness runs
type DemoConfig struct {
	// Capacity is the fixed number of queue slots
	Capacity int `json:"capacity"`

	// Items is how many entries the harness attempts to put
	Items int `json:"items"`

	// NameTemplate is the fmt template for entry names; it receives the
	// entry ID. Rendered names longer than the bound are truncated.
	NameTemplate string `json:"name_template"`

	// Dump enables the hex dump of the queue snapshot after the put phase
	Dump bool `json:"dump"`

	// Rate paces puts in operations per second; 0 means unpaced
	Rate float64 `json:"rate,omitempty"`

	// RetryFull makes the harness drain one entry and retry when a put
	// is rejected, instead of dropping the item
	RetryFull bool `json:"retry_full,omitempty"`
}

// MetricsConfig controls the optional Prometheus exposition endpoint
type MetricsConfig struct {
	// Port for the metrics HTTP server; 0 disables it
	Port int `json:"port,omitempty"`

	// Path for the exposition endpoint, default /metrics
	Path string `json:"path,omitempty"`
}

// Default returns the configuration matching the classic demo workload:
// six entries against a four-slot queue, so the last two puts are
// rejected.
func Default() *Config {
	return &Config{
		Demo: DemoConfig{
			Capacity:     4,
			Items:        6,
			NameTemplate: "( entry [%d] )",
			Dump:         false,
		},
		Metrics: MetricsConfig{
			Path: "/metrics",
		},
	}
}

// Load reads configuration from a JSON file, applies environment variable
// overrides, and validates the result. An empty path yields the defaults
// (still subject to overrides and validation).
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.WrapFatal(errors.ErrConfigNotFound, "Config", "Load", path)
			}
			return nil, errors.WrapFatal(err, "Config", "Load", "open config file")
		}
		defer f.Close()

		data, err := io.ReadAll(io.LimitReader(f, maxConfigSize+1))
		if err != nil {
			return nil, errors.WrapFatal(err, "Config", "Load", "read config file")
		}
		if len(data) > maxConfigSize {
			return nil, errors.WrapFatal(errors.ErrInvalidConfig, "Config", "Load",
				fmt.Sprintf("config file exceeds %d bytes", maxConfigSize))
		}

		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, errors.WrapFatal(err, "Config", "Load", "parse config JSON")
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration invariants
func (c *Config) Validate() error {
	if c.Demo.Capacity <= 0 {
		return errors.WrapFatal(errors.ErrInvalidConfig, "Config", "Validate",
			fmt.Sprintf("demo.capacity must be positive, got %d", c.Demo.Capacity))
	}
	if c.Demo.Items < 0 {
		return errors.WrapFatal(errors.ErrInvalidConfig, "Config", "Validate",
			fmt.Sprintf("demo.items cannot be negative, got %d", c.Demo.Items))
	}
	if c.Demo.NameTemplate == "" {
		return errors.WrapFatal(errors.ErrMissingConfig, "Config", "Validate",
			"demo.name_template is required")
	}
	if c.Demo.Rate < 0 {
		return errors.WrapFatal(errors.ErrInvalidConfig, "Config", "Validate",
			fmt.Sprintf("demo.rate cannot be negative, got %f", c.Demo.Rate))
	}
	if c.Metrics.Port < 0 || c.Metrics.Port > 65535 {
		return errors.WrapFatal(errors.ErrInvalidConfig, "Config", "Validate",
			fmt.Sprintf("metrics.port out of range: %d", c.Metrics.Port))
	}
	return nil
}

// applyEnvOverrides applies FIFOKIT_* environment variables over the
// loaded configuration. Unparseable values are ignored in favor of the
// configured value.
func applyEnvOverrides(cfg *Config) {
	if v, ok := envInt("FIFOKIT_CAPACITY"); ok {
		cfg.Demo.Capacity = v
	}
	if v, ok := envInt("FIFOKIT_ITEMS"); ok {
		cfg.Demo.Items = v
	}
	if v := os.Getenv("FIFOKIT_NAME_TEMPLATE"); v != "" {
		cfg.Demo.NameTemplate = v
	}
	if v, ok := envBool("FIFOKIT_DUMP"); ok {
		cfg.Demo.Dump = v
	}
	if v, ok := envBool("FIFOKIT_RETRY_FULL"); ok {
		cfg.Demo.RetryFull = v
	}
	if v, ok := envInt("FIFOKIT_METRICS_PORT"); ok {
		cfg.Metrics.Port = v
	}
}

func envInt(key string) (int, bool) {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed, true
		}
	}
	return 0, false
}

func envBool(key string) (bool, bool) {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed, true
		}
	}
	return false, false
}
