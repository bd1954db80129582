package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/c360/fifokit/config"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigPath  string
	LogLevel    string
	LogFormat   string
	Capacity    int
	Items       int
	Dump        bool
	MetricsPort int
	Rate        float64
	RetryFull   bool
	ShowVersion bool
	ShowHelp    bool
	Validate    bool
}

func parseFlags() *CLIConfig {
	cfg := &CLIConfig{}

	// Define flags with environment variable fallback. Workload flags
	// default to sentinels so only explicitly set values override the
	// config file.
	flag.StringVar(&cfg.ConfigPath, "config",
		getEnv("FIFOKIT_CONFIG", ""),
		"Path to configuration file, empty for defaults (env: FIFOKIT_CONFIG)")

	flag.StringVar(&cfg.ConfigPath, "c",
		getEnv("FIFOKIT_CONFIG", ""),
		"Path to configuration file, empty for defaults (env: FIFOKIT_CONFIG)")

	flag.StringVar(&cfg.LogLevel, "log-level",
		getEnv("FIFOKIT_LOG_LEVEL", "info"),
		"Log level: debug, info, warn, error (env: FIFOKIT_LOG_LEVEL)")

	flag.StringVar(&cfg.LogFormat, "log-format",
		getEnv("FIFOKIT_LOG_FORMAT", "text"),
		"Log format: json, text (env: FIFOKIT_LOG_FORMAT)")

	flag.IntVar(&cfg.Capacity, "capacity", 0,
		"Queue capacity in slots, 0 to use config")

	flag.IntVar(&cfg.Items, "items", -1,
		"Number of entries to put, -1 to use config")

	flag.BoolVar(&cfg.Dump, "dump", false,
		"Hex dump the queue snapshot after the put phase")

	flag.IntVar(&cfg.MetricsPort, "metrics-port", -1,
		"Prometheus metrics port, 0 to disable, -1 to use config")

	flag.Float64Var(&cfg.Rate, "rate", -1,
		"Put rate in operations per second, 0 for unpaced, -1 to use config")

	flag.BoolVar(&cfg.RetryFull, "retry", false,
		"Displace the oldest entry and retry when a put is rejected")

	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	flag.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")
	flag.BoolVar(&cfg.ShowHelp, "help", false, "Show help information")
	flag.BoolVar(&cfg.ShowHelp, "h", false, "Show help information")
	flag.BoolVar(&cfg.Validate, "validate", false, "Validate configuration and exit")

	// Custom usage
	flag.Usage = func() {
		printDetailedHelp()
	}

	flag.Parse()

	return cfg
}

func validateFlags(cfg *CLIConfig) error {
	// Skip validation for special flags
	if cfg.ShowVersion || cfg.ShowHelp {
		return nil
	}

	// Validate config file exists when one is given
	if cfg.ConfigPath != "" {
		if _, err := os.Stat(cfg.ConfigPath); err != nil {
			return fmt.Errorf("config file not found: %s", cfg.ConfigPath)
		}
	}

	// Validate log level
	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, cfg.LogLevel) {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}

	// Validate log format
	validFormats := []string{"json", "text"}
	if !contains(validFormats, cfg.LogFormat) {
		return fmt.Errorf("invalid log format: %s", cfg.LogFormat)
	}

	if cfg.Capacity < 0 {
		return fmt.Errorf("invalid capacity: %d", cfg.Capacity)
	}

	if cfg.MetricsPort > 65535 {
		return fmt.Errorf("invalid metrics port: %d", cfg.MetricsPort)
	}

	return nil
}

// applyFlagOverrides layers explicitly set workload flags over the loaded
// configuration. Boolean flags only turn features on; turning them off is
// the config file's job.
func applyFlagOverrides(cfg *config.Config, cli *CLIConfig) {
	if cli.Capacity > 0 {
		cfg.Demo.Capacity = cli.Capacity
	}
	if cli.Items >= 0 {
		cfg.Demo.Items = cli.Items
	}
	if cli.Dump {
		cfg.Demo.Dump = true
	}
	if cli.RetryFull {
		cfg.Demo.RetryFull = true
	}
	if cli.Rate >= 0 {
		cfg.Demo.Rate = cli.Rate
	}
	if cli.MetricsPort >= 0 {
		cfg.Metrics.Port = cli.MetricsPort
	}
}

func printDetailedHelp() {
	_, _ = fmt.Fprintf(os.Stderr, `%s - Fixed-Capacity FIFO Queue Demo

Usage: %s [options]

Options:
`, appName, os.Args[0])
	flag.PrintDefaults()
	_, _ = fmt.Fprintf(os.Stderr, `
Examples:
  # Run the classic workload: 6 entries against 4 slots
  %s

  # Larger queue with a hex dump of its memory
  %s --capacity=8 --items=10 --dump

  # Paced puts with Prometheus metrics exposed
  %s --rate=2 --metrics-port=9090

  # Run with environment variables
  export FIFOKIT_CAPACITY=16
  export FIFOKIT_LOG_LEVEL=debug
  %s

  # Validate configuration only
  %s --config=/etc/fifokit/config.json --validate

Version: %s
Build: %s
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], Version, BuildTime)
}

// Environment variable helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Utility function to check if slice contains string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
