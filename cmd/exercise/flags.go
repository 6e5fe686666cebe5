package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigPath string
	Strategies string
	Capacity   int
	Items      int
	Seed       uint64
	SelfCheck  bool
	Metrics    bool
	LogLevel   string
	LogFormat  string

	// set records which flags were given explicitly, so they can
	// override values from the config file.
	set map[string]bool
}

func parseFlags(args []string) (*CLIConfig, error) {
	cfg := &CLIConfig{set: map[string]bool{}}
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)

	fs.StringVar(&cfg.ConfigPath, "config",
		getEnv("RINGQ_CONFIG", ""),
		"Path to a YAML run file (env: RINGQ_CONFIG)")
	fs.StringVar(&cfg.Strategies, "strategies",
		getEnv("RINGQ_STRATEGIES", ""),
		"Comma-separated strategies to exercise, empty for all (env: RINGQ_STRATEGIES)")
	fs.IntVar(&cfg.Capacity, "capacity",
		getEnvInt("RINGQ_CAPACITY", 4),
		"Physical slots per queue (env: RINGQ_CAPACITY)")
	fs.IntVar(&cfg.Items, "n",
		getEnvInt("RINGQ_ITEMS", 100),
		"Number of values pushed through each queue (env: RINGQ_ITEMS)")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "Random seed, 0 for a random one")
	fs.BoolVar(&cfg.SelfCheck, "self-check",
		getEnvBool("RINGQ_SELF_CHECK", true),
		"Verify cursor arithmetic against an occupancy scan after every operation (env: RINGQ_SELF_CHECK)")
	fs.BoolVar(&cfg.Metrics, "metrics", false, "Instrument queues and log the collected metrics")
	fs.StringVar(&cfg.LogLevel, "log-level",
		getEnv("RINGQ_LOG_LEVEL", "info"),
		"Log level: debug, info, warn, error (env: RINGQ_LOG_LEVEL); debug logs every transition")
	fs.StringVar(&cfg.LogFormat, "log-format",
		getEnv("RINGQ_LOG_FORMAT", "text"),
		"Log format: json, text (env: RINGQ_LOG_FORMAT)")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s [options]\n\nOptions:\n", appName)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { cfg.set[f.Name] = true })

	return cfg, nil
}

func validateFlags(cfg *CLIConfig) error {
	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, cfg.LogLevel) {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}

	validFormats := []string{"json", "text"}
	if !contains(validFormats, cfg.LogFormat) {
		return fmt.Errorf("invalid log format: %s", cfg.LogFormat)
	}

	if cfg.ConfigPath != "" {
		if _, err := os.Stat(cfg.ConfigPath); err != nil {
			return fmt.Errorf("config file not found: %s", cfg.ConfigPath)
		}
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Environment variable helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
