package common

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Search  SearchConfig  `toml:"search"`
	Output  OutputConfig  `toml:"output"`
	Logging LoggingConfig `toml:"logging"`
}

// SearchConfig controls how the Google Maps collaborator is driven
type SearchConfig struct {
	Delay          string `toml:"delay"`           // e.g., "5s" - fixed delay between network interactions (politeness throttle)
	RequestTimeout string `toml:"request_timeout"` // e.g., "30s" - HTTP request timeout
	UserAgent      string `toml:"user_agent"`      // User agent sent with scraping requests
	MaxResults     int    `toml:"max_results"`     // Default maximum results when the flag is not set
}

// OutputConfig controls where exported files are written
type OutputConfig struct {
	Directory string `toml:"directory"` // Directory for CSV output (default: current directory)
}

// LoggingConfig controls console log output
type LoggingConfig struct {
	Level      string `toml:"level"`       // "debug", "info", "warn", "error"
	TimeFormat string `toml:"time_format"` // Time format for log lines
}

// NewDefaultConfig returns configuration defaults applied before any file
// or environment overrides.
func NewDefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			Delay:          "5s",
			RequestTimeout: "30s",
			UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36",
			MaxResults:     20,
		},
		Output: OutputConfig{
			Directory: ".",
		},
		Logging: LoggingConfig{
			Level:      "info",
			TimeFormat: "15:04:05",
		},
	}
}

// DelayDuration parses the configured inter-request delay, falling back to
// 5s when the value is missing or malformed.
func (c SearchConfig) DelayDuration() time.Duration {
	if d, err := time.ParseDuration(c.Delay); err == nil && d >= 0 {
		return d
	}
	return 5 * time.Second
}

// TimeoutDuration parses the configured request timeout, falling back to
// 30s when the value is missing or malformed.
func (c SearchConfig) TimeoutDuration() time.Duration {
	if d, err := time.ParseDuration(c.RequestTimeout); err == nil && d > 0 {
		return d
	}
	return 30 * time.Second
}

// LoadFromFiles loads configuration starting from defaults, merging each
// config file in order (later files override earlier ones), then applying
// environment variable overrides.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies LOCUS_* environment variables on top of file
// configuration.
func applyEnvOverrides(config *Config) {
	if level := os.Getenv("LOCUS_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if dir := os.Getenv("LOCUS_OUTPUT_DIR"); dir != "" {
		config.Output.Directory = dir
	}

	if delay := os.Getenv("LOCUS_SEARCH_DELAY"); delay != "" {
		if _, err := time.ParseDuration(delay); err == nil {
			config.Search.Delay = delay
		}
	}

	if timeout := os.Getenv("LOCUS_REQUEST_TIMEOUT"); timeout != "" {
		if _, err := time.ParseDuration(timeout); err == nil {
			config.Search.RequestTimeout = timeout
		}
	}

	if ua := os.Getenv("LOCUS_USER_AGENT"); ua != "" {
		config.Search.UserAgent = ua
	}
}
