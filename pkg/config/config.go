package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/DeBrosOfficial/groundstation/pkg/logging"
)

// Config represents the configuration for a ground station run
type Config struct {
	Station StationConfig `yaml:"station"`
	Logging LoggingConfig `yaml:"logging"`
}

// StationConfig describes which satellites are launched and what is sent to them
type StationConfig struct {
	SatelliteIDs []uint64 `yaml:"satellite_ids"` // Subscribed in order; duplicates are reported, not fatal
	Messages     []string `yaml:"messages"`      // Broadcast in order after subscription
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level      string `yaml:"level"`       // debug, info, warn, error
	Format     string `yaml:"format"`      // json, console
	OutputFile string `yaml:"output_file"` // Empty for stderr
	Color      bool   `yaml:"color"`       // Colored console output
}

// DefaultConfig returns the built-in demo configuration
func DefaultConfig() *Config {
	return &Config{
		Station: StationConfig{
			SatelliteIDs: []uint64{327, 519, 412, 865, 12, 327},
			Messages:     []string{"Hello!", "How is going?"},
		},
		Logging: LoggingConfig{
			Level:  "error",
			Format: "console",
			Color:  true,
		},
	}
}

// LoadFile reads a YAML file over the defaults. Keys missing from the file
// keep their default values.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	if err := DecodeStrict(bytes.NewReader(data), cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoggerOptions converts the logging section for logging.NewLogger
func (c *Config) LoggerOptions() logging.Options {
	return logging.Options{
		Level:      c.Logging.Level,
		Format:     c.Logging.Format,
		OutputFile: c.Logging.OutputFile,
		Color:      c.Logging.Color,
	}
}
