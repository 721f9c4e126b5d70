// Package config loads the optional YAML configuration supplying
// defaults the command-line flags can override.
package config

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/rdgen-io/rdgen/pkg/hasher"
)

// Config represents the YAML configuration structure
type Config struct {
	Generator GeneratorConfig `mapstructure:"generator"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// GeneratorConfig selects the hash primitive and the size of the copy
// buffer between the generator and the output sink.
type GeneratorConfig struct {
	Hash       string `mapstructure:"hash"`
	BufferSize int    `mapstructure:"buffer_size"`
}

// LoggingConfig controls the stderr log output.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Generator: GeneratorConfig{
			Hash:       DefaultHash,
			BufferSize: DefaultBufferSize,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Load reads the configuration from path. An empty path yields the
// defaults without touching the filesystem.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("generator.hash", DefaultHash)
	v.SetDefault("generator.buffer_size", DefaultBufferSize)
	v.SetDefault("logging.level", DefaultLogLevel)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate rejects values the generator cannot run with.
func (c *Config) Validate() error {
	if _, err := hasher.Lookup(c.Generator.Hash); err != nil {
		return err
	}
	if c.Generator.BufferSize <= 0 {
		return fmt.Errorf("generator.buffer_size must be positive, got %d", c.Generator.BufferSize)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses the configured logging level.
func (c *Config) LogLevel() (slog.Level, error) {
	switch c.Logging.Level {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
}
