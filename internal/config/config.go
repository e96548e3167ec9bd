package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Holidays HolidaysConfig `mapstructure:"holidays"`
	Log      LogConfig      `mapstructure:"log"`
}

// HolidaysConfig represents holiday lookup defaults
type HolidaysConfig struct {
	Jurisdiction string `mapstructure:"jurisdiction"` // Default jurisdiction code, e.g. "BZ"
	Observed     bool   `mapstructure:"observed"`     // Apply observed-date shifting rules
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`  // Log to file (with rotation) when set
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// Load loads configuration from file. With an empty path the default search
// locations are tried and a missing file falls back to defaults; an explicit
// path must exist.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("holidays.jurisdiction", "BZ")
	v.SetDefault("holidays.observed", true)
	v.SetDefault("log.level", "info")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.holiday-calendar")
		v.AddConfigPath("/etc/holiday-calendar")
	}

	v.SetEnvPrefix("holiday_calendar")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate checks the configuration for obvious mistakes
func (c *Config) Validate() error {
	if c.Holidays.Jurisdiction == "" {
		return fmt.Errorf("holidays.jurisdiction must not be empty")
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log.level: %q", c.Log.Level)
	}

	return nil
}
