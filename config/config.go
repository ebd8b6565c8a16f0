package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Parser  ParserConfig
	Logging LoggingConfig
}

// ParserConfig holds ingredient parser service configuration. These settings
// belong to the parser adapter; the resolver itself is configuration-free.
type ParserConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	APIKey    string        `mapstructure:"api_key"`
	Timeout   time.Duration `mapstructure:"timeout"`
	RateLimit float64       `mapstructure:"rate_limit"`
	Burst     int           `mapstructure:"burst"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/fdcresolve/")

	// Environment variable settings
	v.SetEnvPrefix("FDCRESOLVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Parser service defaults
	v.SetDefault("parser.base_url", "http://localhost:8000")
	v.SetDefault("parser.timeout", "30s")
	v.SetDefault("parser.rate_limit", 10.0)
	v.SetDefault("parser.burst", 5)

	// Logging defaults; stdout carries batch output, so only warnings and
	// worse reach stderr by default
	v.SetDefault("logging.level", "warn")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Parser.BaseURL == "" {
		return fmt.Errorf("parser base URL is required (set FDCRESOLVE_PARSER_BASE_URL)")
	}

	if config.Parser.Timeout <= 0 {
		return fmt.Errorf("parser timeout must be positive, got: %s", config.Parser.Timeout)
	}

	if config.Parser.RateLimit <= 0 {
		return fmt.Errorf("parser rate limit must be positive, got: %f", config.Parser.RateLimit)
	}

	if config.Parser.Burst < 1 {
		return fmt.Errorf("parser burst must be at least 1, got: %d", config.Parser.Burst)
	}

	return nil
}
