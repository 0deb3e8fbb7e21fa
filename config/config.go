package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Retail    RetailConfig
	Scoring   ScoringConfig
	Cache     CacheConfig
	Store     StoreConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RetailConfig holds retailer API client configuration
type RetailConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// ScoringConfig holds remote scoring service configuration
type ScoringConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// StoreConfig holds the paths of the JSON persistence files
type StoreConfig struct {
	RetailersPath   string `mapstructure:"retailers_path"`
	CredentialsPath string `mapstructure:"credentials_path"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/huefit/")

	// Environment variable settings
	v.SetEnvPrefix("HUEFIT")
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
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Retailer client defaults
	v.SetDefault("retail.timeout", "15s")

	// Scoring defaults
	v.SetDefault("scoring.enabled", false)
	v.SetDefault("scoring.base_url", "http://localhost:5000")
	v.SetDefault("scoring.timeout", "5s")

	// Cache defaults
	v.SetDefault("cache.ttl", "5m")

	// Store defaults
	v.SetDefault("store.retailers_path", "data/retailers.json")
	v.SetDefault("store.credentials_path", "data/credentials.json")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Server.Environment != "development" && config.Server.Environment != "production" {
		return fmt.Errorf("environment must be 'development' or 'production', got: %s", config.Server.Environment)
	}

	if config.Scoring.Enabled && config.Scoring.BaseURL == "" {
		return fmt.Errorf("scoring base URL is required when remote scoring is enabled")
	}

	if config.Retail.Timeout <= 0 {
		return fmt.Errorf("retail timeout must be positive, got: %s", config.Retail.Timeout)
	}

	return nil
}
