package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	GoEnv string `env:"GO_ENV" default:"development"`

	// Storage
	DatabasePath string `env:"DATABASE_PATH" default:"recommendations.db"`
	DataDir      string `env:"DATA_DIR" default:"data"`

	// External catalog source
	SourceCSVPath string `env:"SOURCE_CSV_PATH" default:"data/animes.csv"`

	// Sample data generation.
	// SampleSeed fixes the random source for synthetic ratings; 0 means
	// seed from the clock (non-reproducible runs).
	SampleSeed int64 `env:"SAMPLE_SEED" default:"0"`

	// RatingsAfterImport controls whether sample ratings are synthesized
	// after a successful external-source import. Ratings are always
	// synthesized on full sample fallback; after a real import the default
	// is to leave the ratings table to real signals.
	RatingsAfterImport bool `env:"SYNTHESIZE_RATINGS_AFTER_IMPORT" default:"false"`

	// Development
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Try to load .env file from the working directory
	err := godotenv.Load(".env")
	if err != nil {
		// If .env file doesn't exist, that's OK - we can still use system env vars
		fmt.Printf("Warning: .env file not found: %v\n", err)
	}

	config := &Config{}

	if err := loadEnvString(&config.GoEnv, "GO_ENV", "development"); err != nil {
		return nil, err
	}

	// Storage
	if err := loadEnvString(&config.DatabasePath, "DATABASE_PATH", "recommendations.db"); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.DataDir, "DATA_DIR", "data"); err != nil {
		return nil, err
	}

	// Source
	if err := loadEnvString(&config.SourceCSVPath, "SOURCE_CSV_PATH", "data/animes.csv"); err != nil {
		return nil, err
	}

	// Sample generation
	if err := loadEnvInt64(&config.SampleSeed, "SAMPLE_SEED", 0); err != nil {
		return nil, err
	}
	if err := loadEnvBool(&config.RatingsAfterImport, "SYNTHESIZE_RATINGS_AFTER_IMPORT", false); err != nil {
		return nil, err
	}

	// Development
	if err := loadEnvString(&config.LogLevel, "LOG_LEVEL", "info"); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.LogFormat, "LOG_FORMAT", "text"); err != nil {
		return nil, err
	}

	return config, nil
}

// Helper functions for type conversion and validation
func loadEnvString(target *string, key, defaultValue string) error {
	if value := os.Getenv(key); value != "" {
		*target = value
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvInt64(target *int64, key string, defaultValue int64) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvBool(target *bool, key string, defaultValue bool) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

// Validate performs validation on the loaded configuration
func (c *Config) Validate() error {
	var errors []string

	if c.DatabasePath == "" {
		errors = append(errors, "DATABASE_PATH must not be empty")
	}
	if c.SourceCSVPath == "" {
		errors = append(errors, "SOURCE_CSV_PATH must not be empty")
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, c.LogLevel) {
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of: %s", strings.Join(validLogLevels, ", ")))
	}

	// Validate log format
	validLogFormats := []string{"text", "json"}
	if !contains(validLogFormats, c.LogFormat) {
		errors = append(errors, fmt.Sprintf("LOG_FORMAT must be one of: %s", strings.Join(validLogFormats, ", ")))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errors, "; "))
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GoEnv == "development"
}

// Helper function to check if slice contains a string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
