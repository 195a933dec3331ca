// Package config handles application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds server configuration.
type Config struct {
	Port           int
	MetricsEnabled bool
	MaxBodyBytes   int64
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// Load reads an optional env file, then the environment, applying defaults.
// A missing env file is not an error. Variables already set in the
// environment take precedence over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	cfg := &Config{
		Port:           getIntEnv("CATCHMAP_PORT", 8080),
		MetricsEnabled: getBoolEnv("CATCHMAP_METRICS", true),
		MaxBodyBytes:   int64(getIntEnv("CATCHMAP_MAX_BODY_BYTES", 1<<20)),
		ReadTimeout:    time.Duration(getIntEnv("CATCHMAP_READ_TIMEOUT_SECONDS", 15)) * time.Second,
		WriteTimeout:   time.Duration(getIntEnv("CATCHMAP_WRITE_TIMEOUT_SECONDS", 15)) * time.Second,
	}
	return cfg, cfg.Validate()
}

// Validate checks ranges.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("invalid max body bytes %d", c.MaxBodyBytes)
	}
	return nil
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
