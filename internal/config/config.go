package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const DefaultTimezone = "Europe/Madrid"

// Storage backends.
const (
	StorageFile     = "file"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	Storage       string
	DataDir       string
	StorageKey    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
	DatabaseURL   string
	Timezone      string
	Theme         string
	LogLevel      string
	LogFile       string
}

// Load reads configuration from the environment.
func Load() *Config {
	return &Config{
		Storage:       strings.ToLower(strings.TrimSpace(getEnv("CITAS_STORAGE", StorageFile))),
		DataDir:       getEnv("CITAS_DATA_DIR", ""),
		StorageKey:    getEnv("CITAS_STORAGE_KEY", "citas"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),
		RedisPrefix:   getEnv("CITAS_REDIS_PREFIX", "citas:"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		Timezone:      getEnv("CITAS_TIMEZONE", DefaultTimezone),
		Theme:         getEnv("CITAS_THEME", "classic"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFile:       getEnv("CITAS_LOG_FILE", ""),
	}
}

// Validate checks the settings the chosen backend needs.
func (c *Config) Validate() error {
	switch c.Storage {
	case StorageFile, StorageMemory:
	case StorageRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required for redis storage")
		}
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for postgres storage")
		}
	default:
		return fmt.Errorf("unknown storage %q (want file, redis, postgres or memory)", c.Storage)
	}
	if strings.TrimSpace(c.StorageKey) == "" {
		return fmt.Errorf("CITAS_STORAGE_KEY must not be empty")
	}
	return nil
}

// Location is the display time zone, falling back to the local zone when
// the configured name cannot be loaded.
func (c *Config) Location() *time.Location {
	if c.Timezone != "" {
		if loc, err := time.LoadLocation(c.Timezone); err == nil {
			return loc
		}
	}
	return time.Local
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
