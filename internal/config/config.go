package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration values loaded from environment variables.
type Config struct {
	HTTPPort     string
	DatabasePath string
	ReplyDelay   time.Duration
	TickInterval time.Duration
}

// LoadConfig loads configuration from environment variables.
// It looks for a .env file first, then checks actual environment variables.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file (useful for development)
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Could not load .env file. Using environment variables only.", err)
		// Don't fail if .env is not present, might be in production
	}

	cfg := &Config{
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		DatabasePath: getEnv("DATABASE_PATH", "healthbot.db"),
		ReplyDelay:   time.Duration(getEnvInt("REPLY_DELAY_MS", 600)) * time.Millisecond,
		TickInterval: time.Duration(getEnvInt("REMINDER_TICK_SECONDS", 60)) * time.Second,
	}

	log.Printf("Loaded config: Port=%s, DatabasePath=%s, ReplyDelay=%s, TickInterval=%s",
		cfg.HTTPPort, cfg.DatabasePath, cfg.ReplyDelay, cfg.TickInterval)

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Env variable %s not set, using default: %s", key, fallback)
	return fallback
}

// getEnvInt retrieves an integer environment variable or returns a default value.
func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: Invalid %s '%s', using default %d. Error: %v", key, value, fallback, err)
		return fallback
	}
	return n
}
