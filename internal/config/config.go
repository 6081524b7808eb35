// Package config handles configuration loading for the story service.
package config

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// CookieConfig holds attributes applied to the session cookie.
type CookieConfig struct {
	Path     string
	Domain   string
	Secure   bool
	SameSite http.SameSite
}

// Config holds all configuration for the story service.
type Config struct {
	DatabaseURL     string
	Port            string
	RedisHost       string
	RedisPort       string
	RedisPassword   string
	SessionTTL      time.Duration
	ShutdownTimeout time.Duration
	DBMaxOpenConns  int
	DBMaxIdleConns  int
	Environment     string
	Cookie          CookieConfig
}

// Load reads configuration from the environment, after loading an
// optional .env file. A missing DATABASE_URL is a fatal configuration
// error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	environment := getEnv("ENVIRONMENT", "development")

	return &Config{
		DatabaseURL:     databaseURL,
		Port:            getEnv("PORT", "3000"),
		RedisHost:       getEnv("REDIS_HOST", "localhost"),
		RedisPort:       getEnv("REDIS_PORT", "6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		SessionTTL:      parseDuration(getEnv("SESSION_TTL", "24h"), 24*time.Hour),
		ShutdownTimeout: parseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"), 10*time.Second),
		DBMaxOpenConns:  parseInt(getEnv("DB_MAX_OPEN_CONNS", "10"), 10),
		DBMaxIdleConns:  parseInt(getEnv("DB_MAX_IDLE_CONNS", "5"), 5),
		Environment:     environment,
		Cookie: CookieConfig{
			Path:     "/",
			Domain:   getEnv("COOKIE_DOMAIN", ""),
			Secure:   environment == "production",
			SameSite: http.SameSiteLaxMode,
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func parseInt(value string, defaultValue int) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
