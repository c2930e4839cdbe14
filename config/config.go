package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort          string
	MySQLDSN          string
	JWTSecret         string
	SessionTokenTTL   time.Duration
	VerifyTokenTTL    time.Duration
	ResetTokenTTL     time.Duration
	VerifyTokenLength int
	LogLevel          string
	LogFormat         string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignores error if not found)
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, errors.New("JWT_SECRET environment variable is required")
	}

	mysqlDSN := os.Getenv("MYSQL_DSN")
	if mysqlDSN == "" {
		return nil, errors.New("MYSQL_DSN environment variable is required")
	}

	return &Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		MySQLDSN:          mysqlDSN,
		JWTSecret:         jwtSecret,
		SessionTokenTTL:   getDurationEnv("SESSION_TOKEN_TTL", 7*24*time.Hour),
		VerifyTokenTTL:    getDurationEnv("VERIFY_TOKEN_TTL", 24*time.Hour),
		ResetTokenTTL:     getDurationEnv("RESET_TOKEN_TTL", 1*time.Hour),
		VerifyTokenLength: getIntEnv("VERIFY_TOKEN_LENGTH", 16),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
	}, nil
}

func (c *Config) DSN() string {
	return c.MySQLDSN
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if minutes, err := strconv.Atoi(value); err == nil {
			return time.Duration(minutes) * time.Minute
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
