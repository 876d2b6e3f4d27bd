package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration values.
type Config struct {
	MongoURI           string
	MongoDBName        string
	Port               string
	AppBaseURL         string
	SessionSecret      string
	SessionTTL         time.Duration
	GithubClientID     string
	GithubClientSecret string
	RedisURL           string
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() *Config {
	return &Config{
		MongoURI:           getEnv("MONGODB_URI", ""),
		MongoDBName:        getEnv("MONGODB_DB_NAME", "partsdepot"),
		Port:               getEnv("PORT", "8080"),
		AppBaseURL:         getEnv("APP_BASE_URL", "http://localhost:8080"),
		SessionSecret:      getEnv("SESSION_SECRET", ""),
		SessionTTL:         time.Hour * time.Duration(getEnvAsInt("SESSION_TTL_HOURS", 14*24)),
		GithubClientID:     getEnv("GITHUB_CLIENT_ID", ""),
		GithubClientSecret: getEnv("GITHUB_CLIENT_SECRET", ""),
		RedisURL:           getEnv("REDIS_URL", ""),
	}
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
