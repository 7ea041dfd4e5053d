package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Fixture storage backends.
const (
	FixtureBackendLocal = "local"
	FixtureBackendS3    = "s3"
)

// Config holds all configuration for the application
type Config struct {
	ServerPort    string
	GinMode       string
	MongoURI      string
	MongoDatabase string

	RedisURI        string
	ProfileCacheTTL time.Duration

	JWTSecret    string
	JWTExpiry    time.Duration
	AuthRequired bool

	FixtureBackend string
	FixtureDir     string
	S3Endpoint     string
	S3AccessKey    string
	S3SecretKey    string
	S3Bucket       string
	S3UseSSL       bool

	SourceBaseURL   string
	SourceTimeout   time.Duration
	SourceRateLimit float64

	TargetsFile string
	LogLevel    string
	LogFormat   string
}

// Load reads configuration from .env file and environment variables
func Load() *Config {
	// Load .env file (ignore error if file doesn't exist - env vars may be set directly)
	_ = godotenv.Load()

	port := getEnv("SERVER_PORT", "8080")
	cfg := &Config{
		ServerPort:    port,
		GinMode:       getEnv("GIN_MODE", "debug"),
		MongoURI:      getEnvRequired("MONGO_URI"),
		MongoDatabase: getEnvRequired("MONGO_DATABASE"),

		RedisURI:        getEnv("REDIS_URI", "localhost:6379"),
		ProfileCacheTTL: parseDuration(getEnv("PROFILE_CACHE_TTL", "5m")),

		JWTSecret:    getEnv("JWT_SECRET", ""),
		JWTExpiry:    parseDuration(getEnv("JWT_EXPIRY", "24h")),
		AuthRequired: getEnv("AUTH_REQUIRED", "false") == "true",

		FixtureBackend: strings.ToLower(getEnv("FIXTURE_BACKEND", FixtureBackendLocal)),
		FixtureDir:     getEnv("FIXTURE_DIR", "fixtures"),
		S3Endpoint:     getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKey:    getEnv("S3_ACCESS_KEY", "minioadmin"),
		S3SecretKey:    getEnv("S3_SECRET_KEY", "minioadmin"),
		S3Bucket:       getEnv("S3_BUCKET", "fixtures"),
		S3UseSSL:       getEnv("S3_USE_SSL", "false") == "true",

		SourceBaseURL:   getEnv("SOURCE_BASE_URL", "http://localhost:"+port+"/fixtures/"),
		SourceTimeout:   parseDuration(getEnv("SOURCE_TIMEOUT", "10s")),
		SourceRateLimit: parseFloat(getEnv("SOURCE_RATE_LIMIT", "5")),

		TargetsFile: getEnv("TARGETS_FILE", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "console"),
	}

	if cfg.FixtureBackend != FixtureBackendLocal && cfg.FixtureBackend != FixtureBackendS3 {
		log.Fatal().Str("backend", cfg.FixtureBackend).Msg("FIXTURE_BACKEND must be local or s3")
	}
	if cfg.AuthRequired && cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required when AUTH_REQUIRED is true")
	}

	return cfg
}

// getEnv reads an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvRequired reads an environment variable and exits if not set
func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatal().Str("key", key).Msg("required environment variable is not set")
	}
	return value
}

// parseDuration parses a duration string, exits on error
func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Fatal().Str("value", s).Msg("invalid duration format")
	}
	return d
}

// parseFloat parses a decimal number, exits on error
func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatal().Str("value", s).Msg("invalid number format")
	}
	return f
}
