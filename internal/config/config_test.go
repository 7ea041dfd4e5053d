package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Run("returns environment variable value when set", func(t *testing.T) {
		t.Setenv("TEST_CONFIG_VAR", "custom_value")

		result := getEnv("TEST_CONFIG_VAR", "default_value")

		assert.Equal(t, "custom_value", result)
	})

	t.Run("returns default value when env var not set", func(t *testing.T) {
		result := getEnv("NONEXISTENT_CONFIG_VAR_12345", "default_value")

		assert.Equal(t, "default_value", result)
	})

	t.Run("returns default value when env var is empty string", func(t *testing.T) {
		t.Setenv("EMPTY_CONFIG_VAR", "")

		result := getEnv("EMPTY_CONFIG_VAR", "default_value")

		assert.Equal(t, "default_value", result)
	})
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
	}{
		{"minutes", "15m", 15 * time.Minute},
		{"hours", "168h", 168 * time.Hour},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseDuration(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"5", 5},
		{"0.5", 0.5},
		{"0", 0},
		{"-1", -1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseFloat(tt.input))
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads config with all env vars", func(t *testing.T) {
		// Set required env vars
		t.Setenv("MONGO_URI", "mongodb://localhost:27017")
		t.Setenv("MONGO_DATABASE", "testdb")

		// Set optional env vars to test custom values
		t.Setenv("SERVER_PORT", "3000")
		t.Setenv("GIN_MODE", "release")
		t.Setenv("REDIS_URI", "redis.example.com:6379")
		t.Setenv("PROFILE_CACHE_TTL", "1m")
		t.Setenv("JWT_SECRET", "test-secret-key")
		t.Setenv("JWT_EXPIRY", "30m")
		t.Setenv("AUTH_REQUIRED", "true")
		t.Setenv("FIXTURE_BACKEND", "S3")
		t.Setenv("FIXTURE_DIR", "/srv/fixtures")
		t.Setenv("S3_ENDPOINT", "s3.example.com:9000")
		t.Setenv("S3_ACCESS_KEY", "myaccesskey")
		t.Setenv("S3_SECRET_KEY", "mysecretkey")
		t.Setenv("S3_BUCKET", "my-bucket")
		t.Setenv("S3_USE_SSL", "true")
		t.Setenv("SOURCE_BASE_URL", "https://source.example.com/")
		t.Setenv("SOURCE_TIMEOUT", "3s")
		t.Setenv("SOURCE_RATE_LIMIT", "0.5")
		t.Setenv("TARGETS_FILE", "/etc/targets.yaml")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")

		cfg := Load()

		require.NotNil(t, cfg)

		// Required fields
		assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
		assert.Equal(t, "testdb", cfg.MongoDatabase)

		// Optional fields with custom values
		assert.Equal(t, "3000", cfg.ServerPort)
		assert.Equal(t, "release", cfg.GinMode)
		assert.Equal(t, "redis.example.com:6379", cfg.RedisURI)
		assert.Equal(t, time.Minute, cfg.ProfileCacheTTL)
		assert.Equal(t, "test-secret-key", cfg.JWTSecret)
		assert.Equal(t, 30*time.Minute, cfg.JWTExpiry)
		assert.True(t, cfg.AuthRequired)
		assert.Equal(t, FixtureBackendS3, cfg.FixtureBackend)
		assert.Equal(t, "/srv/fixtures", cfg.FixtureDir)
		assert.Equal(t, "s3.example.com:9000", cfg.S3Endpoint)
		assert.Equal(t, "myaccesskey", cfg.S3AccessKey)
		assert.Equal(t, "mysecretkey", cfg.S3SecretKey)
		assert.Equal(t, "my-bucket", cfg.S3Bucket)
		assert.True(t, cfg.S3UseSSL)
		assert.Equal(t, "https://source.example.com/", cfg.SourceBaseURL)
		assert.Equal(t, 3*time.Second, cfg.SourceTimeout)
		assert.Equal(t, 0.5, cfg.SourceRateLimit)
		assert.Equal(t, "/etc/targets.yaml", cfg.TargetsFile)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("uses default values for optional env vars", func(t *testing.T) {
		// Only set required env vars
		t.Setenv("MONGO_URI", "mongodb://localhost:27017")
		t.Setenv("MONGO_DATABASE", "testdb")

		cfg := Load()

		require.NotNil(t, cfg)

		// Check default values
		assert.Equal(t, "8080", cfg.ServerPort)
		assert.Equal(t, "debug", cfg.GinMode)
		assert.Equal(t, "localhost:6379", cfg.RedisURI)
		assert.Equal(t, 5*time.Minute, cfg.ProfileCacheTTL)
		assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
		assert.False(t, cfg.AuthRequired)
		assert.Equal(t, FixtureBackendLocal, cfg.FixtureBackend)
		assert.Equal(t, "fixtures", cfg.FixtureDir)
		assert.Equal(t, "localhost:9000", cfg.S3Endpoint)
		assert.Equal(t, "fixtures", cfg.S3Bucket)
		assert.False(t, cfg.S3UseSSL)
		assert.Equal(t, "http://localhost:8080/fixtures/", cfg.SourceBaseURL)
		assert.Equal(t, 10*time.Second, cfg.SourceTimeout)
		assert.Equal(t, 5.0, cfg.SourceRateLimit)
		assert.Empty(t, cfg.TargetsFile)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "console", cfg.LogFormat)
	})

	t.Run("source URL follows the server port", func(t *testing.T) {
		t.Setenv("MONGO_URI", "mongodb://localhost:27017")
		t.Setenv("MONGO_DATABASE", "testdb")
		t.Setenv("SERVER_PORT", "9090")

		cfg := Load()

		assert.Equal(t, "http://localhost:9090/fixtures/", cfg.SourceBaseURL)
	})

	t.Run("S3UseSSL is false for non-true values", func(t *testing.T) {
		t.Setenv("MONGO_URI", "mongodb://localhost:27017")
		t.Setenv("MONGO_DATABASE", "testdb")
		t.Setenv("S3_USE_SSL", "yes")

		cfg := Load()

		assert.False(t, cfg.S3UseSSL)
	})
}
