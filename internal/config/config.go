package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the gateway.
type Config struct {
	Upstream               UpstreamConfig
	Redis                  RedisConfig
	Port                   string
	CacheTTLSeconds        int
	RateLimitMax           int
	RateLimitWindowSeconds int
	LogLevel               slog.Level
	SwaggerPath            string
}

// UpstreamConfig holds the remote movie API configuration.
type UpstreamConfig struct {
	BaseURL        string
	AppToken       string
	TimeoutSeconds int
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	timeout, _ := strconv.Atoi(getEnv("UPSTREAM_TIMEOUT_SECONDS", "15"))
	cacheTTL, _ := strconv.Atoi(getEnv("CACHE_TTL_SECONDS", "300"))
	rateLimitMax, _ := strconv.Atoi(getEnv("RATE_LIMIT_MAX", "100"))
	rateLimitWindow, _ := strconv.Atoi(getEnv("RATE_LIMIT_WINDOW_SECONDS", "60"))

	cfg := &Config{
		Upstream: UpstreamConfig{
			BaseURL:        strings.TrimRight(getEnv("UPSTREAM_BASE_URL", "http://localhost:3000/api"), "/"),
			AppToken:       getEnv("UPSTREAM_APP_TOKEN", ""),
			TimeoutSeconds: timeout,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Port:                   getEnv("SERVER_PORT", "8080"),
		CacheTTLSeconds:        cacheTTL,
		RateLimitMax:           rateLimitMax,
		RateLimitWindowSeconds: rateLimitWindow,
		LogLevel:               parseLevel(getEnv("LOG_LEVEL", "info")),
		SwaggerPath:            getEnv("SWAGGER_PATH", "docs/swagger.yaml"),
	}

	u, err := url.Parse(cfg.Upstream.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_BASE_URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid UPSTREAM_BASE_URL %q: expected an absolute http(s) URL", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.TimeoutSeconds <= 0 {
		cfg.Upstream.TimeoutSeconds = 15
	}

	return cfg, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
