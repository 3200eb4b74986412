package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultPlatformBaseURL is used when PLATFORM_BASE_URL is unset.
const DefaultPlatformBaseURL = "https://api.soulace-platform.com/api/v1"

// Config aggregates runtime configuration for the console.
type Config struct {
	App      AppConfig
	Platform PlatformConfig
	Poll     PollConfig
	Session  SessionConfig
	Logger   LoggerConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PlatformConfig holds remote platform API settings.
type PlatformConfig struct {
	BaseURL               string
	RequestTimeoutSeconds int
	RetryAttempts         int
	RetryDelaySeconds     int
}

// PollConfig controls the resource store refresh cadence.
type PollConfig struct {
	IntervalSeconds int
	PageSize        int
}

// SessionConfig controls where the admin access token lives.
type SessionConfig struct {
	TokenPath     string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "listener-admin-console"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8090"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Platform: PlatformConfig{
			BaseURL:               getEnv("PLATFORM_BASE_URL", DefaultPlatformBaseURL),
			RequestTimeoutSeconds: getEnvAsInt("PLATFORM_REQUEST_TIMEOUT_SECONDS", 15),
			RetryAttempts:         getEnvAsInt("PLATFORM_RETRY_ATTEMPTS", 3),
			RetryDelaySeconds:     getEnvAsInt("PLATFORM_RETRY_DELAY_SECONDS", 2),
		},
		Poll: PollConfig{
			IntervalSeconds: getEnvAsInt("POLL_INTERVAL_SECONDS", 30),
			PageSize:        getEnvAsInt("PAGE_SIZE", 10),
		},
		Session: SessionConfig{
			TokenPath:     getEnv("SESSION_TOKEN_PATH", ".admin-token"),
			RedisAddr:     os.Getenv("REDIS_ADDR"),
			RedisPassword: os.Getenv("REDIS_PASSWORD"),
			RedisDB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// RequestTimeout returns the outbound platform call timeout.
func (p PlatformConfig) RequestTimeout() time.Duration {
	if p.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(p.RequestTimeoutSeconds) * time.Second
}

// RetryDelay returns the fixed delay between retry attempts.
func (p PlatformConfig) RetryDelay() time.Duration {
	if p.RetryDelaySeconds <= 0 {
		return 2 * time.Second
	}
	return time.Duration(p.RetryDelaySeconds) * time.Second
}

// Interval returns the polling interval.
func (p PollConfig) Interval() time.Duration {
	if p.IntervalSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(p.IntervalSeconds) * time.Second
}

// UseRedis reports whether the token should live in redis instead of a file.
func (s SessionConfig) UseRedis() bool {
	return s.RedisAddr != ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
