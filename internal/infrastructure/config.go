package infrastructure

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/globalpulse/news-api/internal/repository"
)

// FetchMode selects how feeds are retrieved.
const (
	FetchModeProxy  = "proxy"
	FetchModeDirect = "direct"
)

// Config holds all configuration for the application
type Config struct {
	// Server settings
	Port string `json:"port"`
	Host string `json:"host"`

	// Feed settings
	ProxyBaseURL string `json:"proxy_base_url"`
	FetchMode    string `json:"fetch_mode"`
	BatchSize    int    `json:"batch_size"`

	// Cache and poller settings
	CacheTTL     time.Duration `json:"cache_ttl"`
	PollSchedule string        `json:"poll_schedule"`

	// Article store settings. Empty bucket keeps articles in memory.
	GCSBucket string `json:"gcs_bucket"`

	// Gemini API settings. Empty key disables the chat assistant.
	GeminiAPIKey string `json:"-"`
	GeminiModel  string `json:"gemini_model"`

	// Admin settings. Empty token leaves the refresh endpoint open.
	AdminToken string `json:"-"`
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	config := &Config{
		Port:         getEnvOrDefault("PORT", "8080"),
		Host:         getEnvOrDefault("HOST", "0.0.0.0"),
		ProxyBaseURL: getEnvOrDefault("FEED_PROXY_BASE_URL", repository.DefaultProxyBaseURL),
		FetchMode:    getEnvOrDefault("FEED_FETCH_MODE", FetchModeProxy),
		BatchSize:    getEnvOrDefaultInt("NEWS_BATCH_SIZE", 12),
		CacheTTL:     getEnvOrDefaultDuration("NEWS_CACHE_TTL", 5*time.Minute),
		PollSchedule: getEnvOrDefault("NEWS_POLL_SCHEDULE", "@every 15s"),
		GCSBucket:    getEnvOrDefault("GCS_BUCKET", ""),
		GeminiAPIKey: getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:  getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash-preview-05-20"),
		AdminToken:   getEnvOrDefault("ADMIN_AUTH_TOKEN", ""),
	}

	return config, config.validate()
}

// validate checks if configuration values are usable
func (c *Config) validate() error {
	if c.FetchMode != FetchModeProxy && c.FetchMode != FetchModeDirect {
		return &ConfigError{Field: "FEED_FETCH_MODE", Message: "must be proxy or direct"}
	}
	if c.BatchSize <= 0 {
		return &ConfigError{Field: "NEWS_BATCH_SIZE", Message: "must be positive"}
	}
	if c.CacheTTL <= 0 {
		return &ConfigError{Field: "NEWS_CACHE_TTL", Message: "must be positive"}
	}
	if c.PollSchedule == "" {
		return &ConfigError{Field: "NEWS_POLL_SCHEDULE", Message: "must not be empty"}
	}
	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrDefaultInt returns environment variable value as int or default if not set
func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvOrDefaultDuration returns environment variable value as duration or default if not set
func getEnvOrDefaultDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
