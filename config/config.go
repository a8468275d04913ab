package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Backend       BackendConfig
	Session       SessionConfig
	Cache         CacheConfig
	Storage       StorageConfig
	Stub          StubConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
	AppEnv        string
}

// BackendConfig selects the REST backend the clients talk to
type BackendConfig struct {
	BaseURL string
}

// SessionConfig locates the persisted session snapshot
type SessionConfig struct {
	Dir string
}

type CacheConfig struct {
	MentorTTLSeconds   int  // Mentor directory cache TTL in seconds
	DisableMentorCache bool // Read from the backend on every request
}

// StorageConfig configures the S3-compatible document store
type StorageConfig struct {
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Endpoint        string
	Region          string
}

// StubConfig configures the local stub API server
type StubConfig struct {
	Port           string
	GinMode        string
	AllowedOrigins []string
}

type LoggingConfig struct {
	Level string
	Dir   string
}

type ObservabilityConfig struct {
	ExporterEndpoint string
	ServiceName      string
	ServiceVersion   string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("API_BASE_URL", "")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "")
	v.SetDefault("SESSION_DIR", "")
	v.SetDefault("MENTOR_CACHE_TTL", 600) // 10 minutes in seconds
	v.SetDefault("DISABLE_MENTOR_CACHE", false)
	v.SetDefault("STUB_PORT", "5000")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("ALLOWED_CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("O11Y_EXPORTER_ENDPOINT", "")
	v.SetDefault("O11Y_SERVICE_NAME", "skymentor-client")
	v.SetDefault("O11Y_SERVICE_VERSION", "1.0.0")
	v.SetDefault("STORAGE_REGION", "us-east-1")

	// Automatically read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	// The backend origin historically appeared under two names; API_BASE_URL
	// wins, the legacy NEXT_PUBLIC_API_URL is honored as a fallback.
	baseURL := v.GetString("API_BASE_URL")
	if baseURL == "" {
		baseURL = v.GetString("NEXT_PUBLIC_API_URL")
	}
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}
	baseURL = strings.TrimRight(baseURL, "/")

	// Parse allowed CORS origins (comma-separated)
	allowedOrigins := []string{}
	originsStr := v.GetString("ALLOWED_CORS_ORIGINS")
	if originsStr != "" {
		for _, origin := range strings.Split(originsStr, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowedOrigins = append(allowedOrigins, origin)
			}
		}
	}

	cfg := &Config{
		Backend: BackendConfig{
			BaseURL: baseURL,
		},
		Session: SessionConfig{
			Dir: v.GetString("SESSION_DIR"),
		},
		Cache: CacheConfig{
			MentorTTLSeconds:   v.GetInt("MENTOR_CACHE_TTL"),
			DisableMentorCache: v.GetBool("DISABLE_MENTOR_CACHE"),
		},
		Storage: StorageConfig{
			AccessKeyID:     v.GetString("STORAGE_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("STORAGE_SECRET_ACCESS_KEY"),
			BucketName:      v.GetString("STORAGE_BUCKET_NAME"),
			Endpoint:        v.GetString("STORAGE_ENDPOINT"),
			Region:          v.GetString("STORAGE_REGION"),
		},
		Stub: StubConfig{
			Port:           v.GetString("STUB_PORT"),
			GinMode:        v.GetString("GIN_MODE"),
			AllowedOrigins: allowedOrigins,
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		Observability: ObservabilityConfig{
			ExporterEndpoint: v.GetString("O11Y_EXPORTER_ENDPOINT"),
			ServiceName:      v.GetString("O11Y_SERVICE_NAME"),
			ServiceVersion:   v.GetString("O11Y_SERVICE_VERSION"),
		},
		AppEnv: v.GetString("APP_ENV"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	if !strings.HasPrefix(c.Backend.BaseURL, "http://") && !strings.HasPrefix(c.Backend.BaseURL, "https://") {
		return fmt.Errorf("API_BASE_URL must be an http(s) origin, got %q", c.Backend.BaseURL)
	}
	if c.Stub.Port == "" {
		return fmt.Errorf("STUB_PORT is required")
	}
	if c.Cache.MentorTTLSeconds <= 0 {
		return fmt.Errorf("MENTOR_CACHE_TTL must be positive")
	}
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development" || c.Stub.GinMode == "debug"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
