package config_test

import (
	"testing"

	"github.com/skymentor/skymentor-client/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000", cfg.Backend.BaseURL)
	assert.Equal(t, "5000", cfg.Stub.Port)
	assert.Equal(t, 600, cfg.Cache.MentorTTLSeconds)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Stub.AllowedOrigins)
	assert.False(t, cfg.Cache.DisableMentorCache)
}

func TestLoad_BaseURLOverride(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.skymentor.dev/")

	cfg, err := config.Load()
	require.NoError(t, err)

	// Trailing slash is stripped so endpoint joining stays predictable
	assert.Equal(t, "https://api.skymentor.dev", cfg.Backend.BaseURL)
}

func TestLoad_LegacyBaseURLName(t *testing.T) {
	t.Setenv("NEXT_PUBLIC_API_URL", "http://staging.skymentor.dev:5000")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://staging.skymentor.dev:5000", cfg.Backend.BaseURL)
}

func TestLoad_CanonicalNameWinsOverLegacy(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.skymentor.dev")
	t.Setenv("NEXT_PUBLIC_API_URL", "http://old.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.skymentor.dev", cfg.Backend.BaseURL)
}

func TestLoad_InvalidBaseURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "localhost:5000")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_CORSOriginsParsing(t *testing.T) {
	t.Setenv("ALLOWED_CORS_ORIGINS", "http://localhost:3000, https://skymentor.dev ,")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"http://localhost:3000", "https://skymentor.dev"}, cfg.Stub.AllowedOrigins)
}

func TestValidate_CacheTTL(t *testing.T) {
	t.Setenv("MENTOR_CACHE_TTL", "0")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestIsDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}
