package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "https://www.khoury.northeastern.edu/people/", cfg.Scraper.BaseURL)
	assert.Equal(t, 56, cfg.Scraper.TotalPages)
	assert.Equal(t, 500*time.Millisecond, cfg.Scraper.PageDelay)
	assert.Equal(t, "data/undergraduate_assistant.db", cfg.Store.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORS.AllowOrigins)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SCRAPER_TOTAL_PAGES", "3")
	t.Setenv("SCRAPER_LONG_PAUSE", "5s")
	t.Setenv("STORE_PATH", "/tmp/other.db")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("CORS_ORIGINS", "https://app.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3, cfg.Scraper.TotalPages)
	assert.Equal(t, 5*time.Second, cfg.Scraper.LongPause)
	assert.Equal(t, "/tmp/other.db", cfg.Store.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.CORS.AllowOrigins)
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("SCRAPER_FETCH_TIMEOUT", "not-a-duration")

	_, err := Load()
	assert.Error(t, err)
}

func TestDefaultMatchesEnvDefaults(t *testing.T) {
	loaded, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Default(), loaded)
}
