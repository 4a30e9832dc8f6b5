package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Scraper   ScraperConfig
	Store     StoreConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// ScraperConfig holds directory scraper configuration.
type ScraperConfig struct {
	BaseURL      string        `envconfig:"SCRAPER_BASE_URL" default:"https://www.khoury.northeastern.edu/people/"`
	TotalPages   int           `envconfig:"SCRAPER_TOTAL_PAGES" default:"56"`
	FetchTimeout time.Duration `envconfig:"SCRAPER_FETCH_TIMEOUT" default:"30s"`
	PageDelay    time.Duration `envconfig:"SCRAPER_PAGE_DELAY" default:"500ms"`
	ShortPause   time.Duration `envconfig:"SCRAPER_SHORT_PAUSE" default:"500ms"`
	LongPause    time.Duration `envconfig:"SCRAPER_LONG_PAUSE" default:"2s"`
}

// StoreConfig holds record store configuration.
type StoreConfig struct {
	Path string `envconfig:"STORE_PATH" default:"data/undergraduate_assistant.db"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds inbound rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// CORSConfig holds allowed origins for the browser frontend.
type CORSConfig struct {
	AllowOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:3000,http://127.0.0.1:3000"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Scraper: ScraperConfig{
			BaseURL:      "https://www.khoury.northeastern.edu/people/",
			TotalPages:   56,
			FetchTimeout: 30 * time.Second,
			PageDelay:    500 * time.Millisecond,
			ShortPause:   500 * time.Millisecond,
			LongPause:    2 * time.Second,
		},
		Store: StoreConfig{
			Path: "data/undergraduate_assistant.db",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		},
	}
}
