// Package config provides 12-factor configuration management for the
// research-connect backend.
//
// Configuration is loaded from environment variables with sensible defaults.
// CLI flags can override environment variables for development flexibility.
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host)
//   - Scraper: directory base URL, page count, politeness pauses
//   - Store: SQLite database path
//   - Logging: Log level and output format
//   - RateLimit: Inbound request rate limiting
//   - CORS: allowed frontend origins
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	fmt.Printf("Server running on %s:%s\n", cfg.Server.Host, cfg.Server.Port)
//
// Environment Variables:
//   - PORT, HOST, STORE_PATH, CORS_ORIGINS
//   - SCRAPER_BASE_URL, SCRAPER_TOTAL_PAGES, SCRAPER_PAGE_DELAY
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST
package config
