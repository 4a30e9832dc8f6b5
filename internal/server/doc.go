// Package server provides HTTP server setup and wiring.
//
// This package orchestrates all components:
//   - HTTP routing with the Gin framework
//   - Middleware stack (CORS, rate limiting, metrics, recovery)
//   - SQLite record store initialization
//   - Directory scraper used by the live /research-areas endpoint
//
// Server Lifecycle:
//  1. Load configuration from environment/flags
//  2. Initialize logger (production or development)
//  3. Open the record store and apply schema
//  4. Setup HTTP routes and middleware
//  5. Start HTTP server
//  6. Graceful shutdown on signal
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	srv, err := server.New(cfg, logger)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
