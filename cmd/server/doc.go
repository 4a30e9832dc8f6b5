// Package main is the entry point for the research-connect API server.
//
// The server fronts a SQLite store of user profiles and scraped professor
// records, and exposes a live research-area lookup against the university
// directory site.
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./server -port 8000 -store data/undergraduate_assistant.db
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
