// Package monitoring provides Prometheus metrics for the backend.
//
// Three metric groups are exported:
//   - HTTP: request counts and latency, recorded by the gin middleware
//   - Scraper: listing pages fetched and profiles scraped, by outcome
//   - Store: records inserted and insert failures, by table
//
// Metrics register on a private registry returned by NewMetrics; the
// server exposes it on GET /metrics.
package monitoring
