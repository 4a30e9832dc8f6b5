package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the backend.
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Scraper metrics
	PagesFetched    *prometheus.CounterVec
	ProfilesScraped *prometheus.CounterVec
	ScrapeDuration  prometheus.Histogram

	// Store metrics
	RecordsInserted *prometheus.CounterVec
	InsertErrors    *prometheus.CounterVec

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time
}

// NewMetrics creates a metrics collector registered on its own registry,
// so tests can create multiple instances without duplicate registration
// panics.
func NewMetrics() (*Metrics, *prometheus.Registry) {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	m := &Metrics{
		startTime: time.Now(),

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backend_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backend_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),

		PagesFetched: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scraper_pages_fetched_total",
				Help: "Directory listing pages fetched, by outcome",
			},
			[]string{"outcome"},
		),
		ProfilesScraped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scraper_profiles_scraped_total",
				Help: "Professor profiles scraped, by outcome",
			},
			[]string{"outcome"},
		),
		ScrapeDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "scraper_run_duration_seconds",
				Help:    "Full scrape run duration in seconds",
				Buckets: []float64{1, 10, 30, 60, 120, 300, 600, 1800, 3600},
			},
		),

		RecordsInserted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_records_inserted_total",
				Help: "Records inserted into the store, by table",
			},
			[]string{"table"},
		),
		InsertErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_insert_errors_total",
				Help: "Failed record inserts, by table",
			},
			[]string{"table"},
		),

		Uptime: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "backend_uptime_seconds",
				Help: "Process uptime in seconds",
			},
		),
	}

	return m, registry
}

// RecordHTTPRequest records one completed HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.Uptime.Set(time.Since(m.startTime).Seconds())
}

// RecordPageFetch records a listing page fetch outcome ("ok" or "failed").
func (m *Metrics) RecordPageFetch(outcome string) {
	m.PagesFetched.WithLabelValues(outcome).Inc()
}

// RecordProfileScrape records a profile scrape outcome ("ok" or "failed").
func (m *Metrics) RecordProfileScrape(outcome string) {
	m.ProfilesScraped.WithLabelValues(outcome).Inc()
}

// RecordScrapeRun records the duration of a complete scrape run.
func (m *Metrics) RecordScrapeRun(duration time.Duration) {
	m.ScrapeDuration.Observe(duration.Seconds())
}

// RecordInsert records a successful insert into the named table.
func (m *Metrics) RecordInsert(table string) {
	m.RecordsInserted.WithLabelValues(table).Inc()
}

// RecordInsertError records a failed insert into the named table.
func (m *Metrics) RecordInsertError(table string) {
	m.InsertErrors.WithLabelValues(table).Inc()
}
