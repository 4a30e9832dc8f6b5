package scraper

import (
	"time"

	"github.com/undergradassistant/backend/internal/logging"
	"github.com/undergradassistant/backend/internal/monitoring"
)

// Config holds scraper settings. BaseURL is the directory index; all
// profile and page URLs derive from it.
type Config struct {
	BaseURL      string
	TotalPages   int
	FetchTimeout time.Duration
	// PageDelay separates listing page fetches; ShortPause and LongPause
	// are the two politeness tiers applied while walking profiles.
	PageDelay  time.Duration
	ShortPause time.Duration
	LongPause  time.Duration
}

// DefaultConfig returns settings matching the production directory site.
func DefaultConfig() Config {
	return Config{
		BaseURL:      "https://www.khoury.northeastern.edu/people/",
		TotalPages:   56,
		FetchTimeout: 30 * time.Second,
		PageDelay:    500 * time.Millisecond,
		ShortPause:   500 * time.Millisecond,
		LongPause:    2 * time.Second,
	}
}

// Scraper crawls the faculty directory sequentially: one in-flight request
// at a time, fixed pauses between fetches. There is no parallelism on
// purpose; the target is a university site.
type Scraper struct {
	cfg     Config
	fetcher *Fetcher
	log     *logging.Logger
	metrics *monitoring.Metrics
}

// New creates a scraper. The metrics argument may be nil.
func New(cfg Config, log *logging.Logger, metrics *monitoring.Metrics) *Scraper {
	if log == nil {
		log = logging.NewNop()
	}
	return &Scraper{
		cfg:     cfg,
		fetcher: NewFetcher(cfg.FetchTimeout),
		log:     log.Named("scraper"),
		metrics: metrics,
	}
}

func (s *Scraper) recordPage(outcome string) {
	if s.metrics != nil {
		s.metrics.RecordPageFetch(outcome)
	}
}

func (s *Scraper) recordProfile(outcome string) {
	if s.metrics != nil {
		s.metrics.RecordProfileScrape(outcome)
	}
}
