package scraper

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// ErrNoProfessorsFound is returned when the whole walk produces zero
// slugs; anything less total is handled per page or per profile.
var ErrNoProfessorsFound = errors.New("no professor names found across all pages")

const (
	shortPauseEvery = 10
	longPauseEvery  = 25
)

// Run performs a complete scrape: load both vocabularies once, walk the
// listing, then extract each profile in order. A profile counts as a
// success only when a record comes back with a non-empty name; otherwise
// its slug lands in FailedSlugs. Failed slugs are not retried.
func (s *Scraper) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	research := s.LoadVocabulary(ctx, ResearchAreas)
	locations := s.LoadVocabulary(ctx, Locations)
	s.log.Info("loaded vocabularies",
		zap.Int("research_areas", len(research)),
		zap.Int("locations", len(locations)))

	slugs, failedPages := s.Walk(ctx)
	if len(slugs) == 0 {
		return nil, ErrNoProfessorsFound
	}
	s.log.Info("listing walk complete",
		zap.Int("discovered", len(slugs)),
		zap.Int("failed_pages", len(failedPages)))

	result := &Result{FailedPages: failedPages}

	for i, slug := range slugs {
		if ctx.Err() != nil {
			break
		}

		prof := s.Extract(ctx, slug, research, locations)
		if prof != nil && prof.Name != "" {
			result.Professors = append(result.Professors, *prof)
			s.recordProfile("ok")
		} else {
			result.FailedSlugs = append(result.FailedSlugs, slug)
			s.recordProfile("failed")
			s.log.Warn("failed to scrape profile", zap.String("slug", slug))
		}

		// Two politeness tiers, applied on a fixed cadence regardless of
		// success or failure.
		switch n := i + 1; {
		case n%longPauseEvery == 0:
			time.Sleep(s.cfg.LongPause)
		case n%shortPauseEvery == 0:
			time.Sleep(s.cfg.ShortPause)
		}
	}

	result.Report = Report{
		Discovered:  len(slugs),
		Succeeded:   len(result.Professors),
		Failed:      len(result.FailedSlugs),
		SuccessRate: float64(len(result.Professors)) / float64(len(slugs)),
		Duration:    time.Since(start),
	}
	if s.metrics != nil {
		s.metrics.RecordScrapeRun(result.Report.Duration)
	}

	s.log.Info("scrape run complete",
		zap.Int("discovered", result.Report.Discovered),
		zap.Int("succeeded", result.Report.Succeeded),
		zap.Int("failed", result.Report.Failed),
		zap.Float64("success_rate", result.Report.SuccessRate),
		zap.Duration("duration", result.Report.Duration))

	return result, nil
}
