package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// deansWelcome is a boilerplate card that appears in the directory listing
// but is not a person.
const deansWelcome = "Dean’s Welcome To Our Community"

// emptyPageFloor is the page index past which an empty page is treated as
// the end of the listing rather than a transient gap.
const emptyPageFloor = 10

// Slugify normalizes a display name into the URL-safe identifier used by
// profile URLs: trim, non-breaking spaces to spaces, lowercase, spaces to
// hyphens. Punctuation other than spaces is preserved. Idempotent.
func Slugify(name string) string {
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	return s
}

// pageURL builds the listing URL for a 1-based page index.
func (s *Scraper) pageURL(page int) string {
	if page == 1 {
		return s.cfg.BaseURL
	}
	return fmt.Sprintf("%spage/%d/", s.cfg.BaseURL, page)
}

// listingSlugs pulls every professor slug from one listing document,
// skipping boilerplate cards.
func listingSlugs(doc *goquery.Document) []string {
	var slugs []string
	doc.Find(".standard-card__title").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text == deansWelcome {
			return
		}
		slugs = append(slugs, Slugify(text))
	})
	return slugs
}

// Walk iterates the paginated directory index and returns every slug
// found, in listing order, along with the page numbers that failed to
// fetch. Slugs repeated across pages are kept as-is. An empty page past
// emptyPageFloor ends the walk early; an empty page at or before it is
// treated as a gap and skipped.
func (s *Scraper) Walk(ctx context.Context) (slugs []string, failedPages []int) {
	for page := 1; page <= s.cfg.TotalPages; page++ {
		if ctx.Err() != nil {
			return slugs, failedPages
		}

		doc := s.fetcher.Fetch(ctx, s.pageURL(page))
		if doc == nil {
			failedPages = append(failedPages, page)
			s.recordPage("failed")
			s.log.Warn("failed to fetch listing page", zap.Int("page", page))
			continue
		}
		s.recordPage("ok")

		pageSlugs := listingSlugs(doc)
		if len(pageSlugs) == 0 {
			s.log.Info("no professors found on page", zap.Int("page", page))
			if page > emptyPageFloor {
				break
			}
		} else {
			slugs = append(slugs, pageSlugs...)
			s.log.Debug("scraped listing page",
				zap.Int("page", page),
				zap.Int("found", len(pageSlugs)))
		}

		time.Sleep(s.cfg.PageDelay)
	}

	return slugs, failedPages
}
