package scraper

import (
	"bytes"
	"context"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// Fetcher issues single-attempt GETs and parses the response into a
// document tree. Failure of any kind (transport error, non-2xx status,
// empty body, unparseable markup) yields a nil document, never an error:
// one missed page means one failed scrape, not an aborted run.
type Fetcher struct {
	client *resty.Client
}

// NewFetcher creates a fetcher with the given request timeout. Retries are
// deliberately disabled.
func NewFetcher(timeout time.Duration) *Fetcher {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", "research-connect/1.0")

	return &Fetcher{client: client}
}

// Fetch GETs url and returns the parsed document, or nil on any failure.
func (f *Fetcher) Fetch(ctx context.Context, url string) *goquery.Document {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil
	}

	body := resp.Body()
	if len(body) == 0 {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil
	}
	return doc
}
