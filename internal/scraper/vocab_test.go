package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const indexWithFilters = `<html><body>
<div id="filter-dropdown-content-research_areas">
  <label> Artificial Intelligence </label>
  <label>Systems</label>
  <label></label>
</div>
<div id="filter-dropdown-content-locations">
  <label>Boston</label>
  <label>Seattle</label>
</div>
</body></html>`

func TestLoadVocabulary(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/people/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, indexWithFilters)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	s := newTestScraper(ts, 1)

	research := s.LoadVocabulary(context.Background(), ResearchAreas)
	assert.Len(t, research, 2)
	assert.True(t, research.Contains("Artificial Intelligence"))
	assert.True(t, research.Contains("Systems"))
	// Near-matches are not members.
	assert.False(t, research.Contains("artificial intelligence"))
	assert.False(t, research.Contains(" Artificial Intelligence "))

	locations := s.LoadVocabulary(context.Background(), Locations)
	assert.Len(t, locations, 2)
	assert.True(t, locations.Contains("Boston"))
}

func TestLoadVocabularyAbsentContainer(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/people/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body><p>no filters here</p></body></html>")
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	s := newTestScraper(ts, 1)
	vocab := s.LoadVocabulary(context.Background(), ResearchAreas)

	assert.Empty(t, vocab)
}

func TestLoadVocabularyFetchFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/people/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	s := newTestScraper(ts, 1)
	vocab := s.LoadVocabulary(context.Background(), Locations)

	assert.Empty(t, vocab)
}
