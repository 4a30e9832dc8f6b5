package scraper

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// VocabularyKind selects which filter widget of the directory index to
// read label strings from.
type VocabularyKind string

const (
	ResearchAreas VocabularyKind = "research_areas"
	Locations     VocabularyKind = "locations"
)

// Vocabulary is a closed set of valid label strings. Classification is
// exact match after trimming; near-matches are not members.
type Vocabulary map[string]struct{}

// Contains reports whether label is a member.
func (v Vocabulary) Contains(label string) bool {
	_, ok := v[label]
	return ok
}

// Labels returns the members in unspecified order.
func (v Vocabulary) Labels() []string {
	labels := make([]string, 0, len(v))
	for label := range v {
		labels = append(labels, label)
	}
	return labels
}

// LoadVocabulary fetches the directory index once and collects the label
// texts inside the filter container for kind. An absent container or a
// failed fetch yields an empty vocabulary, never an error.
func (s *Scraper) LoadVocabulary(ctx context.Context, kind VocabularyKind) Vocabulary {
	vocab := Vocabulary{}

	doc := s.fetcher.Fetch(ctx, s.cfg.BaseURL)
	if doc == nil {
		return vocab
	}

	container := doc.Find("#filter-dropdown-content-" + string(kind))
	container.Find("label").Each(func(_ int, sel *goquery.Selection) {
		label := strings.TrimSpace(sel.Text())
		if label != "" {
			vocab[label] = struct{}{}
		}
	})

	return vocab
}
