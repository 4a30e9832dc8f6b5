package scraper

import "time"

// Professor is one scraped faculty record. Every field except Name may be
// empty; a record with an empty Name counts as a failed scrape downstream.
type Professor struct {
	Name              string   `json:"name"`
	Title             string   `json:"title,omitempty"`
	Position          string   `json:"position,omitempty"`
	ResearchInterests []string `json:"research_interests"`
	Location          string   `json:"location,omitempty"`
	Email             string   `json:"email,omitempty"`
	Phone             string   `json:"phone,omitempty"`
	PersonalWebsite   string   `json:"personal_website,omitempty"`
	GoogleScholar     string   `json:"google_scholar,omitempty"`
}

// Report summarizes one scrape run.
type Report struct {
	Discovered  int           `json:"discovered"`
	Succeeded   int           `json:"succeeded"`
	Failed      int           `json:"failed"`
	SuccessRate float64       `json:"success_rate"`
	Duration    time.Duration `json:"duration"`
}

// Result is the output of a full scrape run: the batch of records, the
// slugs that failed to produce a named record, and the listing pages that
// failed to fetch.
type Result struct {
	Professors  []Professor
	FailedSlugs []string
	FailedPages []int
	Report      Report
}
