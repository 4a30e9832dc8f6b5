package scraper

import (
	"context"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Extract fetches the profile page for slug and assembles a Professor
// record. It returns nil only on total fetch failure; a page with missing
// regions still yields a record with those fields unset, and the caller
// decides whether an empty name makes it a failure.
func (s *Scraper) Extract(ctx context.Context, slug string, research, locations Vocabulary) *Professor {
	doc := s.fetcher.Fetch(ctx, s.cfg.BaseURL+slug+"/")
	if doc == nil {
		return nil
	}

	prof := &Professor{ResearchInterests: []string{}}

	if sel := doc.Find(".single-people__header-title").First(); sel.Length() > 0 {
		prof.Name = strings.ReplaceAll(strings.TrimSpace(sel.Text()), " ", " ")
	}
	if sel := doc.Find(".single-people__header-description").First(); sel.Length() > 0 {
		prof.Title = strings.TrimSpace(sel.Text())
	}
	if sel := doc.Find(".single-people__aside-roles").First(); sel.Length() > 0 {
		prof.Position = strings.TrimSpace(sel.Text())
	}

	s.classifyAsideItems(doc, prof, research, locations)

	prof.PersonalWebsite = websiteLink(doc)
	if prof.GoogleScholar == "" {
		prof.GoogleScholar = scholarLink(doc)
	}

	return prof
}

// classifyAsideItems runs the rule cascade over every aside list fragment.
// The rules are independent: one fragment may match several of them, and
// for the scalar fields the last matching fragment wins because scanning
// never short-circuits.
func (s *Scraper) classifyAsideItems(doc *goquery.Document, prof *Professor, research, locations Vocabulary) {
	seen := make(map[string]struct{})

	doc.Find(".single-people__aside-list-item").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}

		if research.Contains(text) {
			if _, dup := seen[text]; !dup {
				seen[text] = struct{}{}
				prof.ResearchInterests = append(prof.ResearchInterests, text)
			}
		}

		if locations.Contains(text) {
			prof.Location = text
		}

		if strings.Contains(text, "@") {
			prof.Email = text
		}

		if looksLikePhone(text) {
			prof.Phone = text
		}
	})
}

// looksLikePhone reports whether a fragment has at least one digit and one
// of the separators a phone number uses. Known over-match: a date such as
// "2023-01-01" also satisfies it.
func looksLikePhone(text string) bool {
	hasDigit := strings.ContainsFunc(text, unicode.IsDigit)
	return hasDigit && strings.ContainsAny(text, ".-()")
}

// websiteLink finds an h3 heading whose text is exactly "Website" and
// returns the href of the next anchor after it in document order, or "".
func websiteLink(doc *goquery.Document) string {
	var heading *html.Node
	doc.Find("h3").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if strings.TrimSpace(sel.Text()) == "Website" {
			heading = sel.Nodes[0]
			return false
		}
		return true
	})
	if heading == nil {
		return ""
	}

	for node := nextInDocument(heading); node != nil; node = nextInDocument(node) {
		if node.Type != html.ElementNode || node.Data != "a" {
			continue
		}
		for _, attr := range node.Attr {
			if attr.Key == "href" && attr.Val != "" {
				return attr.Val
			}
		}
	}
	return ""
}

// scholarLink returns the href of the first anchor in document order whose
// target contains scholar.google.com, or "".
func scholarLink(doc *goquery.Document) string {
	link := ""
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		if strings.Contains(href, "scholar.google.com") {
			link = href
			return false
		}
		return true
	})
	return link
}

// nextInDocument advances one step in document order: first child, else
// next sibling, else the nearest ancestor's next sibling.
func nextInDocument(node *html.Node) *html.Node {
	if node.FirstChild != nil {
		return node.FirstChild
	}
	for node != nil {
		if node.NextSibling != nil {
			return node.NextSibling
		}
		node = node.Parent
	}
	return nil
}
