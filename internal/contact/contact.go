// Package contact accumulates emails, phone numbers, and hyperlinks
// harvested from one page's content. A single Record is shared across all
// regions of a page so contacts aggregate page-wide.
package contact

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/HuskyLLM/husky-scraper/internal/normalize"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// Link is one anchored hyperlink: the anchor's normalized text and its raw href.
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// Record collects contact entities for one page. Emails and phone numbers
// deduplicate on exact string match, preserving first-seen order; hyperlinks
// keep every occurrence.
type Record struct {
	Emails       []string `json:"emails"`
	PhoneNumbers []string `json:"phone_numbers"`
	Hyperlinks   []Link   `json:"hyperlinks"`

	seenEmail map[string]struct{}
	seenPhone map[string]struct{}
}

// NewRecord returns an empty Record whose slices marshal as [] rather than null.
func NewRecord() *Record {
	return &Record{
		Emails:       []string{},
		PhoneNumbers: []string{},
		Hyperlinks:   []Link{},
		seenEmail:    map[string]struct{}{},
		seenPhone:    map[string]struct{}{},
	}
}

// HarvestText scans raw text for email addresses and phone numbers and merges
// any new matches into the record. Running it twice over the same text never
// duplicates an entry.
func (r *Record) HarvestText(text string) {
	for _, email := range emailPattern.FindAllString(text, -1) {
		if _, ok := r.seenEmail[email]; ok {
			continue
		}
		r.seenEmail[email] = struct{}{}
		r.Emails = append(r.Emails, email)
	}
	for _, phone := range phonePattern.FindAllString(text, -1) {
		if _, ok := r.seenPhone[phone]; ok {
			continue
		}
		r.seenPhone[phone] = struct{}{}
		r.PhoneNumbers = append(r.PhoneNumbers, phone)
	}
}

// HarvestLinks records every anchor under sel whose href contains a literal
// dot, which filters out bare fragments like "#top". The links are appended
// to the record and also returned so callers can attach them to the item
// that carried them.
func HarvestLinks(sel *goquery.Selection, rec *Record) []Link {
	links := []Link{}
	sel.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if !strings.Contains(href, ".") {
			return
		}
		l := Link{Text: normalize.Clean(a.Text()), URL: href}
		links = append(links, l)
		rec.Hyperlinks = append(rec.Hyperlinks, l)
	})
	return links
}
