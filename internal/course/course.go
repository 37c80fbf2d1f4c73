// Package course parses the recurring course block markup unit: a title
// carrying a parenthesized credit-hour suffix, a description, and an
// optional prerequisite paragraph.
package course

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"

	"github.com/HuskyLLM/husky-scraper/internal/normalize"
)

// Placeholder values substituted when a course block lacks the matching
// sub-element. Missing data is never an error.
const (
	NoHours         = "No hours available"
	NoDescription   = "No description available"
	NoPrerequisites = "No prerequisites available"
)

var (
	// Credit hours appear as "(4 Hours)" or a range like "(1-4 Hours)".
	hoursPattern = regexp.MustCompile(`\((\d+-\d+|\d+)\s*Hours\)`)
	// A trailing parenthetical is stripped from the title whether or not it
	// matched the hours shape.
	trailingParen = regexp.MustCompile(`\s*\(.*?\)\s*$`)
)

// Course is one parsed course block. The JSON field names match the shape
// the downstream dataset builder consumes.
type Course struct {
	Title         string `json:"Course Title"`
	Description   string `json:"Description"`
	Prerequisites string `json:"Prerequisites"`
	Hours         string `json:"Hours"`
}

// SplitTitleHours pulls the credit-hour suffix out of a raw course title.
// When the title carries several parenthetical groups, the last hours-shaped
// one wins. The returned title always has its trailing parenthetical
// removed, even when that group did not match the hours shape.
func SplitTitleHours(title string) (cleaned string, hours string) {
	hours = NoHours
	if m := hoursPattern.FindAllStringSubmatch(title, -1); len(m) > 0 {
		hours = m[len(m)-1][1]
	}
	cleaned = trailingParen.ReplaceAllString(title, "")
	return cleaned, hours
}

// IsBlock reports whether sel is a course block container.
func IsBlock(sel *goquery.Selection) bool {
	return sel.HasClass("courseblock")
}

// ParseBlock extracts one Course from a courseblock container. Absent
// sub-elements yield the package sentinels; every stored string is
// normalized.
func ParseBlock(block *goquery.Selection) Course {
	title, hours := SplitTitleHours(normalize.Clean(block.Find("p.courseblocktitle").First().Text()))

	description := NoDescription
	if d := block.Find("p.cb_desc").First(); d.Length() > 0 {
		description = normalize.Clean(d.Text())
	}
	prereq := NoPrerequisites
	if p := block.Find("p.courseblockextra").First(); p.Length() > 0 {
		prereq = normalize.Clean(p.Text())
	}

	return Course{
		Title:         normalize.Clean(title),
		Description:   description,
		Prerequisites: prereq,
		Hours:         normalize.Clean(hours),
	}
}
