package page

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/HuskyLLM/husky-scraper/internal/course"
)

// ParseCourses extracts every course block on a department listing page, in
// document order.
func ParseCourses(markup []byte) ([]course.Course, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	out := []course.Course{}
	doc.Find("div.courseblock").Each(func(_ int, block *goquery.Selection) {
		out = append(out, course.ParseBlock(block))
	})
	return out, nil
}
