package page

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/HuskyLLM/husky-scraper/internal/normalize"
)

// NoName is substituted when a faculty block has no strong-tagged name.
const NoName = "No name available"

// Faculty is one roster entry. The name sits in a <strong> child; whatever
// text remains in the block is the title and department line.
type Faculty struct {
	Name            string `json:"Name"`
	TitleDepartment string `json:"Title and Department"`
}

// ParseFaculty extracts every keeptogether roster block from markup.
func ParseFaculty(markup []byte) ([]Faculty, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	roster := []Faculty{}
	doc.Find("p.keeptogether").Each(func(_ int, block *goquery.Selection) {
		name := NoName
		if strong := block.Find("strong").First(); strong.Length() > 0 {
			name = strings.TrimSpace(strong.Text())
		}
		titleDept := flatSelectionText(block)
		if name != NoName {
			titleDept = strings.ReplaceAll(titleDept, name, "")
		}
		roster = append(roster, Faculty{
			Name:            normalize.Clean(name),
			TitleDepartment: normalize.Clean(titleDept),
		})
	})
	return roster, nil
}

// flatSelectionText joins the selection's text nodes with spaces so inline
// elements do not glue adjacent words together.
func flatSelectionText(sel *goquery.Selection) string {
	parts := []string{}
	sel.Contents().Each(func(_ int, c *goquery.Selection) {
		parts = append(parts, c.Text())
	})
	return strings.Join(parts, " ")
}
