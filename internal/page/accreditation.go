package page

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/HuskyLLM/husky-scraper/internal/normalize"
)

// Accreditation is one row of an accreditation table, paired with the
// college heading that precedes the table.
type Accreditation struct {
	College string `json:"College"`
	Program string `json:"Program"`
	Agency  string `json:"Accrediting Agency"`
}

// ParseAccreditation reads the accreditation listing inside div#textcontainer:
// each h2 names a college and the accreditation tables that follow it carry
// program/agency rows. Header rows (th cells) are skipped. A page without the
// container yields an empty slice.
func ParseAccreditation(markup []byte) ([]Accreditation, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	out := []Accreditation{}
	college := ""
	doc.Find("div#textcontainer").First().
		Find("h2, table.tbl_Accreditation").Each(func(_ int, sel *goquery.Selection) {
			if goquery.NodeName(sel) == "h2" {
				college = normalize.Clean(sel.Text())
				return
			}
			sel.Find("tr").Each(func(i int, tr *goquery.Selection) {
				if i == 0 {
					return // header row
				}
				cells := tr.Find("td")
				if cells.Length() < 2 {
					return
				}
				out = append(out, Accreditation{
					College: college,
					Program: normalize.Clean(cells.Eq(0).Text()),
					Agency:  normalize.Clean(cells.Eq(1).Text()),
				})
			})
		})
	return out, nil
}
