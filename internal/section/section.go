// Package section implements the content extraction walk over one labeled
// region of a page. A heading cursor tracks which bucket each encountered
// node belongs to; content seen before any heading lands in the
// GeneralContent bucket.
package section

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/HuskyLLM/husky-scraper/internal/contact"
	"github.com/HuskyLLM/husky-scraper/internal/course"
	"github.com/HuskyLLM/husky-scraper/internal/normalize"
)

const contentTags = "h1, h2, h3, h4, h5, h6, p, table, div, ul, ol"

// Extract walks region's content nodes in document order and folds them
// into a ContentMap, harvesting contact entities into contacts as a side
// effect. Once a course block has been seen, plain paragraph and container
// nodes are ignored for the rest of the region: a region is either a course
// listing or narrative text, never both.
func Extract(region *goquery.Selection, contacts *contact.Record) *ContentMap {
	content := NewContentMap()
	heading := "" // empty until the first heading node
	coursesFound := false

	bucket := func() string {
		if heading == "" {
			return GeneralContent
		}
		return heading
	}

	region.Find(contentTags).Each(func(_ int, sel *goquery.Selection) {
		switch name := goquery.NodeName(sel); {
		case isHeading(name):
			heading = normalize.Clean(sel.Text())
			content.Ensure(heading)

		case name == "table":
			content.Append(bucket(), tableRows(sel))

		case name == "div" && course.IsBlock(sel):
			content.Append(bucket(), CourseItem{course.ParseBlock(sel)})
			coursesFound = true

		case (name == "div" || name == "p") && !coursesFound:
			contact.HarvestLinks(sel, contacts)
			content.Append(bucket(), Text(normalize.Clean(flatText(sel))))

		case (name == "ul" || name == "ol") && heading != "":
			list := BulletList{}
			sel.Find("li").Each(func(_ int, li *goquery.Selection) {
				list = append(list, Bullet{
					Text:  normalize.Clean(li.Text()),
					Links: contact.HarvestLinks(li, contacts),
				})
			})
			content.Append(heading, list)
		}
	})

	// Second pass over the whole region's text: entities sitting outside any
	// routed node type (raw text directly under the region wrapper) would
	// otherwise be lost.
	contacts.HarvestText(flatText(region))

	return content
}

func isHeading(name string) bool {
	return len(name) == 2 && name[0] == 'h' && name[1] >= '1' && name[1] <= '6'
}

// tableRows flattens every tr into its normalized th/td cell strings. The
// header row is included at index 0 with no special treatment.
func tableRows(table *goquery.Selection) Table {
	rows := Table{}
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := []string{}
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, normalize.Clean(cell.Text()))
		})
		rows = append(rows, cells)
	})
	return rows
}

// flatText concatenates the text nodes under sel with space separators, so
// text split across inline elements does not run together.
func flatText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		appendText(&b, n)
	}
	return b.String()
}

func appendText(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		appendText(b, c)
	}
}
