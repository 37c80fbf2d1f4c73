// Package page assembles whole catalog pages: it locates the configured
// content regions, delegates each to the section extractor, and bundles the
// results with the page-wide contact record. It also carries the two
// specialized parsers for faculty rosters and accreditation tables, whose
// markup does not follow the generic region shape.
package page

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/HuskyLLM/husky-scraper/internal/contact"
	"github.com/HuskyLLM/husky-scraper/internal/normalize"
	"github.com/HuskyLLM/husky-scraper/internal/section"
)

// Region names one labeled content area and the container ids it may live
// under. Several ids can map to one label because the CMS renames containers
// between catalog editions.
type Region struct {
	Label string   `yaml:"label" json:"label"`
	IDs   []string `yaml:"ids" json:"ids"`
}

// DefaultRegions is the region table shared by the narrative catalog pages.
// Pages carry only a subset of these containers; absent ids are skipped.
var DefaultRegions = []Region{
	{Label: "Overview", IDs: []string{"textcontainer", "overviewtextcontainer"}},
	{Label: "Chair Persons", IDs: []string{"chairstextcontainer"}},
	{Label: "Programs", IDs: []string{"programrequirementstextcontainer", "programstextcontainer"}},
	{Label: "Major Requirements", IDs: []string{"majorrequirementstextcontainer"}},
	{Label: "Minor Requirements", IDs: []string{"newitemtextcontainer", "minorrequirementstextcontainer"}},
	{Label: "Plan of Study", IDs: []string{"planofstudytextcontainer"}},
	{Label: "Army ROTC Program", IDs: []string{"armyrotcprogramtextcontainer"}},
	{Label: "Navy ROTC Program", IDs: []string{"navyrotcprogramtextcontainer"}},
	{Label: "Air Force ROTC Program", IDs: []string{"airforcerotcprogramtextcontainer"}},
}

// Content is the ordered label→extracted-content mapping for one page, plus
// the page's source URL. It marshals as one JSON object with "url" first.
type Content struct {
	URL      string
	labels   []string
	sections map[string]*section.ContentMap
}

func (c *Content) set(label string, m *section.ContentMap) {
	if c.sections == nil {
		c.sections = map[string]*section.ContentMap{}
	}
	if _, ok := c.sections[label]; !ok {
		c.labels = append(c.labels, label)
	}
	c.sections[label] = m
}

// Labels returns the region labels present on this page, in configured order.
func (c *Content) Labels() []string {
	return c.labels
}

// Section returns the extracted content for label, or nil when the page had
// no matching container.
func (c *Content) Section(label string) *section.ContentMap {
	return c.sections[label]
}

func (c Content) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	u, err := json.Marshal(c.URL)
	if err != nil {
		return nil, err
	}
	buf.WriteString(`"url":`)
	buf.Write(u)
	for _, label := range c.labels {
		buf.WriteByte(',')
		k, err := json.Marshal(label)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(c.sections[label])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Body is the value stored under a page's title key in the output object.
type Body struct {
	Content     Content         `json:"Content"`
	ContactInfo *contact.Record `json:"contact_info"`
}

// Record is one assembled page.
type Record struct {
	Title string
	Body
}

// Assemble parses markup, extracts every configured region present on the
// page, and returns the page record keyed by its normalized title. A region
// whose ids are all absent contributes no label; when several ids of one
// label are present, each is extracted (all feeding the shared contact
// record) and the last one's content is kept.
func Assemble(markup []byte, regions []Region, pageURL string) (Record, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return Record{}, fmt.Errorf("parse page: %w", err)
	}

	contacts := contact.NewRecord()
	content := Content{URL: pageURL}
	for _, region := range regions {
		for _, id := range region.IDs {
			sel := doc.Find("div#" + id).First()
			if sel.Length() == 0 {
				continue
			}
			content.set(region.Label, section.Extract(sel, contacts))
		}
	}

	return Record{
		Title: normalize.Clean(doc.Find("title").First().Text()),
		Body:  Body{Content: content, ContactInfo: contacts},
	}, nil
}
