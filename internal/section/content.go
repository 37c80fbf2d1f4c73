package section

import (
	"bytes"
	"encoding/json"

	"github.com/HuskyLLM/husky-scraper/internal/contact"
	"github.com/HuskyLLM/husky-scraper/internal/course"
)

// GeneralContent is the reserved bucket for content encountered before any
// heading. Every ContentMap contains it, even when empty.
const GeneralContent = "General Content"

// Item is one piece of extracted content filed under a heading: a text
// paragraph, a table, a bullet list, or a course record.
type Item interface {
	contentItem()
}

// Text is a plain paragraph or flattened container.
type Text string

func (Text) contentItem() {}

// Table is the flattened rows of one table element; row 0 is the header row.
type Table [][]string

func (Table) contentItem() {}

func (t Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Table [][]string `json:"Table"`
	}{[][]string(t)})
}

// Bullet is one list item with the hyperlinks it carried.
type Bullet struct {
	Text  string         `json:"text"`
	Links []contact.Link `json:"links"`
}

// BulletList is one whole ul/ol, stored as a single item.
type BulletList []Bullet

func (BulletList) contentItem() {}

// CourseItem wraps a parsed course record as a content item.
type CourseItem struct {
	course.Course
}

func (CourseItem) contentItem() {}

// ContentMap maps heading text to the ordered content items filed under it,
// preserving the order headings were first seen. Keys are created
// explicitly; there is no implicit default-value behavior.
type ContentMap struct {
	keys  []string
	items map[string][]Item
}

// NewContentMap returns a map seeded with the GeneralContent bucket.
func NewContentMap() *ContentMap {
	m := &ContentMap{items: map[string][]Item{}}
	m.Ensure(GeneralContent)
	return m
}

// Ensure creates an empty bucket for key if one does not exist yet.
func (m *ContentMap) Ensure(key string) {
	if _, ok := m.items[key]; ok {
		return
	}
	m.keys = append(m.keys, key)
	m.items[key] = []Item{}
}

// Append files an item under key, creating the bucket if needed.
func (m *ContentMap) Append(key string, it Item) {
	m.Ensure(key)
	m.items[key] = append(m.items[key], it)
}

// Keys returns the heading keys in first-seen order.
func (m *ContentMap) Keys() []string {
	return m.keys
}

// Items returns the ordered items filed under key.
func (m *ContentMap) Items(key string) []Item {
	return m.items[key]
}

// MarshalJSON emits the map as a JSON object in first-seen key order.
func (m *ContentMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(m.items[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
