package course

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func TestSplitTitleHours(t *testing.T) {
	cases := []struct {
		title     string
		wantTitle string
		wantHours string
	}{
		{"Data Structures (4 Hours)", "Data Structures", "4"},
		{"Directed Study (1-4 Hours)", "Directed Study", "1-4"},
		{"Senior Seminar", "Senior Seminar", NoHours},
		// A trailing non-hours parenthetical is stripped but contributes no hours.
		{"Capstone (Honors)", "Capstone", NoHours},
		// With several parenthetical groups the strip reaches back to the
		// first one that still ends the title, and the hours come from the
		// last hours-shaped group.
		{"Topics (Advanced) (4 Hours)", "Topics", "4"},
	}
	for _, c := range cases {
		gotTitle, gotHours := SplitTitleHours(c.title)
		if gotTitle != c.wantTitle || gotHours != c.wantHours {
			t.Fatalf("SplitTitleHours(%q) = (%q, %q), want (%q, %q)",
				c.title, gotTitle, gotHours, c.wantTitle, c.wantHours)
		}
	}
}

func mustBlock(t *testing.T, html string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}
	return doc.Find("div.courseblock").First()
}

func TestParseBlock_Complete(t *testing.T) {
	block := mustBlock(t, `<div class="courseblock">
		<p class="courseblocktitle">CS 2500. Fundamentals of Computer Science. (4 Hours)</p>
		<p class="cb_desc">Introduces program design.</p>
		<p class="courseblockextra">Prereq: none.</p>
	</div>`)
	got := ParseBlock(block)
	if got.Title != "CS 2500. Fundamentals of Computer Science." {
		t.Fatalf("title = %q", got.Title)
	}
	if got.Hours != "4" {
		t.Fatalf("hours = %q", got.Hours)
	}
	if got.Description != "Introduces program design." {
		t.Fatalf("description = %q", got.Description)
	}
	if got.Prerequisites != "Prereq: none." {
		t.Fatalf("prerequisites = %q", got.Prerequisites)
	}
}

func TestParseBlock_MissingSubElements(t *testing.T) {
	block := mustBlock(t, `<div class="courseblock">
		<p class="courseblocktitle">Data Structures (4 Hours)</p>
		<p class="cb_desc">Intro to...</p>
	</div>`)
	got := ParseBlock(block)
	if got.Title != "Data Structures" || got.Hours != "4" {
		t.Fatalf("title/hours = %q/%q", got.Title, got.Hours)
	}
	if got.Description != "Intro to..." {
		t.Fatalf("description = %q", got.Description)
	}
	if got.Prerequisites != NoPrerequisites {
		t.Fatalf("prerequisites = %q, want sentinel", got.Prerequisites)
	}
}

func TestParseBlock_EmptyBlock(t *testing.T) {
	block := mustBlock(t, `<div class="courseblock"></div>`)
	got := ParseBlock(block)
	if got.Title != "" {
		t.Fatalf("title = %q", got.Title)
	}
	if got.Hours != NoHours || got.Description != NoDescription || got.Prerequisites != NoPrerequisites {
		t.Fatalf("expected all sentinels, got %+v", got)
	}
}

func TestParseBlock_NormalizesUnicode(t *testing.T) {
	block := mustBlock(t, `<div class="courseblock">
		<p class="courseblocktitle">Music Theory` + "—" + `Advanced (2 Hours)</p>
		<p class="cb_desc">Continues tonal harmony` + " " + `study.</p>
	</div>`)
	got := ParseBlock(block)
	if got.Title != "Music Theory Advanced" {
		t.Fatalf("title = %q", got.Title)
	}
	if got.Description != "Continues tonal harmony study." {
		t.Fatalf("description = %q", got.Description)
	}
}
