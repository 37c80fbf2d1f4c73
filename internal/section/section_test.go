package section

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/HuskyLLM/husky-scraper/internal/contact"
	"github.com/HuskyLLM/husky-scraper/internal/course"
)

func region(t *testing.T, inner string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<html><body><div id="textcontainer">` + inner + `</div></body></html>`))
	if err != nil {
		t.Fatal(err)
	}
	return doc.Find("div#textcontainer")
}

func TestExtract_HeadingAndParagraph(t *testing.T) {
	rec := contact.NewRecord()
	got := Extract(region(t, `<h2>Overview</h2><p>Visit us.</p>`), rec)

	items := got.Items("Overview")
	if len(items) != 1 {
		t.Fatalf("expected one item under Overview, got %d", len(items))
	}
	if items[0] != Text("Visit us.") {
		t.Fatalf("item = %#v", items[0])
	}
	if len(got.Items(GeneralContent)) != 0 {
		t.Fatalf("expected empty general bucket, got %v", got.Items(GeneralContent))
	}
}

func TestExtract_HeadlessContentLandsInGeneralBucket(t *testing.T) {
	rec := contact.NewRecord()
	got := Extract(region(t, `<p>First.</p><p>Second.</p>`), rec)

	items := got.Items(GeneralContent)
	want := []Item{Text("First."), Text("Second.")}
	if !reflect.DeepEqual(items, want) {
		t.Fatalf("general bucket = %#v, want %#v", items, want)
	}
	if !reflect.DeepEqual(got.Keys(), []string{GeneralContent}) {
		t.Fatalf("keys = %v", got.Keys())
	}
}

func TestExtract_GeneralBucketAlwaysPresent(t *testing.T) {
	rec := contact.NewRecord()
	got := Extract(region(t, ``), rec)
	if !reflect.DeepEqual(got.Keys(), []string{GeneralContent}) {
		t.Fatalf("keys = %v", got.Keys())
	}
}

func TestExtract_Table(t *testing.T) {
	rec := contact.NewRecord()
	got := Extract(region(t, `<h2>Accredited Programs</h2>
		<table>
			<tr><th>Program</th><th>Agency</th></tr>
			<tr><td>Nursing</td><td>CCNE</td></tr>
		</table>`), rec)

	items := got.Items("Accredited Programs")
	if len(items) != 1 {
		t.Fatalf("expected one table item, got %d", len(items))
	}
	table, ok := items[0].(Table)
	if !ok {
		t.Fatalf("item is %T, want Table", items[0])
	}
	want := Table{{"Program", "Agency"}, {"Nursing", "CCNE"}}
	if !reflect.DeepEqual(table, want) {
		t.Fatalf("table = %v, want %v", table, want)
	}
}

func TestExtract_HeadlessTableLandsInGeneralBucket(t *testing.T) {
	rec := contact.NewRecord()
	got := Extract(region(t, `<table><tr><td>x</td></tr></table>`), rec)
	if len(got.Items(GeneralContent)) != 1 {
		t.Fatalf("general bucket = %v", got.Items(GeneralContent))
	}
}

func TestExtract_CourseBlocksSuppressNarrativeNodes(t *testing.T) {
	rec := contact.NewRecord()
	got := Extract(region(t, `<h2>Courses</h2>
		<p>Before the listing.</p>
		<div class="courseblock">
			<p class="courseblocktitle">Data Structures (4 Hours)</p>
			<p class="cb_desc">Intro to...</p>
		</div>
		<p>After the listing.</p>`), rec)

	items := got.Items("Courses")
	// The paragraph before the first course block is kept; the course block's
	// own paragraphs and everything after it are suppressed.
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %#v", items)
	}
	if items[0] != Text("Before the listing.") {
		t.Fatalf("first item = %#v", items[0])
	}
	ci, ok := items[1].(CourseItem)
	if !ok {
		t.Fatalf("second item is %T, want CourseItem", items[1])
	}
	want := course.Course{
		Title:         "Data Structures",
		Description:   "Intro to...",
		Prerequisites: course.NoPrerequisites,
		Hours:         "4",
	}
	if ci.Course != want {
		t.Fatalf("course = %+v, want %+v", ci.Course, want)
	}
}

func TestExtract_ListOnlyUnderRealHeading(t *testing.T) {
	rec := contact.NewRecord()
	got := Extract(region(t, `
		<ul><li>ignored headless item</li></ul>
		<h3>Requirements</h3>
		<ul>
			<li>Complete <a href="https://example.edu/form">the form</a></li>
			<li>Submit transcripts</li>
		</ul>`), rec)

	if len(got.Items(GeneralContent)) != 0 {
		t.Fatalf("headless list should be dropped, got %v", got.Items(GeneralContent))
	}
	items := got.Items("Requirements")
	if len(items) != 1 {
		t.Fatalf("expected one list item, got %#v", items)
	}
	list, ok := items[0].(BulletList)
	if !ok {
		t.Fatalf("item is %T, want BulletList", items[0])
	}
	if len(list) != 2 {
		t.Fatalf("list = %#v", list)
	}
	if list[0].Text != "Complete the form" || len(list[0].Links) != 1 {
		t.Fatalf("first bullet = %+v", list[0])
	}
	if list[0].Links[0].URL != "https://example.edu/form" {
		t.Fatalf("bullet link = %+v", list[0].Links[0])
	}
	if len(list[1].Links) != 0 {
		t.Fatalf("second bullet should carry no links, got %+v", list[1])
	}
	// Bullet links also land in the shared record.
	if len(rec.Hyperlinks) != 1 {
		t.Fatalf("record hyperlinks = %v", rec.Hyperlinks)
	}
}

func TestExtract_ParagraphLinksHarvested(t *testing.T) {
	rec := contact.NewRecord()
	Extract(region(t, `<p>See <a href="https://example.edu/catalog">the catalog</a> or <a href="#top">top</a>.</p>`), rec)
	if len(rec.Hyperlinks) != 1 || rec.Hyperlinks[0].URL != "https://example.edu/catalog" {
		t.Fatalf("hyperlinks = %v", rec.Hyperlinks)
	}
}

func TestExtract_PostPassHarvestsRawRegionText(t *testing.T) {
	// The email sits directly under the region wrapper, outside any routed
	// node type; only the full-region second pass can catch it.
	rec := contact.NewRecord()
	Extract(region(t, `stray text with advisor@example.edu and 617-555-1212`), rec)
	if !reflect.DeepEqual(rec.Emails, []string{"advisor@example.edu"}) {
		t.Fatalf("emails = %v", rec.Emails)
	}
	if !reflect.DeepEqual(rec.PhoneNumbers, []string{"617-555-1212"}) {
		t.Fatalf("phones = %v", rec.PhoneNumbers)
	}
}

func TestExtract_NormalizesHeadings(t *testing.T) {
	rec := contact.NewRecord()
	got := Extract(region(t, `<h2>Plan`+" "+`of Study</h2><p>Year one.</p>`), rec)
	if len(got.Items("Plan of Study")) != 1 {
		t.Fatalf("keys = %v", got.Keys())
	}
}

func TestContentMap_MarshalPreservesOrder(t *testing.T) {
	m := NewContentMap()
	m.Append("Zeta", Text("z"))
	m.Append("Alpha", Text("a"))
	b, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	gi := strings.Index(s, GeneralContent)
	zi := strings.Index(s, "Zeta")
	ai := strings.Index(s, "Alpha")
	if gi < 0 || zi < 0 || ai < 0 || !(gi < zi && zi < ai) {
		t.Fatalf("key order not preserved: %s", s)
	}
}

func TestContentMap_ItemJSONShapes(t *testing.T) {
	m := NewContentMap()
	m.Append("K", Text("hello"))
	m.Append("K", Table{{"a", "b"}})
	m.Append("K", BulletList{{Text: "x", Links: []contact.Link{}}})
	b, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	for _, want := range []string{
		`"hello"`,
		`{"Table":[["a","b"]]}`,
		`[{"text":"x","links":[]}]`,
	} {
		if !strings.Contains(s, want) {
			t.Fatalf("marshal missing %s in %s", want, s)
		}
	}
}
