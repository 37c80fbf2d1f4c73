package store

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "courses.json")
	in := []map[string]string{{"Course Title": "Data Structures", "Hours": "4"}}
	if err := Save(in, path); err != nil {
		t.Fatalf("save: %v", err)
	}

	var out []map[string]string
	if err := Load(path, &out); err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch: %v != %v", in, out)
	}
}

func TestSave_PrettyPrints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.json")
	if err := Save(map[string]int{"a": 1}, path); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "\n    \"a\": 1") {
		t.Fatalf("expected indented output, got %q", b)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	var v any
	if err := Load(filepath.Join(t.TempDir(), "absent.json"), &v); err == nil {
		t.Fatal("expected error for missing file")
	}
}
