package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/HuskyLLM/husky-scraper/internal/page"
)

// Task types select the parser and the output shape for one scraping task.
const (
	TaskCourses       = "courses"       // flat array of course records
	TaskFaculty       = "faculty"       // flat array of roster entries
	TaskAccreditation = "accreditation" // flat array of accreditation rows
	TaskPages         = "pages"         // object keyed by page title
)

// Task is one named scraping job: a list of catalog URLs and a target file.
type Task struct {
	Type       string   `yaml:"type" json:"type"`
	URLs       []string `yaml:"urls" json:"urls"`
	OutputFile string   `yaml:"output_file" json:"output_file"`

	// IndexURL, for course tasks, names a catalog index page whose
	// department links are discovered and appended to URLs.
	IndexURL string `yaml:"index_url" json:"index_url"`

	// Regions overrides the default region table for pages tasks.
	Regions []page.Region `yaml:"regions" json:"regions"`
}

// Config drives one scraper run.
type Config struct {
	Tasks     map[string]Task
	UserAgent string
	Timeout   time.Duration
	// ReportPDF, when set, writes a human-readable run digest after scraping.
	ReportPDF string
}

// FileConfig is the on-disk configuration schema, YAML or JSON.
type FileConfig struct {
	ScrapingTasks map[string]Task `yaml:"scraping_tasks" json:"scraping_tasks"`
	UserAgent     string          `yaml:"user_agent" json:"user_agent"`
	TimeoutSecs   int             `yaml:"timeout_seconds" json:"timeout_seconds"`
}

// LoadConfigFile reads YAML or JSON into FileConfig, dispatching on the file
// extension and falling back to trying both.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}
