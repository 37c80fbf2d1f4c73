package app

import (
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// TaskSummary records what one completed task produced, for the run digest.
type TaskSummary struct {
	Name       string
	Type       string
	OutputFile string
	Records    int
}

// writeDigestPDF renders a one-page human-readable digest of a scrape run:
// one line per task with its record count and output file.
func writeDigestPDF(outPath string, summaries []TaskSummary) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	pdf.SetFontSize(16)
	pdf.MultiCell(0, 8, "Catalog scrape digest", "", "L", false)
	pdf.SetFontSize(10)
	pdf.MultiCell(0, 6, time.Now().Format("2006-01-02 15:04"), "", "L", false)
	pdf.Ln(4)

	pdf.SetFontSize(11)
	if len(summaries) == 0 {
		pdf.MultiCell(0, 6, "No tasks completed.", "", "L", false)
	}
	for _, s := range summaries {
		line := fmt.Sprintf("%s (%s): %d records -> %s", s.Name, s.Type, s.Records, s.OutputFile)
		pdf.MultiCell(0, 6, line, "", "L", false)
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
