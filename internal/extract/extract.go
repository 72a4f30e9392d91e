// Package extract produces per-page plain text from PDF documents, along
// with the debug dump format used to inspect and replay extractions.
package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Page holds the extracted text of a single PDF page.
type Page struct {
	Number int    // 1-indexed page number in the source document
	Text   string // extracted plain text, trimmed
}

// Pages extracts plain text from every page of the PDF at path.
// Null pages are skipped entirely; unreadable pages are kept as empty text
// so page numbering stays aligned with the source document.
func Pages(ctx context.Context, path string) ([]Page, error) {
	if err := ValidatePDFPath(path); err != nil {
		return nil, err
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer f.Close()

	fonts := make(map[string]*pdf.Font)
	var pages []Page

	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}

		text, err := p.GetPlainText(fonts)
		if err != nil {
			pages = append(pages, Page{Number: i})
			continue
		}
		pages = append(pages, Page{Number: i, Text: strings.TrimSpace(text)})
	}

	return pages, nil
}

// FindPage returns the page with the given number. Page numbers are not
// slice indices: extraction skips unreadable pages, so the slice can have
// gaps.
func FindPage(pages []Page, number int) (Page, bool) {
	for _, p := range pages {
		if p.Number == number {
			return p, true
		}
	}
	return Page{}, false
}

// FirstLine returns the first non-empty line of the page text.
func (p Page) FirstLine() string {
	for _, line := range strings.Split(p.Text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// Lines returns the non-empty lines of the page text in order.
func (p Page) Lines() []string {
	var lines []string
	for _, line := range strings.Split(p.Text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
