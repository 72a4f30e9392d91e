package extract

import "testing"

func TestFindPage(t *testing.T) {
	// Page 2 is missing: extraction skipped it.
	pages := []Page{
		{Number: 1, Text: "표지"},
		{Number: 3, Text: "제1장 총칙"},
		{Number: 4, Text: "1-1-1 목적"},
	}

	t.Run("finds by page number, not index", func(t *testing.T) {
		p, ok := FindPage(pages, 4)
		if !ok {
			t.Fatal("expected page 4 to be found")
		}
		if p.Text != "1-1-1 목적" {
			t.Errorf("expected page 4 text, got %q", p.Text)
		}
	})

	t.Run("skipped page not found", func(t *testing.T) {
		if _, ok := FindPage(pages, 2); ok {
			t.Error("expected page 2 to be missing")
		}
	})

	t.Run("beyond document end", func(t *testing.T) {
		if _, ok := FindPage(pages, 99); ok {
			t.Error("expected page 99 to be missing")
		}
	})
}

func TestPageFirstLine(t *testing.T) {
	p := Page{Number: 1, Text: "\n  \n제1장 총칙\n1-1 일반사항"}
	if got := p.FirstLine(); got != "제1장 총칙" {
		t.Errorf("expected first non-empty line, got %q", got)
	}
	if got := (Page{}).FirstLine(); got != "" {
		t.Errorf("expected empty first line for blank page, got %q", got)
	}
}
