package toc

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/Dydiddl/ASCR/internal/extract"
)

func tocLines() []string {
	return []string{
		"목 차",
		"제1장",
		"적용기준 ······································· 3",
		"1-1 일반사항 ····································· 3",
		"1-1-1 적용범위 ··································· 4",
		"1-2 품질관리 ····································· 7",
		"제2장 가설공사 ··································· 12",
		"2-1 비계 ········································ 12",
		"참 고 자 료 ····································· 95",
		"15",
	}
}

func TestParseLines(t *testing.T) {
	entries := ParseLines(tocLines())
	if len(entries) != 7 {
		t.Fatalf("expected 7 entries, got %d: %+v", len(entries), entries)
	}

	t.Run("bare chapter joins following title line", func(t *testing.T) {
		e := entries[0]
		if e.Kind != KindChapter || e.Title != "제1장 적용기준" || e.Page != 3 {
			t.Errorf("unexpected entry: %+v", e)
		}
	})

	t.Run("item depth is dash count", func(t *testing.T) {
		if entries[1].Number != "1-1" || entries[1].Level != 1 {
			t.Errorf("unexpected entry: %+v", entries[1])
		}
		if entries[2].Number != "1-1-1" || entries[2].Level != 2 {
			t.Errorf("unexpected entry: %+v", entries[2])
		}
	})

	t.Run("single-line chapter", func(t *testing.T) {
		e := entries[4]
		if e.Kind != KindChapter || e.Title != "제2장 가설공사" || e.Page != 12 {
			t.Errorf("unexpected entry: %+v", e)
		}
	})

	t.Run("unnumbered entry", func(t *testing.T) {
		e := entries[6]
		if e.Kind != KindOther || e.Page != 95 {
			t.Errorf("unexpected entry: %+v", e)
		}
	})

	t.Run("standalone page numbers skipped", func(t *testing.T) {
		for _, e := range entries {
			if e.Title == "15" {
				t.Errorf("standalone number parsed as entry: %+v", e)
			}
		}
	})
}

func TestBuildTree(t *testing.T) {
	roots := BuildTree(ParseLines(tocLines()))
	if len(roots) != 3 {
		t.Fatalf("expected 3 roots, got %d", len(roots))
	}

	ch1 := roots[0]
	if ch1.Title != "제1장 적용기준" {
		t.Errorf("unexpected first root: %+v", ch1.Entry)
	}
	if len(ch1.Children) != 2 {
		t.Fatalf("expected 2 children under 제1장, got %d", len(ch1.Children))
	}
	if ch1.Children[0].Number != "1-1" {
		t.Errorf("unexpected child: %+v", ch1.Children[0].Entry)
	}
	if len(ch1.Children[0].Children) != 1 || ch1.Children[0].Children[0].Number != "1-1-1" {
		t.Errorf("expected 1-1-1 nested under 1-1, got %+v", ch1.Children[0].Children)
	}
	if ch1.Children[1].Number != "1-2" {
		t.Errorf("expected 1-2 back at depth 1, got %+v", ch1.Children[1].Entry)
	}

	if got := NodeCount(roots); got != 7 {
		t.Errorf("expected 7 nodes, got %d", got)
	}
	levels := LevelCounts(roots)
	if levels[0] != 3 || levels[1] != 3 || levels[2] != 1 {
		t.Errorf("unexpected level counts: %v", levels)
	}
}

func TestBuildTreeOrphanItem(t *testing.T) {
	// An item with no preceding chapter becomes a root.
	roots := BuildTree([]Entry{
		{Kind: KindItem, Number: "1-1", Title: "일반사항", Page: 3, Level: 1},
	})
	if len(roots) != 1 || roots[0].Number != "1-1" {
		t.Errorf("expected orphan item as root, got %+v", roots)
	}
}

func TestDetectTOCPages(t *testing.T) {
	pages := []extract.Page{
		{Number: 1, Text: "표지"},
		{Number: 2, Text: "목 차\n제1장"},
		{Number: 3, Text: "목차 (계속)\n2-1 비계"},
		{Number: 4, Text: "제1장 적용기준 본문"},
		{Number: 5, Text: "목차라는 단어가 본문에 등장"},
	}

	got := DetectTOCPages(pages)
	if len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Errorf("expected toc pages [2 3], got %v", got)
	}

	t.Run("no toc pages", func(t *testing.T) {
		if got := DetectTOCPages([]extract.Page{{Number: 1, Text: "본문"}}); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})
}

func TestExtractEntries(t *testing.T) {
	pages := []extract.Page{
		{Number: 1, Text: "표지"},
		{Number: 2, Text: strings.Join(tocLines(), "\n")},
		{Number: 3, Text: "제1장 적용기준 본문"},
	}

	entries, tocPages := ExtractEntries(pages)
	if len(tocPages) != 1 || tocPages[0] != 2 {
		t.Errorf("expected toc pages [2], got %v", tocPages)
	}
	if len(entries) != 7 {
		t.Errorf("expected 7 entries, got %d", len(entries))
	}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(BuildTree(ParseLines(tocLines())))

	if !strings.HasPrefix(md, "# 목차") {
		t.Errorf("missing heading:\n%s", md)
	}
	if !strings.Contains(md, "- 제1장 적용기준 (3)") {
		t.Errorf("missing chapter line:\n%s", md)
	}
	if !strings.Contains(md, "    - 1-1-1 적용범위 (4)") {
		t.Errorf("missing indented item line:\n%s", md)
	}
}

func TestTreeSaveLoad(t *testing.T) {
	roots := BuildTree(ParseLines(tocLines()))
	tree := NewTree("input.pdf", []int{2}, roots)
	path := filepath.Join(t.TempDir(), "toc_tree.json")

	if err := tree.Save(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loaded.Source != "input.pdf" {
		t.Errorf("expected source input.pdf, got %q", loaded.Source)
	}
	if loaded.EntryCount != 7 {
		t.Errorf("expected entry count 7, got %d", loaded.EntryCount)
	}
	if loaded.LevelCounts["2"] != 1 {
		t.Errorf("unexpected level counts: %v", loaded.LevelCounts)
	}
	if len(loaded.Roots) != 3 {
		t.Errorf("expected 3 roots, got %d", len(loaded.Roots))
	}
	if loaded.Roots[0].Children[0].Number != "1-1" {
		t.Errorf("tree shape lost on round trip: %+v", loaded.Roots[0])
	}
}

func TestLookupTable(t *testing.T) {
	table := LookupTable(ParseLines(tocLines()))

	if len(table.Rows) != 4 {
		t.Fatalf("expected 4 rows, got %d: %+v", len(table.Rows), table.Rows)
	}

	first := table.Rows[0]
	if first.Number != "1-1" || first.Major != "적용기준" || first.Mid != "1부문" {
		t.Errorf("unexpected first row: %+v", first)
	}
	if first.Title != "일반사항" || first.Page != 3 {
		t.Errorf("unexpected first row: %+v", first)
	}

	deep := table.Rows[1]
	if deep.Number != "1-1-1" || deep.Sub != "1" {
		t.Errorf("unexpected deep row: %+v", deep)
	}

	last := table.Rows[3]
	if last.Major != "가설공사" || last.Number != "2-1" {
		t.Errorf("expected chapter title to carry into following rows, got %+v", last)
	}
}
