package mapping

import (
	"errors"
	"testing"

	"github.com/Dydiddl/ASCR/internal/lookup"
)

func TestGenerate(t *testing.T) {
	t.Run("empty table fails", func(t *testing.T) {
		_, err := Generate(lookup.Table{})
		if !errors.Is(err, ErrEmptyLookupTable) {
			t.Errorf("expected ErrEmptyLookupTable, got %v", err)
		}
	})

	t.Run("groups rows on chapter and section ids", func(t *testing.T) {
		table := lookup.Table{Rows: []lookup.Row{
			{Major: "총칙", Mid: "1부문", Sub: "", Number: "1-1", Title: "일반사항", Page: 3},
			{Major: "총칙", Mid: "1부문", Sub: "1", Number: "1-1-1", Title: "목적", Page: 3},
		}}

		cfg, err := Generate(table)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		chapters := cfg.ChapterPatterns()
		if len(chapters) != 1 {
			t.Fatalf("expected 1 chapter rule, got %d", len(chapters))
		}
		if chapters[0].Chapter != "1" {
			t.Errorf("expected chapter id 1, got %q", chapters[0].Chapter)
		}
		if chapters[0].Pattern != "제1장" {
			t.Errorf("expected pattern 제1장, got %q", chapters[0].Pattern)
		}
		if chapters[0].Title != "총칙" {
			t.Errorf("expected title 총칙, got %q", chapters[0].Title)
		}

		sections := cfg.SectionPatterns()
		if len(sections) != 1 {
			t.Fatalf("expected 1 section rule, got %d", len(sections))
		}
		if sections[0].Section != "01" {
			t.Errorf("expected zero-padded section id 01, got %q", sections[0].Section)
		}
		if sections[0].Pattern != "01부문" {
			t.Errorf("expected pattern 01부문, got %q", sections[0].Pattern)
		}
	})

	t.Run("first row of each group wins", func(t *testing.T) {
		table := lookup.Table{Rows: []lookup.Row{
			{Major: "토공", Mid: "2부문", Number: "3-2", Title: "흙쌓기", Page: 41},
			{Major: "중복된제목", Mid: "다른부문", Number: "3-2-1", Title: "다짐", Page: 43},
		}}

		cfg, err := Generate(table)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		chapters := cfg.ChapterPatterns()
		if len(chapters) != 1 || chapters[0].Title != "토공" {
			t.Errorf("expected single chapter rule titled 토공, got %+v", chapters)
		}
	})

	t.Run("distinct groups yield one rule each", func(t *testing.T) {
		table := lookup.Table{Rows: []lookup.Row{
			{Major: "총칙", Mid: "1부문", Number: "1-1", Title: "일반사항", Page: 3},
			{Major: "일반사항", Mid: "2부문", Number: "2-2", Title: "재료", Page: 15},
			{Major: "토공", Mid: "3부문", Number: "3-3", Title: "흙깎기", Page: 40},
		}}

		cfg, err := Generate(table)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if got := len(cfg.ChapterPatterns()); got != 3 {
			t.Errorf("expected 3 chapter rules for 3 distinct chapters, got %d", got)
		}
		if got := len(cfg.SectionPatterns()); got != 3 {
			t.Errorf("expected 3 section rules for 3 distinct sections, got %d", got)
		}
	})

	t.Run("includes default special cases", func(t *testing.T) {
		table := lookup.Table{Rows: []lookup.Row{
			{Major: "총칙", Mid: "1부문", Number: "1-1", Title: "일반사항", Page: 3},
		}}

		cfg, err := Generate(table)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, ok := cfg.SpecialCase("첫페이지"); !ok {
			t.Error("expected generated config to carry the 첫페이지 special case")
		}
		if _, ok := cfg.SpecialCase("부록"); !ok {
			t.Error("expected generated config to carry the 부록 special case")
		}
	})
}
