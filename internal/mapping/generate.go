package mapping

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Dydiddl/ASCR/internal/lookup"
)

// ErrEmptyLookupTable is returned when config generation is given no rows.
var ErrEmptyLookupTable = errors.New("lookup table is empty")

// Generate derives a mapping config from a lookup table. Rows are grouped on
// the chapter id (first number component) and the section id (second
// component, zero-padded); the first row of each distinct group supplies the
// representative pattern and title. Generation starts from the default
// special cases and never mutates an existing configuration.
func Generate(table lookup.Table) (Config, error) {
	if table.Empty() {
		return Config{}, fmt.Errorf("%w: cannot generate mapping config", ErrEmptyLookupTable)
	}

	cfg := Default()
	seenChapters := make(map[string]bool)
	seenSections := make(map[string]bool)

	for _, row := range table.Rows {
		lv := lookup.SplitLevels(row.Number)
		if lv.Chapter == "" {
			continue
		}

		if !seenChapters[lv.Chapter] {
			seenChapters[lv.Chapter] = true
			cfg = cfg.AddChapterRule(ChapterPattern{
				Pattern: fmt.Sprintf("제%s장", lv.Chapter),
				Chapter: lv.Chapter,
				Title:   row.Major,
			})
		}

		if lv.Section == "" {
			continue
		}
		section := padSection(lv.Section)
		if !seenSections[section] {
			seenSections[section] = true
			cfg = cfg.AddSectionRule(SectionPattern{
				Pattern: section + "부문",
				Section: section,
				Title:   row.Mid,
			})
		}
	}

	return cfg, nil
}

// padSection zero-pads a section id to two digits.
func padSection(id string) string {
	if len(id) < 2 {
		return strings.Repeat("0", 2-len(id)) + id
	}
	return id
}
