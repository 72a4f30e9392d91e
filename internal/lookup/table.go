// Package lookup builds structured heading tables from extracted document
// text. A lookup table is the bridge between raw page text and the mapping
// configuration: one row per detected heading, with its hierarchy split into
// category columns.
package lookup

import "strings"

// Row is one detected heading with its hierarchy classification.
// Number encodes the hierarchy: "1-1" is a section-level heading under
// chapter 1, "1-1-1" an item beneath it. Major and Mid carry the resolved
// chapter and section titles; Sub holds the third and deeper components.
type Row struct {
	Major  string // 대분류: chapter title
	Mid    string // 중분류: section title
	Sub    string // 소분류: item component(s), empty above item depth
	Number string // hierarchical number, e.g. "1-1-1"
	Title  string // heading text
	Page   int    // referenced page, 1-indexed
}

// Table is an ordered collection of rows in source line order.
type Table struct {
	Rows []Row
}

// Empty reports whether the table has no rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// Levels is the hierarchy split of a heading number.
type Levels struct {
	Chapter string // first component
	Section string // second component, unpadded
	Sub     string // third and deeper components joined by "-"
	Depth   int    // number of components
}

// SplitLevels breaks a heading number like "1-2-3" into its hierarchy
// components. Missing levels are empty strings.
func SplitLevels(number string) Levels {
	parts := strings.Split(number, "-")
	lv := Levels{Depth: len(parts)}
	if len(parts) > 0 {
		lv.Chapter = parts[0]
	}
	if len(parts) > 1 {
		lv.Section = parts[1]
	}
	if len(parts) > 2 {
		lv.Sub = strings.Join(parts[2:], "-")
	}
	return lv
}
