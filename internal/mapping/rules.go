// Package mapping defines the pattern-to-classification configuration that
// drives content classification. A config is an ordered collection of rules
// grouped by variant, persisted as a single JSON document and consumed
// read-only by the classifier.
package mapping

// ChapterPattern maps a literal heading pattern to a chapter id.
type ChapterPattern struct {
	Pattern string `json:"pattern"`
	Chapter string `json:"chapter"`
	Title   string `json:"title"`
}

// SectionPattern maps a literal heading pattern to a section id.
// Section ids are zero-padded to two digits.
type SectionPattern struct {
	Pattern string `json:"pattern"`
	Section string `json:"section"`
	Title   string `json:"title"`
}

// SpecialCase pins a pattern to a complete classification. Special cases
// take priority over chapter and section patterns, so known pages (covers,
// appendices) override the generic heuristics.
type SpecialCase struct {
	Chapter string `json:"chapter"`
	Section string `json:"section"`
	Title   string `json:"title"`
}
