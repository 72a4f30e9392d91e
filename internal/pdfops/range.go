// Package pdfops splits, merges, and inspects PDF files by page range.
package pdfops

import (
	"errors"
	"fmt"
)

// ErrPageRange reports a page range outside the document's bounds.
var ErrPageRange = errors.New("page range out of bounds")

// Range is a 1-indexed inclusive page range with an optional output label.
type Range struct {
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Validate checks the range against the document's page count.
func (r Range) Validate(pageCount int) error {
	if r.Start < 1 || r.End > pageCount || r.Start > r.End {
		return fmt.Errorf("%w: %d-%d (document has %d pages)", ErrPageRange, r.Start, r.End, pageCount)
	}
	return nil
}

// Pages returns the number of pages the range covers.
func (r Range) Pages() int {
	return r.End - r.Start + 1
}

// OutputName is the file name a split writes for this range: the sanitized
// label when one is set, split_<start>_<end>.pdf otherwise.
func (r Range) OutputName() string {
	if r.Label != "" {
		return SanitizeFilename(r.Label) + ".pdf"
	}
	return fmt.Sprintf("split_%d_%d.pdf", r.Start, r.End)
}

// RangeList is an ordered set of page ranges.
type RangeList []Range

// Validate checks every range against the document's page count, failing on
// the first offender.
func (rs RangeList) Validate(pageCount int) error {
	for _, r := range rs {
		if err := r.Validate(pageCount); err != nil {
			return err
		}
	}
	return nil
}

// FindRangeForPage returns the first range containing the page.
func (rs RangeList) FindRangeForPage(page int) (Range, bool) {
	for _, r := range rs {
		if page >= r.Start && page <= r.End {
			return r, true
		}
	}
	return Range{}, false
}

// Contiguous reports whether the ranges cover pages 1..pageCount exactly,
// in order, with no gaps or overlaps. Merging such ranges in order
// reproduces the original page sequence.
func (rs RangeList) Contiguous(pageCount int) bool {
	next := 1
	for _, r := range rs {
		if r.Start != next || r.End < r.Start {
			return false
		}
		next = r.End + 1
	}
	return next == pageCount+1
}
