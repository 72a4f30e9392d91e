package classify

// Boundary is a contiguous page range belonging to one classified unit.
type Boundary struct {
	Start   int    `json:"start" yaml:"start"`
	End     int    `json:"end" yaml:"end"`
	Chapter string `json:"chapter" yaml:"chapter"`
	Section string `json:"section" yaml:"section"`
	Title   string `json:"title" yaml:"title"`
}

// Boundaries folds per-page decisions into ordered contiguous page ranges.
// A new unit starts at each matched page whose (chapter, section) differs
// from the current unit; blank, divider, and unmatched pages extend the
// current unit. Each unit runs to the page before the next unit's first
// page; the last unit runs to pageCount.
func Boundaries(decisions []PageDecision, pageCount int) []Boundary {
	if len(decisions) == 0 || pageCount < 1 {
		return nil
	}

	var bounds []Boundary
	current := Boundary{
		Start:   decisions[0].Page,
		Chapter: decisions[0].Result.Chapter,
		Section: decisions[0].Result.Section,
		Title:   unitTitle(decisions[0]),
	}

	for _, d := range decisions[1:] {
		if !startsNewUnit(d, current) {
			continue
		}
		current.End = d.Page - 1
		bounds = append(bounds, current)
		current = Boundary{
			Start:   d.Page,
			Chapter: d.Result.Chapter,
			Section: d.Result.Section,
			Title:   unitTitle(d),
		}
	}
	current.End = pageCount
	bounds = append(bounds, current)

	return bounds
}

// TrimBlankPages returns bounds with blank pages removed from the edges of
// each unit. Interior blanks stay so every unit remains one contiguous page
// range. Units consisting only of blank pages are dropped.
func TrimBlankPages(bounds []Boundary, decisions []PageDecision) []Boundary {
	blank := make(map[int]bool, len(decisions))
	for _, d := range decisions {
		if d.Kind == KindBlank {
			blank[d.Page] = true
		}
	}

	var out []Boundary
	for _, b := range bounds {
		for b.Start <= b.End && blank[b.Start] {
			b.Start++
		}
		for b.End >= b.Start && blank[b.End] {
			b.End--
		}
		if b.Start > b.End {
			continue
		}
		out = append(out, b)
	}
	return out
}

func startsNewUnit(d PageDecision, current Boundary) bool {
	if !d.Result.Matched {
		return false
	}
	if d.Kind == KindBlank || d.Kind == KindDivider {
		return false
	}
	return d.Result.Chapter != current.Chapter || d.Result.Section != current.Section
}

func unitTitle(d PageDecision) string {
	if d.Result.Title != "" && d.Result.Title != Unclassified().Title {
		return d.Result.Title
	}
	return string(d.Kind)
}
