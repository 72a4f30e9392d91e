package toc

import (
	"regexp"
	"strings"

	"github.com/Dydiddl/ASCR/internal/lookup"
)

var chapterTitleForm = regexp.MustCompile(`^제(\d+)장\s*(.*)$`)

// LookupTable converts parsed TOC entries into lookup rows, so a mapping
// config can be generated straight from a document's table of contents.
// Numbered items become rows; each row's chapter title comes from the most
// recent chapter entry.
func LookupTable(entries []Entry) lookup.Table {
	var table lookup.Table
	var chapterTitle string

	for _, e := range entries {
		switch e.Kind {
		case KindChapter:
			if m := chapterTitleForm.FindStringSubmatch(e.Title); m != nil {
				chapterTitle = strings.TrimSpace(m[2])
			} else {
				chapterTitle = e.Title
			}
		case KindItem:
			lv := lookup.SplitLevels(e.Number)
			table.Rows = append(table.Rows, lookup.Row{
				Major:  chapterTitle,
				Mid:    sectionName(lv.Section),
				Sub:    lv.Sub,
				Number: e.Number,
				Title:  e.Title,
				Page:   e.Page,
			})
		}
	}
	return table
}

func sectionName(id string) string {
	if id == "" {
		return ""
	}
	return id + "부문"
}
