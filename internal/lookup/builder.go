package lookup

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Dydiddl/ASCR/internal/extract"
)

// itemPattern matches a heading line: hierarchical number, title, optional
// dot leaders, trailing page number.
var itemPattern = regexp.MustCompile(`^(\d+-\d+(?:-\d+)?)\s+(.+?)\s*[·.\s]*(\d+)$`)

// Builder turns extracted page text into lookup rows. ChapterTitles and
// SectionTitles resolve category names per id; ids without an entry fall
// back to the 제N장 / N부문 forms.
type Builder struct {
	ChapterTitles map[string]string
	SectionTitles map[string]string
}

// Build scans every line of every page for heading items and returns them
// as a table in source line order. Lines matching no known pattern are
// skipped, never emitted as rows.
func (b *Builder) Build(pages []extract.Page) Table {
	var rows []Row
	for _, page := range pages {
		for _, line := range page.Lines() {
			row, ok := b.parseLine(line)
			if !ok {
				continue
			}
			rows = append(rows, row)
		}
	}
	return Table{Rows: rows}
}

func (b *Builder) parseLine(line string) (Row, bool) {
	m := itemPattern.FindStringSubmatch(line)
	if m == nil {
		return Row{}, false
	}
	page, err := strconv.Atoi(m[3])
	if err != nil || page < 1 {
		return Row{}, false
	}

	number := m[1]
	lv := SplitLevels(number)

	return Row{
		Major:  b.chapterTitle(lv.Chapter),
		Mid:    b.sectionTitle(lv.Section),
		Sub:    lv.Sub,
		Number: number,
		Title:  strings.TrimRight(strings.TrimSpace(m[2]), "·. "),
		Page:   page,
	}, true
}

func (b *Builder) chapterTitle(id string) string {
	if title, ok := b.ChapterTitles[id]; ok && title != "" {
		return title
	}
	return fmt.Sprintf("제%s장", id)
}

func (b *Builder) sectionTitle(id string) string {
	if id == "" {
		return ""
	}
	if title, ok := b.SectionTitles[id]; ok && title != "" {
		return title
	}
	// Config section ids are zero-padded to two digits.
	if padded := zeroPad(id); padded != id {
		if title, ok := b.SectionTitles[padded]; ok && title != "" {
			return title
		}
	}
	return fmt.Sprintf("%s부문", id)
}

func zeroPad(id string) string {
	if len(id) == 1 {
		return "0" + id
	}
	return id
}
