// Package toc extracts table-of-contents entries from document text and
// builds a hierarchical tree over them.
package toc

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Dydiddl/ASCR/internal/extract"
)

// Kind distinguishes TOC entry roles.
type Kind string

const (
	KindChapter Kind = "chapter"
	KindItem    Kind = "item"
	KindOther   Kind = "other"
)

// Entry is one parsed table-of-contents line.
type Entry struct {
	Kind   Kind   `json:"type" yaml:"type"`
	Number string `json:"number,omitempty" yaml:"number,omitempty"`
	Title  string `json:"title" yaml:"title"`
	Page   int    `json:"page" yaml:"page"`
	Level  int    `json:"level" yaml:"level"`
}

// TOC line forms: a bare chapter marker optionally followed by its dotted
// title line, a numbered item with dotted leaders, or an unnumbered entry
// with leaders (참고자료 and the like).
var (
	chapterBare   = regexp.MustCompile(`^제(\d+)장$`)
	chapterLine   = regexp.MustCompile(`^제(\d+)장\s+(.+?)\s*(?:[.·]{3,}\s*(\d+))?$`)
	itemLine      = regexp.MustCompile(`^(\d+(?:-\d+)+)\s+(.+?)\s*[.·]{3,}\s*(\d+)$`)
	leaderLine    = regexp.MustCompile(`^(.+?)\s*[.·]{3,}\s*(\d+)$`)
	tocHeading    = regexp.MustCompile(`목\s*차|차\s*례`)
	standaloneNum = regexp.MustCompile(`^\d+$`)
)

// ParseLines extracts TOC entries from the lines of a TOC page, in source
// order. A bare 제N장 line takes its title and page from the following
// dotted-leader line.
func ParseLines(lines []string) []Entry {
	var entries []Entry

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || standaloneNum.MatchString(line) {
			continue
		}

		if m := chapterBare.FindStringSubmatch(line); m != nil {
			if i+1 < len(lines) {
				next := strings.TrimSpace(lines[i+1])
				if lm := leaderLine.FindStringSubmatch(next); lm != nil {
					page, _ := strconv.Atoi(lm[2])
					entries = append(entries, Entry{
						Kind:  KindChapter,
						Title: "제" + m[1] + "장 " + strings.TrimSpace(lm[1]),
						Page:  page,
					})
					i++
					continue
				}
			}
			entries = append(entries, Entry{Kind: KindChapter, Title: line})
			continue
		}

		if m := chapterLine.FindStringSubmatch(line); m != nil {
			page, _ := strconv.Atoi(m[3])
			entries = append(entries, Entry{
				Kind:  KindChapter,
				Title: "제" + m[1] + "장 " + strings.TrimSpace(m[2]),
				Page:  page,
			})
			continue
		}

		if m := itemLine.FindStringSubmatch(line); m != nil {
			page, _ := strconv.Atoi(m[3])
			entries = append(entries, Entry{
				Kind:   KindItem,
				Number: m[1],
				Title:  strings.TrimSpace(m[2]),
				Page:   page,
				Level:  strings.Count(m[1], "-"),
			})
			continue
		}

		if m := leaderLine.FindStringSubmatch(line); m != nil {
			page, _ := strconv.Atoi(m[2])
			entries = append(entries, Entry{
				Kind:  KindOther,
				Title: strings.TrimSpace(m[1]),
				Page:  page,
			})
		}
	}

	return entries
}

// DetectTOCPages returns the page numbers of the document's leading
// table-of-contents run: the first pages whose text carries a 목차 or 차례
// heading. The run ends at the first non-TOC page after it starts.
func DetectTOCPages(pages []extract.Page) []int {
	var tocPages []int
	for _, page := range pages {
		if tocHeading.MatchString(page.Text) {
			tocPages = append(tocPages, page.Number)
		} else if len(tocPages) > 0 {
			break
		}
	}
	return tocPages
}

// ExtractEntries detects the TOC pages and parses their entries in page
// order. Returns the entries and the TOC page numbers.
func ExtractEntries(pages []extract.Page) ([]Entry, []int) {
	tocPages := DetectTOCPages(pages)
	if len(tocPages) == 0 {
		return nil, nil
	}

	inTOC := make(map[int]bool, len(tocPages))
	for _, n := range tocPages {
		inTOC[n] = true
	}

	var entries []Entry
	for _, page := range pages {
		if !inTOC[page.Number] {
			continue
		}
		entries = append(entries, ParseLines(page.Lines())...)
	}
	return entries, tocPages
}
