package classify

import "regexp"

// Running-header forms printed in the page margin:
// (제 N 장 <title> M) on right-hand pages, (NN <title>부문) on left-hand pages.
var (
	headerChapter = regexp.MustCompile(`\(제\s*(\d+)\s*장\s+([^)]+?)\s+(\d+)\)`)
	headerSection = regexp.MustCompile(`\((\d+)\s+([^)]+?부문)\)`)
)

// Header is a parsed running header.
type Header struct {
	Chapter      string // chapter number, empty if none
	ChapterTitle string
	Section      string // section number, empty if none
	SectionTitle string
}

// AnalyzeHeader parses running-header forms from the first window runes of a
// page's text. Returns false when neither form is present.
func AnalyzeHeader(text string, window int) (Header, bool) {
	if text == "" {
		return Header{}, false
	}
	runes := []rune(text)
	if window > 0 && len(runes) > window {
		text = string(runes[:window])
	}

	var h Header
	if m := headerChapter.FindStringSubmatch(text); m != nil {
		h.Chapter = m[1]
		h.ChapterTitle = m[2]
	}
	if m := headerSection.FindStringSubmatch(text); m != nil {
		h.Section = m[1]
		h.SectionTitle = m[2]
	}

	return h, h.Chapter != "" || h.Section != ""
}
