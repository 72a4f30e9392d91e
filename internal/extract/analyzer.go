package extract

import (
	"regexp"
	"strings"
)

// Structure marker patterns for Korean construction-standard documents.
var (
	sectionMarker = regexp.MustCompile(`\d+부문|[가-힣]+부문`)
	chapterMarker = regexp.MustCompile(`제\d+장`)
	articleMarker = regexp.MustCompile(`제\d+절|\d+-\d+`)
	pageMarker    = regexp.MustCompile(`=== 페이지 \d+ ===|=== \d+페이지 ===`)
)

// StructureReport summarizes how much recognizable document structure the
// extracted text carries.
type StructureReport struct {
	Pages      int     `json:"pages" yaml:"pages"`
	Sections   int     `json:"sections" yaml:"sections"`     // 부문 markers
	Chapters   int     `json:"chapters" yaml:"chapters"`     // 제N장 markers
	Articles   int     `json:"articles" yaml:"articles"`     // 제N절 / N-N markers
	PageMarks  int     `json:"page_marks" yaml:"page_marks"` // dump page delimiters
	Confidence float64 `json:"confidence" yaml:"confidence"` // [0,1]
}

// AnalyzeStructure scans extracted pages for structure markers and scores
// how confidently the document can be classified. Each marker class that
// appears contributes a fixed share: 부문 0.3, 장 0.3, 절 0.2, page marks 0.2.
func AnalyzeStructure(pages []Page) StructureReport {
	report := StructureReport{Pages: len(pages)}

	for _, page := range pages {
		report.Sections += len(sectionMarker.FindAllString(page.Text, -1))
		report.Chapters += len(chapterMarker.FindAllString(page.Text, -1))
		report.Articles += len(articleMarker.FindAllString(page.Text, -1))
		report.PageMarks += len(pageMarker.FindAllString(page.Text, -1))
	}

	if report.Sections > 0 {
		report.Confidence += 0.3
	}
	if report.Chapters > 0 {
		report.Confidence += 0.3
	}
	if report.Articles > 0 {
		report.Confidence += 0.2
	}
	if report.PageMarks > 0 {
		report.Confidence += 0.2
	}

	return report
}

// Hit is one keyword occurrence in extracted text.
type Hit struct {
	Page int    `json:"page" yaml:"page"`
	Line int    `json:"line" yaml:"line"`
	Text string `json:"text" yaml:"text"`
}

// Search finds every line containing keyword across the pages, in source
// order. Line numbers count non-empty lines within a page, starting at 1.
func Search(pages []Page, keyword string) []Hit {
	if strings.TrimSpace(keyword) == "" {
		return nil
	}

	var hits []Hit
	for _, page := range pages {
		for i, line := range page.Lines() {
			if strings.Contains(line, keyword) {
				hits = append(hits, Hit{Page: page.Number, Line: i + 1, Text: line})
			}
		}
	}
	return hits
}
