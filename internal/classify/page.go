package classify

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/Dydiddl/ASCR/internal/extract"
	"github.com/Dydiddl/ASCR/internal/mapping"
)

// PageKind labels the structural role of a page.
type PageKind string

const (
	KindCover   PageKind = "표지"
	KindBlank   PageKind = "빈페이지"
	KindTOC     PageKind = "목차"
	KindDivider PageKind = "중간표지"
	KindContent PageKind = "본문"
)

// PageDecision is the per-page outcome of a classification run.
type PageDecision struct {
	Page   int      `json:"page" yaml:"page"`
	Kind   PageKind `json:"kind" yaml:"kind"`
	Result Result   `json:"result" yaml:"result"`
	Line   string   `json:"line,omitempty" yaml:"line,omitempty"` // line the decision was based on
}

// Regex fallbacks applied when no mapping rule matches a page.
var (
	chapterLine = regexp.MustCompile(`제(\d+)장\s*([가-힣A-Za-z]*)`)
	sectionLine = regexp.MustCompile(`(\d+)\s*([가-힣]+부문)`)
	tocLine     = regexp.MustCompile(`\d+목차|목차\d+|^목차$`)
)

// PageClassifierConfig configures a page classification run.
type PageClassifierConfig struct {
	Mapping      mapping.Config
	SearchWindow int // leading runes of the first line inspected, default 10
	Logger       *slog.Logger
}

// PageClassifier classifies whole document pages, carrying chapter context
// forward across pages.
type PageClassifier struct {
	classifier   *Classifier
	searchWindow int
	logger       *slog.Logger
}

// NewPageClassifier creates a page classifier over the mapping config.
func NewPageClassifier(cfg PageClassifierConfig) *PageClassifier {
	if cfg.SearchWindow <= 0 {
		cfg.SearchWindow = 10
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &PageClassifier{
		classifier:   New(cfg.Mapping),
		searchWindow: cfg.SearchWindow,
		logger:       log,
	}
}

// ClassifyPages runs the per-page pass over extracted text:
//   - page 1 is the cover;
//   - pages without extractable text are blank;
//   - otherwise the first non-empty line, whitespace squeezed and trimmed to
//     the search window, is classified via the mapping rules, with regex
//     fallbacks for chapter, section, and TOC forms;
//   - a page matching nothing while the following page opens a section is a
//     divider page.
//
// Deterministic: the same pages and rules always yield the same decisions.
func (pc *PageClassifier) ClassifyPages(pages []extract.Page) []PageDecision {
	decisions := make([]PageDecision, 0, len(pages))

	var currentChapter, currentTitle string

	for i, page := range pages {
		if page.Number == 1 {
			decisions = append(decisions, PageDecision{
				Page:   page.Number,
				Kind:   KindCover,
				Result: Result{Chapter: "0", Section: "00", Title: string(KindCover)},
				Line:   page.FirstLine(),
			})
			continue
		}

		firstLine := squeeze(page.FirstLine())
		if firstLine == "" {
			decisions = append(decisions, PageDecision{
				Page:   page.Number,
				Kind:   KindBlank,
				Result: Unclassified(),
			})
			continue
		}
		window := headRunes(firstLine, pc.searchWindow)

		if res := pc.classifier.Classify(window); res.Matched {
			if res.Chapter != "0" {
				currentChapter, currentTitle = res.Chapter, res.Title
			}
			decisions = append(decisions, PageDecision{
				Page:   page.Number,
				Kind:   KindContent,
				Result: res,
				Line:   window,
			})
			continue
		}

		if m := chapterLine.FindStringSubmatch(window); m != nil {
			chapter := m[1]
			currentChapter, currentTitle = chapter, m[2]
			decisions = append(decisions, PageDecision{
				Page:   page.Number,
				Kind:   KindContent,
				Result: Result{Chapter: chapter, Section: "00", Title: m[2], Matched: true},
				Line:   window,
			})
			continue
		}
		if m := sectionLine.FindStringSubmatch(window); m != nil {
			decisions = append(decisions, PageDecision{
				Page: page.Number,
				Kind: KindContent,
				Result: Result{
					Chapter: orUnclassified(currentChapter),
					Section: padSection(m[1]),
					Title:   currentTitle,
					Matched: true,
				},
				Line: window,
			})
			continue
		}
		if tocLine.MatchString(window) {
			decisions = append(decisions, PageDecision{
				Page:   page.Number,
				Kind:   KindTOC,
				Result: Result{Chapter: "0", Section: "00", Title: "목차", Matched: true},
				Line:   window,
			})
			continue
		}

		// Nothing matched: a divider page if the next page opens a new unit.
		kind := KindContent
		line := window
		if next := nextSectionName(pages, i); next != "" {
			kind = KindDivider
			line = next
		}
		decisions = append(decisions, PageDecision{
			Page:   page.Number,
			Kind:   kind,
			Result: Unclassified(),
			Line:   line,
		})
	}

	pc.logger.Debug("page classification complete",
		"pages", len(pages), "decisions", len(decisions))
	return decisions
}

// nextSectionName returns the section name the following page opens with,
// or empty.
func nextSectionName(pages []extract.Page, i int) string {
	if i+1 >= len(pages) {
		return ""
	}
	window := headRunes(squeeze(pages[i+1].FirstLine()), 10)
	if m := sectionLine.FindStringSubmatch(window); m != nil {
		return m[2]
	}
	return ""
}

// squeeze removes all whitespace so spaced-out headings ("목  차") match.
func squeeze(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func headRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n])
	}
	return s
}

func orUnclassified(chapter string) string {
	if chapter == "" {
		return "0"
	}
	return chapter
}

func padSection(id string) string {
	if len(id) == 1 {
		return "0" + id
	}
	return id
}
