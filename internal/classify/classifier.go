// Package classify assigns chapter/section/title classifications to document
// text and pages using a mapping configuration.
package classify

import (
	"strings"

	"github.com/Dydiddl/ASCR/internal/mapping"
)

// Result is the resolved classification for a block of text.
type Result struct {
	Chapter string `json:"chapter" yaml:"chapter"`
	Section string `json:"section" yaml:"section"`
	Title   string `json:"title" yaml:"title"`
	Matched bool   `json:"matched" yaml:"matched"`
}

// Unclassified is the sentinel result when no rule matches.
func Unclassified() Result {
	return Result{Chapter: "0", Section: "00", Title: "미분류"}
}

// Classifier applies mapping rules to text. Matching is an explicit
// contract: rule groups are tried in the order special cases, chapter
// patterns, section patterns; within a group the first registered pattern
// contained in the text wins, and registration order is authoritative.
// Chapter and section groups match independently, so a line carrying both a
// chapter and a section marker resolves both ids.
type Classifier struct {
	specials []string
	cases    map[string]mapping.SpecialCase
	chapters []mapping.ChapterPattern
	sections []mapping.SectionPattern
}

// New builds a classifier over a snapshot of the config's rules.
func New(cfg mapping.Config) *Classifier {
	c := &Classifier{
		specials: cfg.SpecialPatterns(),
		cases:    make(map[string]mapping.SpecialCase),
		chapters: cfg.ChapterPatterns(),
		sections: cfg.SectionPatterns(),
	}
	for _, pattern := range c.specials {
		sc, _ := cfg.SpecialCase(pattern)
		c.cases[pattern] = sc
	}
	return c
}

// Classify resolves text to a classification. Deterministic: the same text
// against the same rules always yields the same result.
func (c *Classifier) Classify(text string) Result {
	text = strings.TrimSpace(text)
	if text == "" {
		return Unclassified()
	}

	for _, pattern := range c.specials {
		if strings.Contains(text, pattern) {
			sc := c.cases[pattern]
			return Result{Chapter: sc.Chapter, Section: sc.Section, Title: sc.Title, Matched: true}
		}
	}

	result := Unclassified()
	for _, rule := range c.chapters {
		if strings.Contains(text, rule.Pattern) {
			result.Chapter = rule.Chapter
			result.Title = rule.Title
			result.Matched = true
			break
		}
	}
	for _, rule := range c.sections {
		if strings.Contains(text, rule.Pattern) {
			result.Section = rule.Section
			result.Matched = true
			break
		}
	}

	return result
}
