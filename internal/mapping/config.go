package mapping

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Config is an immutable set of mapping rules. Mutating operations return a
// new Config and never touch the receiver, so a loaded configuration cannot
// be corrupted in place. The zero value is empty and usable.
//
// Rule order is the matching order: within each group, the first registered
// pattern that matches wins, and registration order survives mutation and
// save/load round trips unchanged.
type Config struct {
	chapters    []ChapterPattern
	sections    []SectionPattern
	specialKeys []string
	specials    map[string]SpecialCase
}

// Default returns the baseline configuration carrying the standard special
// cases for cover pages and appendices.
func Default() Config {
	var cfg Config
	cfg = cfg.AddSpecialCase("첫페이지", SpecialCase{Chapter: "0", Section: "00", Title: "목차"})
	cfg = cfg.AddSpecialCase("부록", SpecialCase{Chapter: "99", Section: "99", Title: "부록"})
	return cfg
}

// ChapterPatterns returns the chapter rules in matching order.
func (c Config) ChapterPatterns() []ChapterPattern {
	out := make([]ChapterPattern, len(c.chapters))
	copy(out, c.chapters)
	return out
}

// SectionPatterns returns the section rules in matching order.
func (c Config) SectionPatterns() []SectionPattern {
	out := make([]SectionPattern, len(c.sections))
	copy(out, c.sections)
	return out
}

// SpecialPatterns returns the special case patterns in matching order.
func (c Config) SpecialPatterns() []string {
	out := make([]string, len(c.specialKeys))
	copy(out, c.specialKeys)
	return out
}

// SpecialCase returns the classification for a special case pattern.
func (c Config) SpecialCase(pattern string) (SpecialCase, bool) {
	sc, ok := c.specials[pattern]
	return sc, ok
}

// RuleCount returns the total number of rules across all groups.
func (c Config) RuleCount() int {
	return len(c.chapters) + len(c.sections) + len(c.specialKeys)
}

// AddChapterRule returns a new Config with the rule appended.
func (c Config) AddChapterRule(r ChapterPattern) Config {
	next := c.clone()
	next.chapters = append(next.chapters, r)
	return next
}

// AddSectionRule returns a new Config with the rule appended.
func (c Config) AddSectionRule(r SectionPattern) Config {
	next := c.clone()
	next.sections = append(next.sections, r)
	return next
}

// AddSpecialCase returns a new Config with the special case registered.
// A pattern already present keeps its position in the matching order and
// has its classification replaced.
func (c Config) AddSpecialCase(pattern string, sc SpecialCase) Config {
	next := c.clone()
	if _, exists := next.specials[pattern]; !exists {
		next.specialKeys = append(next.specialKeys, pattern)
	}
	next.specials[pattern] = sc
	return next
}

// ChapterTitles returns chapter id → title for every chapter rule.
// The first rule per id wins.
func (c Config) ChapterTitles() map[string]string {
	titles := make(map[string]string, len(c.chapters))
	for _, r := range c.chapters {
		if _, ok := titles[r.Chapter]; !ok {
			titles[r.Chapter] = r.Title
		}
	}
	return titles
}

// SectionTitles returns section id → title for every section rule.
// The first rule per id wins.
func (c Config) SectionTitles() map[string]string {
	titles := make(map[string]string, len(c.sections))
	for _, r := range c.sections {
		if _, ok := titles[r.Section]; !ok {
			titles[r.Section] = r.Title
		}
	}
	return titles
}

func (c Config) clone() Config {
	next := Config{
		chapters:    make([]ChapterPattern, len(c.chapters)),
		sections:    make([]SectionPattern, len(c.sections)),
		specialKeys: make([]string, len(c.specialKeys)),
		specials:    make(map[string]SpecialCase, len(c.specials)),
	}
	copy(next.chapters, c.chapters)
	copy(next.sections, c.sections)
	copy(next.specialKeys, c.specialKeys)
	for k, v := range c.specials {
		next.specials[k] = v
	}
	return next
}

// MarshalJSON emits the persisted document form. special_cases keys are
// written in registration order, which is also the matching order.
func (c Config) MarshalJSON() ([]byte, error) {
	chapters := c.chapters
	if chapters == nil {
		chapters = []ChapterPattern{}
	}
	sections := c.sections
	if sections == nil {
		sections = []SectionPattern{}
	}

	var buf bytes.Buffer
	buf.WriteString(`{"chapter_patterns":`)
	if err := encodeTo(&buf, chapters); err != nil {
		return nil, err
	}
	buf.WriteString(`,"section_patterns":`)
	if err := encodeTo(&buf, sections); err != nil {
		return nil, err
	}
	buf.WriteString(`,"special_cases":{`)
	for i, key := range c.specialKeys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeTo(&buf, key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeTo(&buf, c.specials[key]); err != nil {
			return nil, err
		}
	}
	buf.WriteString("}}")
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the persisted document form, preserving the key order
// of special_cases as the matching order.
func (c *Config) UnmarshalJSON(data []byte) error {
	var doc struct {
		ChapterPatterns []ChapterPattern `json:"chapter_patterns"`
		SectionPatterns []SectionPattern `json:"section_patterns"`
		SpecialCases    json.RawMessage  `json:"special_cases"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	cfg := Config{
		chapters: doc.ChapterPatterns,
		sections: doc.SectionPatterns,
		specials: make(map[string]SpecialCase),
	}

	if len(doc.SpecialCases) > 0 {
		dec := json.NewDecoder(bytes.NewReader(doc.SpecialCases))
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to parse special_cases: %w", err)
		}
		if delim, ok := tok.(json.Delim); !ok || delim != '{' {
			return fmt.Errorf("special_cases must be an object, got %v", tok)
		}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return fmt.Errorf("failed to parse special_cases key: %w", err)
			}
			key := keyTok.(string)
			var sc SpecialCase
			if err := dec.Decode(&sc); err != nil {
				return fmt.Errorf("failed to parse special case %q: %w", key, err)
			}
			if _, exists := cfg.specials[key]; !exists {
				cfg.specialKeys = append(cfg.specialKeys, key)
			}
			cfg.specials[key] = sc
		}
	}

	*c = cfg
	return nil
}

func encodeTo(buf *bytes.Buffer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
