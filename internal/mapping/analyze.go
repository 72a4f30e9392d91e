package mapping

// Stats summarizes a mapping config per rule group.
type Stats struct {
	ChapterRules int      `json:"chapter_rules" yaml:"chapter_rules"`
	SectionRules int      `json:"section_rules" yaml:"section_rules"`
	SpecialCases int      `json:"special_cases" yaml:"special_cases"`
	Chapters     []string `json:"chapters,omitempty" yaml:"chapters,omitempty"`
	Sections     []string `json:"sections,omitempty" yaml:"sections,omitempty"`
}

// Analyze reports rule counts and the distinct chapter/section ids a config
// covers, in rule order.
func Analyze(cfg Config) Stats {
	stats := Stats{
		ChapterRules: len(cfg.chapters),
		SectionRules: len(cfg.sections),
		SpecialCases: len(cfg.specialKeys),
	}

	seen := make(map[string]bool)
	for _, r := range cfg.chapters {
		if !seen[r.Chapter] {
			seen[r.Chapter] = true
			stats.Chapters = append(stats.Chapters, r.Chapter)
		}
	}

	seen = make(map[string]bool)
	for _, r := range cfg.sections {
		if !seen[r.Section] {
			seen[r.Section] = true
			stats.Sections = append(stats.Sections, r.Section)
		}
	}

	return stats
}
