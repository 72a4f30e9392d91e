package pdfops

import (
	"regexp"
	"strings"
)

var (
	unsafeChars = regexp.MustCompile(`[\\/:*?"<>|]`)
	spaceRuns   = regexp.MustCompile(`\s+`)
)

const maxFilenameRunes = 80

// SanitizeFilename makes a title safe to use as a file or directory name:
// characters the common filesystems reject and whitespace runs become
// underscores, trailing dots and underscores are trimmed, and the result is
// capped at 80 runes.
func SanitizeFilename(name string) string {
	name = unsafeChars.ReplaceAllString(name, "_")
	name = spaceRuns.ReplaceAllString(strings.TrimSpace(name), "_")
	name = strings.TrimRight(name, "._")

	runes := []rune(name)
	if len(runes) > maxFilenameRunes {
		name = strings.TrimRight(string(runes[:maxFilenameRunes]), "._")
	}
	return name
}
