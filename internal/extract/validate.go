package extract

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidInput is returned when a source file fails pre-extraction checks.
var ErrInvalidInput = errors.New("invalid input file")

// ValidatePDFPath checks that path names an existing, non-empty regular file
// with a .pdf extension. Missing files wrap fs.ErrNotExist.
func ValidatePDFPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("PDF not found: %s: %w", path, err)
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrInvalidInput, path)
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return fmt.Errorf("%w: %s does not have a .pdf extension", ErrInvalidInput, path)
	}
	if info.Size() == 0 {
		return fmt.Errorf("%w: %s is empty", ErrInvalidInput, path)
	}
	return nil
}

// ConsistencyReport flags suspicious extraction results before they feed the
// rest of the pipeline.
type ConsistencyReport struct {
	Pages      int      `json:"pages" yaml:"pages"`
	EmptyPages int      `json:"empty_pages" yaml:"empty_pages"`
	ShortPages int      `json:"short_pages" yaml:"short_pages"`
	Warnings   []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// shortPageRunes is the threshold below which a non-empty page is counted as
// suspiciously short.
const shortPageRunes = 20

// CheckConsistency inspects extracted pages for signs that the text layer is
// unusable (scanned images, extraction failures).
func CheckConsistency(pages []Page) ConsistencyReport {
	report := ConsistencyReport{Pages: len(pages)}

	for _, page := range pages {
		text := strings.TrimSpace(page.Text)
		switch {
		case text == "":
			report.EmptyPages++
		case len([]rune(text)) < shortPageRunes:
			report.ShortPages++
		}
	}

	if report.Pages == 0 {
		report.Warnings = append(report.Warnings, "추출된 페이지가 없습니다")
		return report
	}
	if report.EmptyPages*2 > report.Pages {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("전체 %d페이지 중 %d페이지에 텍스트가 없습니다. 스캔 문서일 수 있으며 OCR 처리가 필요합니다",
				report.Pages, report.EmptyPages))
	}
	if report.ShortPages*2 > report.Pages {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("전체 %d페이지 중 %d페이지의 텍스트가 비정상적으로 짧습니다",
				report.Pages, report.ShortPages))
	}

	return report
}
