package pdfops

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/Dydiddl/ASCR/internal/classify"
)

// SplitByBoundaries splits src along classified chapter boundaries. Chapter
// ranges land in per-section directories named <NN>부문_<title> (title from
// sectionTitles, keyed by section id); front matter and unclassified ranges
// stay at the top of outDir. Writes the split report when everything
// succeeded; on any failure the files already produced are removed.
func SplitByBoundaries(src string, bounds []classify.Boundary, sectionTitles map[string]string, outDir string) (*SplitReport, error) {
	pageCount, err := PageCount(src)
	if err != nil {
		return nil, err
	}
	for _, b := range bounds {
		if err := (Range{Start: b.Start, End: b.End}).Validate(pageCount); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	report := &SplitReport{Source: src, OutDir: outDir, PageCount: pageCount}
	var written []string

	fail := func(err error) (*SplitReport, error) {
		removeAll(written)
		return nil, err
	}

	for _, b := range bounds {
		dir := outDir
		if b.Chapter != "0" && b.Section != "00" {
			dir = filepath.Join(outDir, sectionDirName(b.Section, sectionTitles))
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fail(fmt.Errorf("failed to create section directory: %w", err))
			}
		}

		out := filepath.Join(dir, boundaryFileName(b))
		sel := []string{fmt.Sprintf("%d-%d", b.Start, b.End)}
		if err := api.TrimFile(src, out, sel, nil); err != nil {
			return fail(fmt.Errorf("failed to split pages %d-%d: %w", b.Start, b.End, err))
		}
		written = append(written, out)

		info, err := os.Stat(out)
		if err != nil {
			return fail(fmt.Errorf("failed to stat split output: %w", err))
		}
		report.Outputs = append(report.Outputs, SplitOutput{
			Path:  out,
			Start: b.Start,
			End:   b.End,
			Size:  info.Size(),
		})
	}

	reportPath := filepath.Join(outDir, ReportFilename)
	if err := report.Save(reportPath); err != nil {
		return fail(err)
	}
	return report, nil
}

func sectionDirName(section string, titles map[string]string) string {
	if title := titles[section]; title != "" {
		return section + "부문_" + SanitizeFilename(title)
	}
	return section + "부문"
}

// boundaryFileName names a chapter range 제<N>장_<title>.pdf; ranges without
// a chapter fall back to the unit title and page span.
func boundaryFileName(b classify.Boundary) string {
	if b.Chapter != "0" {
		if b.Title != "" {
			return fmt.Sprintf("제%s장_%s.pdf", b.Chapter, SanitizeFilename(b.Title))
		}
		return fmt.Sprintf("제%s장.pdf", b.Chapter)
	}
	title := SanitizeFilename(b.Title)
	if title == "" {
		title = "미분류"
	}
	return fmt.Sprintf("%s_%d_%d.pdf", title, b.Start, b.End)
}
