package pdfops

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PageCount returns the number of pages in the PDF at path.
func PageCount(path string) (int, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, fmt.Errorf("pdf not found: %w", err)
	}
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read page count of %s: %w", path, err)
	}
	return n, nil
}

// Split writes one PDF per range into outDir, each containing exactly the
// range's pages. All ranges are validated against the document before any
// file is written; on a mid-run failure the files already produced are
// removed. Returns the paths written, in range order.
func Split(src string, ranges RangeList, outDir string) ([]string, error) {
	pageCount, err := PageCount(src)
	if err != nil {
		return nil, err
	}
	if err := ranges.Validate(pageCount); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	written := make([]string, 0, len(ranges))
	for _, r := range ranges {
		out := filepath.Join(outDir, r.OutputName())
		sel := []string{fmt.Sprintf("%d-%d", r.Start, r.End)}
		if err := api.TrimFile(src, out, sel, nil); err != nil {
			removeAll(written)
			return nil, fmt.Errorf("failed to split pages %d-%d: %w", r.Start, r.End, err)
		}
		written = append(written, out)
	}
	return written, nil
}

// Merge concatenates the pages of the input PDFs, in order, into out. Every
// input must exist before any write happens; a missing input fails with a
// wrapped fs.ErrNotExist.
func Merge(inputs []string, out string) error {
	if len(inputs) == 0 {
		return fmt.Errorf("no input files to merge")
	}
	for _, in := range inputs {
		if _, err := os.Stat(in); err != nil {
			return fmt.Errorf("merge input not found: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := api.MergeCreateFile(inputs, out, false, nil); err != nil {
		os.Remove(out)
		return fmt.Errorf("failed to merge %d files: %w", len(inputs), err)
	}
	return nil
}

// ExtractPages copies the selected single pages out of src, one PDF per
// page, named 페이지_<n>.pdf. Pages are validated against the document
// before any write.
func ExtractPages(src string, pages []int, outDir string) ([]string, error) {
	pageCount, err := PageCount(src)
	if err != nil {
		return nil, err
	}
	for _, p := range pages {
		if err := (Range{Start: p, End: p}).Validate(pageCount); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	written := make([]string, 0, len(pages))
	for _, p := range pages {
		out := filepath.Join(outDir, fmt.Sprintf("페이지_%d.pdf", p))
		if err := api.TrimFile(src, out, []string{fmt.Sprint(p)}, nil); err != nil {
			removeAll(written)
			return nil, fmt.Errorf("failed to extract page %d: %w", p, err)
		}
		written = append(written, out)
	}
	return written, nil
}

func removeAll(paths []string) {
	for _, p := range paths {
		os.Remove(p)
	}
}
