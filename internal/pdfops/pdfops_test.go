package pdfops

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Dydiddl/ASCR/internal/classify"
)

func TestPageCountMissingFile(t *testing.T) {
	_, err := PageCount(filepath.Join(t.TempDir(), "없는파일.pdf"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestSplitMissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := Split(filepath.Join(dir, "없는파일.pdf"), RangeList{{Start: 1, End: 2}}, dir)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestMergeMissingInput(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "a.pdf")
	if err := os.WriteFile(existing, []byte("stub"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	missing := filepath.Join(dir, "b.pdf")
	out := filepath.Join(dir, "merged.pdf")

	err := Merge([]string{existing, missing}, out)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
	if _, statErr := os.Stat(out); !errors.Is(statErr, fs.ErrNotExist) {
		t.Error("merge must not write output when an input is missing")
	}
}

func TestMergeNoInputs(t *testing.T) {
	if err := Merge(nil, filepath.Join(t.TempDir(), "out.pdf")); err == nil {
		t.Error("expected error for empty input list")
	}
}

func TestSplitByBoundariesMissingSource(t *testing.T) {
	dir := t.TempDir()
	bounds := []classify.Boundary{{Start: 1, End: 2, Chapter: "1", Section: "01", Title: "총칙"}}
	_, err := SplitByBoundaries(filepath.Join(dir, "없는파일.pdf"), bounds, nil, dir)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestSectionDirName(t *testing.T) {
	titles := map[string]string{"01": "공통부문"}
	if got := sectionDirName("01", titles); got != "01부문_공통부문" {
		t.Errorf("expected 01부문_공통부문, got %q", got)
	}
	if got := sectionDirName("02", titles); got != "02부문" {
		t.Errorf("expected 02부문, got %q", got)
	}
}

func TestBoundaryFileName(t *testing.T) {
	tests := []struct {
		name string
		b    classify.Boundary
		want string
	}{
		{"chapter with title", classify.Boundary{Chapter: "1", Title: "총칙"}, "제1장_총칙.pdf"},
		{"chapter without title", classify.Boundary{Chapter: "3"}, "제3장.pdf"},
		{"front matter", classify.Boundary{Start: 2, End: 3, Chapter: "0", Title: "목차"}, "목차_2_3.pdf"},
		{"unclassified", classify.Boundary{Start: 4, End: 4, Chapter: "0"}, "미분류_4_4.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := boundaryFileName(tt.b); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSplitReportSave(t *testing.T) {
	report := &SplitReport{
		Source:    "input.pdf",
		OutDir:    "out",
		PageCount: 49,
		Outputs: []SplitOutput{
			{Path: "out/제1장_총칙.pdf", Start: 3, End: 20, Size: 2 << 20},
			{Path: "out/제2장_가설공사.pdf", Start: 21, End: 49, Size: 512},
		},
	}

	path := filepath.Join(t.TempDir(), ReportFilename)
	if err := report.Save(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data := string(raw)
	if !strings.HasPrefix(data, "=== PDF 분할 결과 보고서 ===") {
		t.Errorf("missing report header:\n%s", data)
	}
	if !strings.Contains(data, "원본: input.pdf (49페이지)") {
		t.Errorf("missing source line:\n%s", data)
	}
	if !strings.Contains(data, "제1장_총칙.pdf (페이지 3-20, 2.0MB)") {
		t.Errorf("missing output line:\n%s", data)
	}
	if !strings.Contains(data, "512B") {
		t.Errorf("missing byte-sized output:\n%s", data)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{100, "100B"},
		{2048, "2.0KB"},
		{3 << 20, "3.0MB"},
	}
	for _, tt := range tests {
		if got := formatSize(tt.n); got != tt.want {
			t.Errorf("formatSize(%d) = %q, expected %q", tt.n, got, tt.want)
		}
	}
}
