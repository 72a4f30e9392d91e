package pdfops

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"
)

// ReportFilename is the split report written alongside the output files.
const ReportFilename = "분할_결과_보고서.txt"

// SplitOutput records one file produced by a split run.
type SplitOutput struct {
	Path  string `json:"path" yaml:"path"`
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
	Size  int64  `json:"size" yaml:"size"`
}

// SplitReport summarizes a split run.
type SplitReport struct {
	Source    string        `json:"source" yaml:"source"`
	OutDir    string        `json:"out_dir" yaml:"out_dir"`
	PageCount int           `json:"page_count" yaml:"page_count"`
	Outputs   []SplitOutput `json:"outputs" yaml:"outputs"`
}

// Write renders the report as human-readable text.
func (r *SplitReport) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "=== PDF 분할 결과 보고서 ===")
	fmt.Fprintf(bw, "원본: %s (%d페이지)\n", r.Source, r.PageCount)
	fmt.Fprintf(bw, "출력 위치: %s\n", r.OutDir)
	fmt.Fprintf(bw, "생성 시간: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(bw, "생성 파일 수: %d\n\n", len(r.Outputs))

	for _, out := range r.Outputs {
		fmt.Fprintf(bw, "- %s (페이지 %d-%d, %s)\n",
			out.Path, out.Start, out.End, formatSize(out.Size))
	}

	return bw.Flush()
}

// Save writes the report to path, removing it on a partial write.
func (r *SplitReport) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create split report: %w", err)
	}
	if err := r.Write(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write split report: %w", err)
	}
	return nil
}

func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1fMB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1fKB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%dB", n)
	}
}
