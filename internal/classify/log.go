package classify

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// WriteLog writes the human-readable per-page decision log for a
// classification run.
func WriteLog(w io.Writer, src string, runID string, decisions []PageDecision) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "=== PDF 페이지 분석 로그 ===")
	fmt.Fprintf(bw, "원본: %s\n", src)
	fmt.Fprintf(bw, "실행 ID: %s\n", runID)
	fmt.Fprintf(bw, "생성 시간: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	for _, d := range decisions {
		fmt.Fprintf(bw, "[%d, %s, 장=%s, 부문=%s, 제목=%s, 기준=%q]\n",
			d.Page, d.Kind, d.Result.Chapter, d.Result.Section, d.Result.Title, d.Line)
	}

	return bw.Flush()
}

// SaveLog writes the decision log to path, creating the parent directory
// when needed.
func SaveLog(path, src, runID string, decisions []PageDecision) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create analysis log directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create analysis log: %w", err)
	}
	if err := WriteLog(f, src, runID, decisions); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write analysis log: %w", err)
	}
	return nil
}
