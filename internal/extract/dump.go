package extract

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Debug dump line forms. The writer emits pageDelimiter; the parser also
// accepts the legacy pageDelimiterAlt form found in older dumps.
var (
	pageDelimiter    = regexp.MustCompile(`^=== 페이지 (\d+) ===$`)
	pageDelimiterAlt = regexp.MustCompile(`^=== (\d+)페이지 ===$`)
	numberedLine     = regexp.MustCompile(`^(\d+)줄:\s?(.*)$`)
)

const dumpSeparator = "--------------------------------------------------"

// WriteDump writes pages in the debug dump format: a file header, then per
// page a delimiter line, one numbered line per non-empty text line, and a
// separator. The output parses back via ParseDump.
func WriteDump(w io.Writer, src string, pages []Page) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "PDF 파일: %s\n", src)
	fmt.Fprintf(bw, "총 페이지 수: %d\n", len(pages))

	for _, page := range pages {
		fmt.Fprintf(bw, "\n=== 페이지 %d ===\n", page.Number)
		lineNum := 0
		for _, line := range strings.Split(page.Text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			lineNum++
			fmt.Fprintf(bw, "%d줄: %s\n", lineNum, line)
		}
		fmt.Fprintln(bw, dumpSeparator)
	}

	return bw.Flush()
}

// SaveDump writes the debug dump to path, creating the parent directory
// when needed.
func SaveDump(path, src string, pages []Page) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create debug dump directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create debug dump: %w", err)
	}
	if err := WriteDump(f, src, pages); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write debug dump: %w", err)
	}
	return nil
}

// ParseDump reads a debug dump back into pages. Content before the first
// page delimiter is ignored; within a page only numbered lines contribute
// text, and 미리보기/텍스트 metadata lines are skipped. Parsing is
// deterministic: the same dump always yields the same pages.
func ParseDump(r io.Reader) ([]Page, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var pages []Page
	var current *Page
	var lines []string

	flush := func() {
		if current != nil {
			current.Text = strings.Join(lines, "\n")
			pages = append(pages, *current)
		}
		current = nil
		lines = nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if num, ok := matchPageDelimiter(line); ok {
			flush()
			current = &Page{Number: num}
			continue
		}
		if current == nil {
			continue
		}
		if strings.HasPrefix(line, "미리보기") || strings.HasPrefix(line, "텍스트") {
			continue
		}
		if m := numberedLine.FindStringSubmatch(line); m != nil {
			lines = append(lines, m[2])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read debug dump: %w", err)
	}
	flush()

	return pages, nil
}

// LoadDump reads a debug dump file into pages.
func LoadDump(path string) ([]Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open debug dump: %w", err)
	}
	defer f.Close()
	return ParseDump(f)
}

func matchPageDelimiter(line string) (int, bool) {
	m := pageDelimiter.FindStringSubmatch(line)
	if m == nil {
		m = pageDelimiterAlt.FindStringSubmatch(line)
	}
	if m == nil {
		return 0, false
	}
	num, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return num, true
}
