package lookup

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Header is the lookup table column order shared by CSV and spreadsheet
// output.
var Header = []string{"대분류", "중분류", "소분류", "번호", "제목", "페이지"}

// utf8BOM makes spreadsheet applications detect the encoding of the CSV.
const utf8BOM = "\ufeff"

// WriteCSV writes the table as UTF-8 CSV with a leading BOM.
func WriteCSV(w io.Writer, t Table) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range t.Rows {
		record := []string{row.Major, row.Mid, row.Sub, row.Number, row.Title, strconv.Itoa(row.Page)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a lookup table CSV written by WriteCSV. A leading BOM is
// stripped; the header row is required and verified.
func ReadCSV(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	records, err := cr.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("failed to parse lookup table CSV: %w", err)
	}
	if len(records) == 0 {
		return Table{}, fmt.Errorf("lookup table CSV has no header row")
	}

	header := records[0]
	header[0] = strings.TrimPrefix(header[0], utf8BOM)
	for i, want := range Header {
		if header[i] != want {
			return Table{}, fmt.Errorf("unexpected lookup table column %d: got %q, want %q", i, header[i], want)
		}
	}

	var rows []Row
	for i, record := range records[1:] {
		page, err := strconv.Atoi(strings.TrimSpace(record[5]))
		if err != nil {
			return Table{}, fmt.Errorf("invalid page number in row %d: %w", i+1, err)
		}
		rows = append(rows, Row{
			Major:  record[0],
			Mid:    record[1],
			Sub:    record[2],
			Number: record[3],
			Title:  record[4],
			Page:   page,
		})
	}

	return Table{Rows: rows}, nil
}

// SaveCSV writes the table to path. The write is all-or-nothing: output
// lands in a temp file first and is renamed into place.
func SaveCSV(path string, t Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create lookup table directory: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".lookup_table_*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := WriteCSV(tmp, t); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write lookup table: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save lookup table: %w", err)
	}
	return nil
}

// LoadCSV reads a lookup table from path.
func LoadCSV(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed to open lookup table: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}
