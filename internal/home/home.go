package home

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultDirName is the default name for the ascr home directory.
	DefaultDirName = ".ascr"

	// InputDirName is the subdirectory for source PDF documents.
	InputDirName = "input"

	// OutputDirName is the subdirectory for generated tables, dumps and split PDFs.
	OutputDirName = "output"

	// ConfigDirName is the subdirectory for mapping configurations.
	ConfigDirName = "config"

	// LogsDirName is the subdirectory for classification logs.
	LogsDirName = "logs"

	// ConfigFileName is the default config file name.
	ConfigFileName = "config.yaml"

	// TimestampLayout is the format used for all timestamped output names.
	TimestampLayout = "20060102_150405"
)

// Dir represents the ascr home directory structure.
type Dir struct {
	path string
}

// New creates a new Dir with the given path.
// If path is empty, uses the default (~/.ascr).
func New(path string) (*Dir, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, DefaultDirName)
	}

	return &Dir{path: path}, nil
}

// Path returns the root path of the home directory.
func (d *Dir) Path() string {
	return d.path
}

// InputPath returns the directory holding source PDFs.
func (d *Dir) InputPath() string {
	return filepath.Join(d.path, InputDirName)
}

// OutputPath returns the directory for generated output files.
func (d *Dir) OutputPath() string {
	return filepath.Join(d.path, OutputDirName)
}

// ConfigDirPath returns the directory for mapping configurations.
func (d *Dir) ConfigDirPath() string {
	return filepath.Join(d.path, ConfigDirName)
}

// LogsPath returns the directory for classification logs.
func (d *Dir) LogsPath() string {
	return filepath.Join(d.path, LogsDirName)
}

// ConfigPath returns the path to the default config file.
func (d *Dir) ConfigPath() string {
	return filepath.Join(d.path, ConfigFileName)
}

// EnsureExists creates the home directory and subdirectories if they don't exist.
func (d *Dir) EnsureExists() error {
	for _, dir := range []string{d.InputPath(), d.OutputPath(), d.ConfigDirPath(), d.LogsPath()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// Exists returns true if the home directory exists.
func (d *Dir) Exists() bool {
	_, err := os.Stat(d.path)
	return err == nil
}

// ConfigExists returns true if the config file exists in the home directory.
func (d *Dir) ConfigExists() bool {
	_, err := os.Stat(d.ConfigPath())
	return err == nil
}

// DefaultMappingConfigPath returns the non-timestamped mapping config the
// classifier loads by default.
func (d *Dir) DefaultMappingConfigPath() string {
	return filepath.Join(d.ConfigDirPath(), "mapping_config.json")
}

// MappingConfigPath returns a timestamped mapping config path for name.
func (d *Dir) MappingConfigPath(name string, ts time.Time) string {
	return filepath.Join(
		d.ConfigDirPath(),
		fmt.Sprintf("mapping_config_%s_%s.json", name, ts.Format(TimestampLayout)),
	)
}

// LookupTableCSVPath returns a timestamped lookup table CSV path for name.
func (d *Dir) LookupTableCSVPath(name string, ts time.Time) string {
	return filepath.Join(
		d.OutputPath(),
		fmt.Sprintf("lookup_table_%s_%s.csv", name, ts.Format(TimestampLayout)),
	)
}

// LookupTableXLSXPath returns a timestamped lookup table spreadsheet path for name.
func (d *Dir) LookupTableXLSXPath(name string, ts time.Time) string {
	return filepath.Join(
		d.OutputPath(),
		fmt.Sprintf("lookup_table_%s_%s.xlsx", name, ts.Format(TimestampLayout)),
	)
}

// DebugDumpPath returns a timestamped per-page text dump path.
func (d *Dir) DebugDumpPath(ts time.Time) string {
	return filepath.Join(d.OutputPath(), fmt.Sprintf("pdf_debug_%s.txt", ts.Format(TimestampLayout)))
}

// AnalysisLogPath returns a timestamped classification log path.
func (d *Dir) AnalysisLogPath(ts time.Time) string {
	return filepath.Join(d.LogsPath(), fmt.Sprintf("analysis_log_%s.txt", ts.Format(TimestampLayout)))
}

// TocTreePath returns a timestamped table-of-contents tree path.
func (d *Dir) TocTreePath(ts time.Time) string {
	return filepath.Join(d.OutputPath(), fmt.Sprintf("toc_tree_%s.json", ts.Format(TimestampLayout)))
}

// ClassifyRunDir returns the output directory for a classification run.
// Run IDs are opaque (UUID) strings.
func (d *Dir) ClassifyRunDir(runID string) string {
	return filepath.Join(d.OutputPath(), fmt.Sprintf("run_%s", runID))
}

// EnsureClassifyRunDir creates the output directory for a classification run.
func (d *Dir) EnsureClassifyRunDir(runID string) error {
	return os.MkdirAll(d.ClassifyRunDir(runID), 0o755)
}
