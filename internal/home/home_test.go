package home

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	t.Run("with explicit path", func(t *testing.T) {
		dir, err := New("/tmp/test-ascr")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dir.Path() != "/tmp/test-ascr" {
			t.Errorf("expected path /tmp/test-ascr, got %s", dir.Path())
		}
	})

	t.Run("with empty path uses default", func(t *testing.T) {
		dir, err := New("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		home, _ := os.UserHomeDir()
		expected := filepath.Join(home, DefaultDirName)
		if dir.Path() != expected {
			t.Errorf("expected path %s, got %s", expected, dir.Path())
		}
	})
}

func TestDir_Paths(t *testing.T) {
	dir, _ := New("/tmp/test-ascr")

	t.Run("InputPath", func(t *testing.T) {
		expected := "/tmp/test-ascr/input"
		if dir.InputPath() != expected {
			t.Errorf("expected %s, got %s", expected, dir.InputPath())
		}
	})

	t.Run("OutputPath", func(t *testing.T) {
		expected := "/tmp/test-ascr/output"
		if dir.OutputPath() != expected {
			t.Errorf("expected %s, got %s", expected, dir.OutputPath())
		}
	})

	t.Run("ConfigPath", func(t *testing.T) {
		expected := "/tmp/test-ascr/config.yaml"
		if dir.ConfigPath() != expected {
			t.Errorf("expected %s, got %s", expected, dir.ConfigPath())
		}
	})

	t.Run("DefaultMappingConfigPath", func(t *testing.T) {
		expected := "/tmp/test-ascr/config/mapping_config.json"
		if dir.DefaultMappingConfigPath() != expected {
			t.Errorf("expected %s, got %s", expected, dir.DefaultMappingConfigPath())
		}
	})
}

func TestDir_TimestampedPaths(t *testing.T) {
	dir, _ := New("/tmp/test-ascr")
	ts := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

	t.Run("LookupTableCSVPath", func(t *testing.T) {
		expected := "/tmp/test-ascr/output/lookup_table_standard_20240315_093000.csv"
		if got := dir.LookupTableCSVPath("standard", ts); got != expected {
			t.Errorf("expected %s, got %s", expected, got)
		}
	})

	t.Run("MappingConfigPath", func(t *testing.T) {
		expected := "/tmp/test-ascr/config/mapping_config_standard_20240315_093000.json"
		if got := dir.MappingConfigPath("standard", ts); got != expected {
			t.Errorf("expected %s, got %s", expected, got)
		}
	})

	t.Run("DebugDumpPath", func(t *testing.T) {
		expected := "/tmp/test-ascr/output/pdf_debug_20240315_093000.txt"
		if got := dir.DebugDumpPath(ts); got != expected {
			t.Errorf("expected %s, got %s", expected, got)
		}
	})

	t.Run("AnalysisLogPath", func(t *testing.T) {
		expected := "/tmp/test-ascr/logs/analysis_log_20240315_093000.txt"
		if got := dir.AnalysisLogPath(ts); got != expected {
			t.Errorf("expected %s, got %s", expected, got)
		}
	})
}

func TestDir_EnsureExists(t *testing.T) {
	tmpDir := t.TempDir()
	ascrDir := filepath.Join(tmpDir, "ascr-test")

	dir, err := New(ascrDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Directory shouldn't exist yet
	if dir.Exists() {
		t.Error("directory should not exist before EnsureExists")
	}

	// Create it
	if err := dir.EnsureExists(); err != nil {
		t.Fatalf("EnsureExists failed: %v", err)
	}

	// Now it should exist
	if !dir.Exists() {
		t.Error("directory should exist after EnsureExists")
	}

	// All subdirectories should exist too
	for _, sub := range []string{dir.InputPath(), dir.OutputPath(), dir.ConfigDirPath(), dir.LogsPath()} {
		if _, err := os.Stat(sub); os.IsNotExist(err) {
			t.Errorf("directory %s should exist after EnsureExists", sub)
		}
	}
}

func TestDir_ConfigExists(t *testing.T) {
	tmpDir := t.TempDir()

	dir, err := New(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if dir.ConfigExists() {
		t.Error("config should not exist in empty directory")
	}

	if err := os.WriteFile(dir.ConfigPath(), []byte("project:\n  name: test\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if !dir.ConfigExists() {
		t.Error("config should exist after writing")
	}
}
