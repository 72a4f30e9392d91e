package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"valid dotted key", "classify.search_window", false},
		{"valid with hyphen", "ocr.rate-limit", false},
		{"valid with digits", "ocr.model2", false},
		{"empty key", "", true},
		{"leading dot", ".project.name", true},
		{"trailing dot", "project.name.", true},
		{"whitespace", "project name", true},
		{"shell metacharacter", "project.name;rm", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKey(tt.key)
			if tt.wantErr && err == nil {
				t.Errorf("expected error for key %q", tt.key)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error for key %q: %v", tt.key, err)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidKey) {
				t.Errorf("expected ErrInvalidKey, got %v", err)
			}
		})
	}
}

func TestManager_Set(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configFile, []byte("project:\n  name: test\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	mgr, err := NewManager(configFile)
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	t.Run("known key updates cached config", func(t *testing.T) {
		t.Cleanup(func() {
			if err := mgr.ResetToDefault("classify.search_window"); err != nil {
				t.Fatalf("failed to reset key: %v", err)
			}
		})

		if err := mgr.Set("classify.search_window", 20); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if got := mgr.Get().Classify.SearchWindow; got != 20 {
			t.Errorf("expected 20, got %d", got)
		}
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		err := mgr.Set("classify.no_such_knob", 1)
		if !errors.Is(err, ErrUnknownKey) {
			t.Errorf("expected ErrUnknownKey, got %v", err)
		}
	})

	t.Run("malformed key rejected", func(t *testing.T) {
		err := mgr.Set("classify search window", 1)
		if !errors.Is(err, ErrInvalidKey) {
			t.Errorf("expected ErrInvalidKey, got %v", err)
		}
	})
}

func TestManager_Save(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	original := "project:\n  name: before-save\n"
	if err := os.WriteFile(configFile, []byte(original), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	mgr, err := NewManager(configFile)
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	if err := mgr.Save(configFile); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// The previous file must survive as a timestamped backup
	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("failed to list dir: %v", err)
	}
	var backups []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".yaml.bak") {
			backups = append(backups, e.Name())
		}
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup file, got %d", len(backups))
	}

	data, err := os.ReadFile(filepath.Join(tmpDir, backups[0]))
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(data) != original {
		t.Errorf("backup content mismatch: got %q", string(data))
	}

	// The saved config must still carry the file's settings
	saved, err := os.ReadFile(configFile)
	if err != nil {
		t.Fatalf("failed to read saved config: %v", err)
	}
	if !strings.Contains(string(saved), "before-save") {
		t.Errorf("saved config lost settings: %s", string(saved))
	}
}

func TestBackupPath(t *testing.T) {
	ts := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	got := backupPath("/home/u/.ascr/config.yaml", ts)
	want := "/home/u/.ascr/config_20240315_093000.yaml.bak"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
