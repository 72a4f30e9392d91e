package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode"

	"github.com/spf13/viper"

	"github.com/Dydiddl/ASCR/internal/home"
)

// ErrInvalidKey is returned when a config key contains invalid characters.
var ErrInvalidKey = errors.New("invalid config key")

// ErrUnknownKey is returned when a config key has no known entry.
var ErrUnknownKey = errors.New("unknown config key")

// ValidateKey checks if a config key contains only allowed characters.
// Valid keys contain: letters, digits, dots, underscores, and hyphens.
// This protects against typos and malformed keys.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: key cannot be empty", ErrInvalidKey)
	}
	for i, r := range key {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.' && r != '_' && r != '-' {
			return fmt.Errorf("%w: invalid character %q at position %d", ErrInvalidKey, r, i)
		}
	}
	// Don't allow keys starting or ending with dots
	if key[0] == '.' || key[len(key)-1] == '.' {
		return fmt.Errorf("%w: key cannot start or end with a dot", ErrInvalidKey)
	}
	return nil
}

// Entry represents a single configuration entry.
type Entry struct {
	Key         string `json:"key"`
	Value       any    `json:"value"`
	Description string `json:"description"`
}

// Set validates and applies a single override, refreshing the cached config.
// The change is in-memory until Save is called.
func (cm *Manager) Set(key string, value any) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if GetDefault(key) == nil {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	viper.Set(key, value)

	cfg, err := cm.load()
	if err != nil {
		return err
	}

	cm.mu.Lock()
	cm.config = cfg
	cm.mu.Unlock()

	return nil
}

// Save persists the current configuration to path. An existing file at path is
// kept as a timestamped backup next to it, so a bad write never loses the
// previous settings.
func (cm *Manager) Save(path string) error {
	if prev, err := os.ReadFile(path); err == nil {
		backup := backupPath(path, time.Now())
		if err := os.WriteFile(backup, prev, 0o644); err != nil {
			return fmt.Errorf("failed to back up config: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read existing config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// backupPath returns the timestamped backup name for a config file.
func backupPath(path string, ts time.Time) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	name := base[:len(base)-len(ext)]
	return filepath.Join(dir, fmt.Sprintf("%s_%s%s.bak", name, ts.Format(home.TimestampLayout), ext))
}
