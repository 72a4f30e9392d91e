package config

import "testing"

func TestDefaultEntries(t *testing.T) {
	entries := DefaultEntries()
	if len(entries) == 0 {
		t.Fatal("DefaultEntries() returned empty slice")
	}

	// Verify required keys exist
	requiredKeys := []string{
		"project.name",
		"classify.search_window",
		"classify.header_window",
		"ocr.type",
		"ocr.api_key",
		"ocr.enabled",
	}
	keyed := make(map[string]Entry, len(entries))
	for _, e := range entries {
		if _, dup := keyed[e.Key]; dup {
			t.Errorf("duplicate default key %q", e.Key)
		}
		keyed[e.Key] = e
	}
	for _, key := range requiredKeys {
		if _, ok := keyed[key]; !ok {
			t.Errorf("missing required default key %q", key)
		}
	}

	for _, e := range entries {
		if err := ValidateKey(e.Key); err != nil {
			t.Errorf("default key %q fails validation: %v", e.Key, err)
		}
		if e.Description == "" {
			t.Errorf("default key %q has no description", e.Key)
		}
	}
}

func TestGetDefault(t *testing.T) {
	t.Run("known key", func(t *testing.T) {
		entry := GetDefault("classify.search_window")
		if entry == nil {
			t.Fatal("expected entry for classify.search_window")
		}
		if entry.Value != 10 {
			t.Errorf("expected 10, got %v", entry.Value)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		if entry := GetDefault("does.not.exist"); entry != nil {
			t.Errorf("expected nil, got %+v", entry)
		}
	})
}
