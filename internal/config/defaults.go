package config

import (
	"errors"
	"fmt"
)

// ErrNoDefault is returned when no default value exists for a config key.
var ErrNoDefault = errors.New("no default exists")

// DefaultEntries returns the known configuration keys with their defaults.
// These are the keys `ascr config set` accepts.
func DefaultEntries() []Entry {
	defaults := DefaultConfig()
	return []Entry{
		// ===================
		// Project
		// ===================
		{
			Key:         "project.name",
			Value:       defaults.Project.Name,
			Description: "Project name used in generated file names",
		},
		{
			Key:         "project.description",
			Value:       defaults.Project.Description,
			Description: "Human-readable description shown by `ascr info`",
		},

		// ===================
		// Classifier
		// ===================
		{
			Key:         "classify.search_window",
			Value:       defaults.Classify.SearchWindow,
			Description: "Leading characters of a line inspected for classification patterns",
		},
		{
			Key:         "classify.header_window",
			Value:       defaults.Classify.HeaderWindow,
			Description: "Leading characters of a page inspected for running headers",
		},
		{
			Key:         "classify.mapping_config",
			Value:       defaults.Classify.MappingConfig,
			Description: "Mapping config path override (empty: config/mapping_config.json)",
		},
		{
			Key:         "classify.keep_blank_pages",
			Value:       defaults.Classify.KeepBlankPages,
			Description: "Whether blank pages stay in split output",
		},

		// ===================
		// OCR collaborator
		// ===================
		{
			Key:         "ocr.type",
			Value:       defaults.OCR.Type,
			Description: "OCR provider type",
		},
		{
			Key:         "ocr.model",
			Value:       defaults.OCR.Model,
			Description: "Vision model used for header extraction from scanned pages",
		},
		{
			Key:         "ocr.api_key",
			Value:       defaults.OCR.APIKey,
			Description: "OCR API key (uses environment variable)",
		},
		{
			Key:         "ocr.rate_limit",
			Value:       defaults.OCR.RateLimit,
			Description: "Rate limit in requests per second for the OCR provider",
		},
		{
			Key:         "ocr.max_retries",
			Value:       defaults.OCR.MaxRetries,
			Description: "Maximum retry attempts for failed OCR requests",
		},
		{
			Key:         "ocr.enabled",
			Value:       defaults.OCR.Enabled,
			Description: "Whether the OCR collaborator is enabled",
		},
	}
}

// GetDefault returns the default entry for a config key.
// Returns nil if no default exists for the key.
func GetDefault(key string) *Entry {
	for _, entry := range DefaultEntries() {
		if entry.Key == key {
			return &entry
		}
	}
	return nil
}

// ResetToDefault resets a config key to its default value.
// Returns ErrNoDefault if no default exists for the key.
func (cm *Manager) ResetToDefault(key string) error {
	def := GetDefault(key)
	if def == nil {
		return fmt.Errorf("%w for key %q", ErrNoDefault, key)
	}
	return cm.Set(key, def.Value)
}
