package mapping

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrMalformedConfig is returned when a mapping config document fails schema
// validation on load.
var ErrMalformedConfig = errors.New("malformed mapping config")

//go:embed config_schema.json
var configSchema string

// Load reads a mapping config from path. The document is validated against
// the embedded JSON Schema before it is decoded; violations surface as
// ErrMalformedConfig.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read mapping config: %w", err)
	}
	if err := validateDocument(data); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrMalformedConfig, err)
	}
	return cfg, nil
}

// Save writes the config as an indented JSON document at path. The write is
// all-or-nothing: a temp file in the target directory is renamed into place,
// so a previously written document is never half-overwritten.
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode mapping config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".mapping_config_*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write mapping config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write mapping config: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save mapping config: %w", err)
	}
	return nil
}

func validateDocument(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedConfig, err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("mapping_config.json", strings.NewReader(configSchema)); err != nil {
		return fmt.Errorf("failed to load config schema: %w", err)
	}
	schema, err := compiler.Compile("mapping_config.json")
	if err != nil {
		return fmt.Errorf("failed to compile config schema: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedConfig, err)
	}
	return nil
}
