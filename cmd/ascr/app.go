package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Dydiddl/ASCR/internal/config"
	"github.com/Dydiddl/ASCR/internal/home"
	"github.com/Dydiddl/ASCR/internal/mapping"
)

// getHome resolves the home directory from the --home flag.
func getHome() (*home.Dir, error) {
	return home.New(homeDir)
}

// getConfig loads configuration, preferring the --config flag.
func getConfig() (*config.Config, error) {
	cm, err := config.NewManager(cfgFile)
	if err != nil {
		return nil, err
	}
	return cm.Get(), nil
}

// loadMappingConfig resolves the mapping config in priority order: explicit
// path, config override, the home default, falling back to the built-in
// rules when no file exists yet.
func loadMappingConfig(explicit string) (mapping.Config, error) {
	if explicit != "" {
		return mapping.Load(explicit)
	}

	cfg, err := getConfig()
	if err != nil {
		return mapping.Config{}, err
	}
	if cfg.Classify.MappingConfig != "" {
		return mapping.Load(cfg.Classify.MappingConfig)
	}

	h, err := getHome()
	if err != nil {
		return mapping.Config{}, err
	}
	path := h.DefaultMappingConfigPath()
	if _, err := os.Stat(path); err != nil {
		return mapping.Default(), nil
	}
	return mapping.Load(path)
}

// outputBase names derived outputs after the source file.
func outputBase(src string) string {
	base := filepath.Base(src)
	return base[:len(base)-len(filepath.Ext(base))]
}

func printf(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format, args...)
}
