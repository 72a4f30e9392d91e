package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Dydiddl/ASCR/internal/cliout"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show project configuration and home directory status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig()
		if err != nil {
			return err
		}
		h, err := getHome()
		if err != nil {
			return err
		}

		dirs := map[string]string{
			"input":  h.InputPath(),
			"output": h.OutputPath(),
			"config": h.ConfigDirPath(),
			"logs":   h.LogsPath(),
		}

		status := make(map[string]any, len(dirs))
		for name, path := range dirs {
			entries, err := os.ReadDir(path)
			if err != nil {
				status[name] = map[string]any{"path": path, "exists": false}
				continue
			}
			files := 0
			for _, e := range entries {
				if !e.IsDir() {
					files++
				}
			}
			status[name] = map[string]any{
				"path":   path,
				"exists": true,
				"files":  files,
			}
		}

		return cliout.Output(map[string]any{
			"project":       cfg.Project,
			"classify":      cfg.Classify,
			"home":          h.Path(),
			"config_file":   h.ConfigPath(),
			"config_exists": h.ConfigExists(),
			"directories":   status,
		})
	},
}
