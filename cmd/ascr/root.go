package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dydiddl/ASCR/internal/cliout"
	"github.com/Dydiddl/ASCR/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "ascr",
	Short: "Korean construction-standard PDF classification and splitting",
	Long: `ascr classifies 건설공사 표준품셈 PDF documents and splits them along
chapter and section boundaries.

The pipeline includes:
  - Per-page text extraction and debug dumps
  - Lookup table building from table-of-contents text
  - Mapping configuration generation and rule-based page classification
  - PDF splitting/merging along classified boundaries`,
	Version: version.GitRelease,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation drops into the interactive menu.
		return runMenu(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.ascr/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "ascr home directory (default: ~/.ascr)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug logging",
	)

	// Set output format and log level before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cliout.SetFormat(outputFormat)

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	}

	rootCmd.AddCommand(
		versionCmd,
		classifyCmd,
		splitCmd,
		mergeCmd,
		infoCmd,
		debugCmd,
		genconfigCmd,
		extractCmd,
		tocCmd,
		analyzeCmd,
		configCmd,
	)
}
