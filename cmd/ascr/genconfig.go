package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Dydiddl/ASCR/internal/lookup"
	"github.com/Dydiddl/ASCR/internal/mapping"
)

var (
	genconfigOut     string
	genconfigName    string
	genconfigDefault bool
)

var genconfigCmd = &cobra.Command{
	Use:   "genconfig <lookup.csv>",
	Short: "Generate a mapping config from a lookup table CSV",
	Long: `Genconfig derives chapter and section patterns from the distinct
chapter/section groups of a lookup table and writes them, together with
the default special cases, as a mapping config JSON document.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := lookup.LoadCSV(args[0])
		if err != nil {
			return err
		}
		cfg, err := mapping.Generate(table)
		if err != nil {
			return err
		}

		out := genconfigOut
		if out == "" {
			h, err := getHome()
			if err != nil {
				return err
			}
			if genconfigDefault {
				out = h.DefaultMappingConfigPath()
			} else {
				name := genconfigName
				if name == "" {
					name = outputBase(args[0])
				}
				out = h.MappingConfigPath(name, time.Now())
			}
		}

		if err := cfg.Save(out); err != nil {
			return err
		}
		stats := mapping.Analyze(cfg)
		printf("매핑 설정 저장: %s (장 %d, 부문 %d, 특수 %d)\n",
			out, stats.ChapterRules, stats.SectionRules, stats.SpecialCases)
		return nil
	},
}

func init() {
	genconfigCmd.Flags().StringVar(&genconfigOut, "out", "", "output file (default: timestamped under home config dir)")
	genconfigCmd.Flags().StringVar(&genconfigName, "name", "", "config name used in the output file name")
	genconfigCmd.Flags().BoolVar(&genconfigDefault, "default", false, "write as the default mapping config")
}
