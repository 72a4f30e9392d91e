package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Dydiddl/ASCR/internal/extract"
	"github.com/Dydiddl/ASCR/internal/lookup"
	"github.com/Dydiddl/ASCR/internal/mapping"
)

var (
	debugDumpOut  string
	debugTableXLS bool
	debugName     string
)

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Debug text dumps and lookup tables built from them",
}

var debugDumpCmd = &cobra.Command{
	Use:   "dump <pdf>",
	Short: "Extract per-page text into a numbered debug dump",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src := args[0]
		if err := extract.ValidatePDFPath(src); err != nil {
			return err
		}
		pages, err := extract.Pages(cmd.Context(), src)
		if err != nil {
			return err
		}

		out := debugDumpOut
		if out == "" {
			h, err := getHome()
			if err != nil {
				return err
			}
			out = h.DebugDumpPath(time.Now())
		}
		if err := extract.SaveDump(out, src, pages); err != nil {
			return err
		}
		printf("디버그 덤프 저장: %s (%d페이지)\n", out, len(pages))
		return nil
	},
}

var debugTableCmd = &cobra.Command{
	Use:   "table <dump>",
	Short: "Build a lookup table from a debug dump",
	Long: `Table parses a previously written debug dump and builds the lookup
table from its numbered TOC lines, saved as CSV (and optionally .xlsx)
under the home output dir. Chapter and section titles come from the
mapping config when one exists.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pages, err := extract.LoadDump(args[0])
		if err != nil {
			return err
		}

		mapCfg, err := loadMappingConfig("")
		if err != nil {
			mapCfg = mapping.Default()
		}
		builder := &lookup.Builder{
			ChapterTitles: mapCfg.ChapterTitles(),
			SectionTitles: mapCfg.SectionTitles(),
		}
		table := builder.Build(pages)

		h, err := getHome()
		if err != nil {
			return err
		}
		name := debugName
		if name == "" {
			name = outputBase(args[0])
		}
		now := time.Now()

		csvPath := h.LookupTableCSVPath(name, now)
		if err := lookup.SaveCSV(csvPath, table); err != nil {
			return err
		}
		printf("조견표 저장: %s (%d행)\n", csvPath, len(table.Rows))

		if debugTableXLS {
			xlsxPath := h.LookupTableXLSXPath(name, now)
			if err := lookup.SaveXLSX(xlsxPath, table); err != nil {
				return err
			}
			printf("조견표 저장: %s\n", xlsxPath)
		}
		return nil
	},
}

func init() {
	debugDumpCmd.Flags().StringVar(&debugDumpOut, "out", "", "dump file (default: timestamped under home output dir)")
	debugTableCmd.Flags().BoolVar(&debugTableXLS, "xlsx", false, "also write an .xlsx copy")
	debugTableCmd.Flags().StringVar(&debugName, "name", "", "table name used in output file names")
	debugCmd.AddCommand(debugDumpCmd, debugTableCmd)
}
