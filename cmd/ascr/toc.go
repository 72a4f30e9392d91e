package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dydiddl/ASCR/internal/extract"
	"github.com/Dydiddl/ASCR/internal/mapping"
	"github.com/Dydiddl/ASCR/internal/toc"
)

var (
	tocMarkdown  bool
	tocOut       string
	tocGenconfig bool
)

var tocCmd = &cobra.Command{
	Use:   "toc <pdf>",
	Short: "Extract the table of contents into a hierarchical tree",
	Long: `Toc detects the document's leading table-of-contents pages, parses
their entries, builds the chapter hierarchy, and saves it as JSON under
the home output dir. With --markdown the outline is printed instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src := args[0]
		if err := extract.ValidatePDFPath(src); err != nil {
			return err
		}
		pages, err := extract.Pages(cmd.Context(), src)
		if err != nil {
			return err
		}

		entries, tocPages := toc.ExtractEntries(pages)
		if len(entries) == 0 {
			return fmt.Errorf("no table-of-contents entries found in %s", src)
		}
		roots := toc.BuildTree(entries)

		if tocMarkdown {
			printf("%s", toc.Markdown(roots))
			return nil
		}

		if tocGenconfig {
			cfg, err := mapping.Generate(toc.LookupTable(entries))
			if err != nil {
				return err
			}
			h, err := getHome()
			if err != nil {
				return err
			}
			out := h.MappingConfigPath(outputBase(src), time.Now())
			if err := cfg.Save(out); err != nil {
				return err
			}
			printf("매핑 설정 저장: %s\n", out)
			return nil
		}

		out := tocOut
		if out == "" {
			h, err := getHome()
			if err != nil {
				return err
			}
			out = h.TocTreePath(time.Now())
		}
		tree := toc.NewTree(src, tocPages, roots)
		if err := tree.Save(out); err != nil {
			return err
		}
		printf("목차 트리 저장: %s (%d항목, 목차 페이지 %v)\n", out, tree.EntryCount, tocPages)
		return nil
	},
}

func init() {
	tocCmd.Flags().BoolVar(&tocMarkdown, "markdown", false, "print a markdown outline instead of saving JSON")
	tocCmd.Flags().BoolVar(&tocGenconfig, "genconfig", false, "generate a mapping config from the TOC entries")
	tocCmd.Flags().StringVar(&tocOut, "out", "", "output file (default: timestamped under home output dir)")
}
