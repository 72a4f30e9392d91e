package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Dydiddl/ASCR/internal/classify"
	"github.com/Dydiddl/ASCR/internal/cliout"
	"github.com/Dydiddl/ASCR/internal/extract"
	"github.com/Dydiddl/ASCR/internal/mapping"
	"github.com/Dydiddl/ASCR/internal/ocr"
)

var (
	analyzeHeaderPages string
	analyzeHeaderOCR   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Inspect document structure, content, and configs",
}

var analyzeStructureCmd = &cobra.Command{
	Use:   "structure <pdf>",
	Short: "Report document structure markers and extraction consistency",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pages, err := loadPages(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return cliout.Output(map[string]any{
			"structure":   extract.AnalyzeStructure(pages),
			"consistency": extract.CheckConsistency(pages),
		})
	},
}

var analyzeSearchCmd = &cobra.Command{
	Use:   "search <pdf> <keyword>",
	Short: "Search extracted text for a keyword",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pages, err := loadPages(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		hits := extract.Search(pages, args[1])
		if len(hits) == 0 {
			printf("검색 결과 없음: %q\n", args[1])
			return nil
		}
		return cliout.Output(hits)
	},
}

var analyzeHeaderCmd = &cobra.Command{
	Use:   "header <pdf>",
	Short: "Parse running headers from the given pages",
	Long: `Header reads the parenthesized running-header forms from each page's
extracted text. With --ocr, pages are rendered and read through the
vision OCR collaborator instead (for scanned documents).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pageNums, err := parsePageList(analyzeHeaderPages)
		if err != nil {
			return err
		}
		cfg, err := getConfig()
		if err != nil {
			return err
		}

		texts := make(map[int]string, len(pageNums))
		if analyzeHeaderOCR {
			if !cfg.OCR.Enabled {
				return fmt.Errorf("ocr is disabled in config (set ocr.enabled)")
			}
			client := ocr.NewClient(ocr.Config{
				APIKey:     cfg.ResolveOCRKey(),
				Model:      cfg.OCR.Model,
				Attempts:   uint(cfg.OCR.MaxRetries),
				RetryDelay: 2 * time.Second,
			})
			texts, err = client.ExtractHeaders(cmd.Context(), args[0], pageNums)
			if err != nil {
				return err
			}
		} else {
			pages, err := loadPages(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			byNumber := make(map[int]string, len(pages))
			for _, p := range pages {
				byNumber[p.Number] = p.Text
			}
			for _, n := range pageNums {
				texts[n] = byNumber[n]
			}
		}

		type pageHeader struct {
			Page   int             `json:"page" yaml:"page"`
			Found  bool            `json:"found" yaml:"found"`
			Header classify.Header `json:"header" yaml:"header"`
		}
		results := make([]pageHeader, 0, len(pageNums))
		for _, n := range pageNums {
			h, ok := classify.AnalyzeHeader(texts[n], cfg.Classify.HeaderWindow)
			results = append(results, pageHeader{Page: n, Found: ok, Header: h})
		}
		return cliout.Output(results)
	},
}

var analyzeConfigCmd = &cobra.Command{
	Use:   "config <mapping.json>",
	Short: "Report rule counts and coverage of a mapping config",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := mapping.Load(args[0])
		if err != nil {
			return err
		}
		return cliout.Output(mapping.Analyze(cfg))
	},
}

func loadPages(ctx context.Context, path string) ([]extract.Page, error) {
	if err := extract.ValidatePDFPath(path); err != nil {
		return nil, err
	}
	return extract.Pages(ctx, path)
}

func init() {
	analyzeHeaderCmd.Flags().StringVar(&analyzeHeaderPages, "pages", "", `pages to inspect, e.g. "3,5,7"`)
	analyzeHeaderCmd.Flags().BoolVar(&analyzeHeaderOCR, "ocr", false, "read headers via the vision OCR collaborator")
	analyzeCmd.AddCommand(analyzeStructureCmd, analyzeSearchCmd, analyzeHeaderCmd, analyzeConfigCmd)
}
