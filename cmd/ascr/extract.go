package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dydiddl/ASCR/internal/extract"
	"github.com/Dydiddl/ASCR/internal/pdfops"
)

var (
	extractTextPage  int
	extractPagesSpec string
	extractPagesOut  string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract text or single pages from a PDF",
}

var extractTextCmd = &cobra.Command{
	Use:   "text <pdf>",
	Short: "Print extracted text, whole document or one page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := extract.ValidatePDFPath(args[0]); err != nil {
			return err
		}
		pages, err := extract.Pages(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if extractTextPage > 0 {
			page, ok := extract.FindPage(pages, extractTextPage)
			if !ok {
				return fmt.Errorf("page %d not found in document", extractTextPage)
			}
			printf("=== 페이지 %d ===\n%s\n\n", page.Number, page.Text)
			return nil
		}
		for _, page := range pages {
			printf("=== 페이지 %d ===\n%s\n\n", page.Number, page.Text)
		}
		return nil
	},
}

var extractPagesCmd = &cobra.Command{
	Use:   "pages <pdf>",
	Short: "Copy selected pages out as single-page PDFs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pages, err := parsePageList(extractPagesSpec)
		if err != nil {
			return err
		}

		outDir := extractPagesOut
		if outDir == "" {
			h, err := getHome()
			if err != nil {
				return err
			}
			outDir = h.OutputPath()
		}

		written, err := pdfops.ExtractPages(args[0], pages, outDir)
		if err != nil {
			return err
		}
		for _, path := range written {
			printf("%s\n", path)
		}
		return nil
	},
}

// parsePageList parses "3,5,7" into page numbers.
func parsePageList(spec string) ([]int, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, fmt.Errorf("no pages given (use --pages)")
	}
	var pages []int
	for _, part := range strings.Split(spec, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid page number %q", part)
		}
		pages = append(pages, n)
	}
	return pages, nil
}

func init() {
	extractTextCmd.Flags().IntVar(&extractTextPage, "page", 0, "print only this page")
	extractPagesCmd.Flags().StringVar(&extractPagesSpec, "pages", "", `pages to copy, e.g. "3,5,7"`)
	extractPagesCmd.Flags().StringVar(&extractPagesOut, "out", "", "output directory (default: home output dir)")
	extractCmd.AddCommand(extractTextCmd, extractPagesCmd)
}
