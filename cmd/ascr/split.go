package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dydiddl/ASCR/internal/pdfops"
)

var (
	splitPages  string
	splitLabel  string
	splitOutDir string
)

var splitCmd = &cobra.Command{
	Use:   "split <pdf>",
	Short: "Split a PDF by explicit page ranges",
	Long: `Split writes one PDF per page range. Ranges are 1-indexed inclusive,
comma separated: --pages "1-2,3-49,50-50". A single range may carry a
--label used as the output file name.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ranges, err := parseRanges(splitPages)
		if err != nil {
			return err
		}
		if splitLabel != "" {
			if len(ranges) != 1 {
				return fmt.Errorf("--label requires exactly one range")
			}
			ranges[0].Label = splitLabel
		}

		outDir := splitOutDir
		if outDir == "" {
			h, err := getHome()
			if err != nil {
				return err
			}
			outDir = h.OutputPath()
		}

		written, err := pdfops.Split(args[0], ranges, outDir)
		if err != nil {
			return err
		}
		for _, path := range written {
			printf("%s\n", path)
		}
		return nil
	},
}

// parseRanges parses "1-2,3-49" into a range list. A bare number is a
// single-page range.
func parseRanges(spec string) (pdfops.RangeList, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, fmt.Errorf("no page ranges given (use --pages)")
	}

	var ranges pdfops.RangeList
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		start, end, ok := strings.Cut(part, "-")
		if !ok {
			end = start
		}
		s, err := strconv.Atoi(strings.TrimSpace(start))
		if err != nil {
			return nil, fmt.Errorf("invalid page range %q", part)
		}
		e, err := strconv.Atoi(strings.TrimSpace(end))
		if err != nil {
			return nil, fmt.Errorf("invalid page range %q", part)
		}
		ranges = append(ranges, pdfops.Range{Start: s, End: e})
	}
	return ranges, nil
}

func init() {
	splitCmd.Flags().StringVar(&splitPages, "pages", "", `page ranges, e.g. "1-2,3-49"`)
	splitCmd.Flags().StringVar(&splitLabel, "label", "", "output name for a single range")
	splitCmd.Flags().StringVar(&splitOutDir, "out", "", "output directory (default: home output dir)")
}
