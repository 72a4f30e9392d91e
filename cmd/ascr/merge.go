package main

import (
	"github.com/spf13/cobra"

	"github.com/Dydiddl/ASCR/internal/pdfops"
)

var mergeOut string

var mergeCmd = &cobra.Command{
	Use:   "merge <pdf>...",
	Short: "Merge PDFs into one file, in argument order",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := pdfops.Merge(args, mergeOut); err != nil {
			return err
		}
		printf("병합 완료: %s\n", mergeOut)
		return nil
	},
}

func init() {
	mergeCmd.Flags().StringVar(&mergeOut, "out", "merged.pdf", "output file")
}
