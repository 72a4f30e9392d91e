package main

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Dydiddl/ASCR/internal/classify"
	"github.com/Dydiddl/ASCR/internal/cliout"
	"github.com/Dydiddl/ASCR/internal/extract"
	"github.com/Dydiddl/ASCR/internal/pdfops"
)

var (
	classifyMappingFile string
	classifyOutDir      string
	classifyDryRun      bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify <pdf>",
	Short: "Classify a PDF's pages and split it along chapter boundaries",
	Long: `Classify extracts per-page text, assigns each page a chapter/section
classification via the mapping configuration, folds the decisions into
contiguous chapter boundaries, and splits the PDF accordingly.

Outputs land in a per-run directory under the home output dir, together
with the split report and a per-page analysis log.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src := args[0]
		if err := extract.ValidatePDFPath(src); err != nil {
			return err
		}

		cfg, err := getConfig()
		if err != nil {
			return err
		}
		mapCfg, err := loadMappingConfig(classifyMappingFile)
		if err != nil {
			return err
		}
		h, err := getHome()
		if err != nil {
			return err
		}

		runID := uuid.NewString()
		log := slog.Default().With("run_id", runID)
		log.Info("classification run starting", "src", src)

		pages, err := extract.Pages(cmd.Context(), src)
		if err != nil {
			return err
		}

		pc := classify.NewPageClassifier(classify.PageClassifierConfig{
			Mapping:      mapCfg,
			SearchWindow: cfg.Classify.SearchWindow,
			Logger:       log,
		})
		decisions := pc.ClassifyPages(pages)

		pageCount, err := pdfops.PageCount(src)
		if err != nil {
			return err
		}
		bounds := classify.Boundaries(decisions, pageCount)
		if !cfg.Classify.KeepBlankPages {
			bounds = classify.TrimBlankPages(bounds, decisions)
		}
		log.Info("boundaries assembled", "pages", pageCount, "units", len(bounds))

		if classifyDryRun {
			return cliout.Output(map[string]any{
				"run_id":     runID,
				"source":     src,
				"page_count": pageCount,
				"boundaries": bounds,
			})
		}

		outDir := classifyOutDir
		if outDir == "" {
			if err := h.EnsureClassifyRunDir(runID); err != nil {
				return err
			}
			outDir = h.ClassifyRunDir(runID)
		}

		report, err := pdfops.SplitByBoundaries(src, bounds, mapCfg.SectionTitles(), outDir)
		if err != nil {
			return err
		}

		logPath := h.AnalysisLogPath(time.Now())
		if err := classify.SaveLog(logPath, src, runID, decisions); err != nil {
			return err
		}

		printf("분할 완료: %d개 파일 → %s\n", len(report.Outputs), outDir)
		printf("분석 로그: %s\n", logPath)
		return nil
	},
}

func init() {
	classifyCmd.Flags().StringVar(&classifyMappingFile, "mapping", "", "mapping config file")
	classifyCmd.Flags().StringVar(&classifyOutDir, "out", "", "output directory (default: per-run dir under home)")
	classifyCmd.Flags().BoolVar(&classifyDryRun, "dry-run", false, "print boundaries without splitting")
}
