package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"spend-insights/internal/dto"
	"spend-insights/internal/models"
	"spend-insights/internal/services"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var errNoInputFiles = errors.New("no input files: pass CSV paths or set FILE_PATH_1")

type analyzeOptions struct {
	jsonOutput bool
	zThreshold float64
	record     bool
}

func newAnalyzeCommand() *cobra.Command {
	var opts analyzeOptions

	cmd := &cobra.Command{
		Use:   "analyze [files...]",
		Short: "Analyze bank CSV exports and print the summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			a, err := newApp(cfg, opts.record)
			if err != nil {
				return err
			}
			defer a.Close()

			files := args
			if len(files) == 0 {
				files = cfg.Analysis.InputFiles
			}
			if len(files) == 0 {
				return errNoInputFiles
			}

			report, err := a.analysis.Analyze(cmd.Context(), services.AnalysisOptions{
				Files:           files,
				ZScoreThreshold: opts.zThreshold,
			})
			if err != nil {
				if errors.Is(err, services.ErrNoData) {
					return fmt.Errorf("nothing to analyze: %w", err)
				}
				return err
			}

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), dto.NewDataResponse(report))
			}
			return writeSummary(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "print the full report as JSON")
	cmd.Flags().Float64Var(&opts.zThreshold, "z-threshold", 0, "z-score threshold for unique spend patterns (default from Z_SCORE_THRESHOLD)")
	cmd.Flags().BoolVar(&opts.record, "record", false, "record the run in the history database")

	return cmd
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeSummary(w io.Writer, report *models.Report) error {
	header := color.New(color.FgCyan, color.Bold)
	if _, err := header.Fprintf(w, "Spending summary (run %s, z > %.2f)\n\n", report.RunID, report.ZScoreThreshold); err != nil {
		return err
	}
	if _, err := io.WriteString(w, report.Summary.Text); err != nil {
		return err
	}

	if len(report.OutlierMonths) == 0 {
		return nil
	}
	warn := color.New(color.FgYellow)
	for _, o := range report.OutlierMonths {
		if _, err := warn.Fprintf(w, "  %s %-20s %10s (threshold %.2f)\n",
			o.Month, o.Category, o.Value.StringFixed(2), o.Threshold); err != nil {
			return err
		}
	}
	return nil
}
