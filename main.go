package main

import (
	"context"
	"fmt"
	"os"

	"countrystats/adapters/excel"
	"countrystats/adapters/textfile"
	"countrystats/app"
	"countrystats/internal"
	"countrystats/internal/analysis/questions"
	"countrystats/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		input     string
		output    string
		delimiter string
		sheet     string
		topN      int
		ranking   string
	)

	cmd := &cobra.Command{
		Use:   "countrystats",
		Short: "Answer the country/city/language report questions a-h",
		Long: `Read a country/city/language table and write the answers to questions a-h.

Settings come from the environment (or a .env file) and may be overridden by flags:
- REPORT_INPUT             input table (.csv/.txt delimited text, or .xlsx)
- REPORT_OUTPUT            report file, replaced atomically
- REPORT_DELIMITER         field separator (default ",", also "tab")
- REPORT_SHEET             xlsx sheet (default: first sheet)
- REPORT_TOP_N             rows listed by questions b, c, f, g (default 5)
- REPORT_LANGUAGE_RANKING  normalized|raw (raw is deprecated)
- LOG_LEVEL                ERROR|WARN|INFO|DEBUG|TRACE

Example: countrystats --input "Database Prac 1/file.txt" --output "Database Prac 1/file2.txt"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("input") {
				cfg.Paths.Input = input
			}
			if flags.Changed("output") {
				cfg.Paths.Output = output
			}
			if flags.Changed("delimiter") {
				if cfg.Input.Delimiter, err = config.ParseDelimiter(delimiter); err != nil {
					return err
				}
			}
			if flags.Changed("sheet") {
				cfg.Input.Sheet = sheet
			}
			if flags.Changed("top") {
				cfg.Report.TopN = topN
			}
			if flags.Changed("language-ranking") {
				cfg.Report.LanguageRanking = ranking
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return runReport(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Input table path (overrides REPORT_INPUT)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Report output path (overrides REPORT_OUTPUT)")
	cmd.Flags().StringVar(&delimiter, "delimiter", ",", "Field separator for delimited text")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Sheet to read from an xlsx workbook")
	cmd.Flags().IntVar(&topN, "top", questions.DefaultTopN, "Rows listed by the ranking questions")
	cmd.Flags().StringVar(&ranking, "language-ranking", config.RankingNormalized, "Language ranking: normalized|raw")

	return cmd
}

func runReport(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := internal.NewLogger(internal.ParseLogLevel(cfg.Log.Level))

	svc := app.NewReportService(
		excel.NewDataReaderFromConfig(cfg, logger),
		textfile.NewWriter(logger),
		questions.Options{
			TopN:            cfg.Report.TopN,
			LanguageRanking: questions.LanguageRanking(cfg.Report.LanguageRanking),
		},
		logger,
	)

	result, err := svc.Generate(ctx, app.ReportRequest{OutputPath: cfg.Paths.Output})
	if err != nil {
		logger.Error("run %s finished with status %s", result.RunID, result.Status)
		return err
	}
	logger.Info("run %s finished with status %s in %s", result.RunID, result.Status, result.Duration)
	return nil
}
