package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zzpboek/zzptax/internal/calculation"
	"github.com/zzpboek/zzptax/internal/domain"
	"github.com/zzpboek/zzptax/internal/logger"
	"github.com/zzpboek/zzptax/internal/output"
)

type reportFlags struct {
	format        string
	out           string
	status        string
	withSchedules bool
}

func newReportCmd(a *app) *cobra.Command {
	var flags reportFlags
	cmd := &cobra.Command{
		Use:   "report [input.yaml]",
		Short: "Calculate the tax report for one fiscal year",
		Example: `  # Print the full report
  zzptax report fy2024.yaml

  # Machine-readable output including depreciation schedules
  zzptax report fy2024.yaml --format json --with-schedules

  # Write a provisional CSV report to a file
  zzptax report fy2024.yaml --format csv --status provisional --out fy2024.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runReport(cmd, args[0], flags)
		},
	}
	cmd.Flags().StringVarP(&flags.format, "format", "f", a.defaultFormat(), "Output format: "+joinNames())
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&flags.status, "status", "draft", "Report status: draft, provisional, final or filed")
	cmd.Flags().BoolVar(&flags.withSchedules, "with-schedules", false, "Attach per-asset depreciation schedules")
	return cmd
}

func (a *app) runReport(cmd *cobra.Command, path string, flags reportFlags) error {
	formatter, err := output.LookupFormatter(flags.format)
	if err != nil {
		return err
	}
	status, err := domain.ParseReportStatus(flags.status)
	if err != nil {
		return err
	}

	f, err := a.loadFinancials(path)
	if err != nil {
		return err
	}
	log := logger.WithYear("report", f.FiscalYear)
	log.Info().Str("file", path).Str("format", formatter.Name()).Msg("generating report")

	engine, err := a.engine(f.FiscalYear)
	if err != nil {
		return err
	}
	report, err := engine.Report(*f, calculation.ReportOptions{Status: status, IncludeSchedules: flags.withSchedules})
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedYear) {
			return fmt.Errorf("could not generate report for year %d: %w", f.FiscalYear, err)
		}
		return err
	}

	if flags.out != "" {
		written, err := output.WriteFormatted(formatter, report, flags.out)
		if err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		log.Info().Str("path", written).Msg("report written")
		return nil
	}

	data, err := formatter.Format(report)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func joinNames() string {
	return strings.Join(output.AvailableFormatterNames(), ", ")
}
