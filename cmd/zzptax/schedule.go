package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zzpboek/zzptax/internal/calculation"
	"github.com/zzpboek/zzptax/internal/domain"
	"github.com/zzpboek/zzptax/internal/output"
)

func newScheduleCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "schedule [input.yaml]",
		Short: "Print the depreciation schedule of every asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.loadFinancials(args[0])
			if err != nil {
				return err
			}
			data, err := formatSchedules(format, f.FiscalYear, calculation.FleetSchedules(f.Assets))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "console", "Output format: console, json or schedule-csv")
	return cmd
}

func formatSchedules(format string, year int, schedules []domain.AssetSchedule) ([]byte, error) {
	switch output.NormalizeFormatName(format) {
	case "console":
		return output.FormatSchedules(schedules), nil
	case "json":
		return json.MarshalIndent(schedules, "", "  ")
	case "schedule-csv":
		return output.CSVScheduleExporter{}.Format(&domain.TaxReport{FiscalYear: year, Schedules: schedules})
	default:
		return nil, fmt.Errorf("%w: %q for schedules (console, json or schedule-csv)", output.ErrUnsupportedFormat, format)
	}
}
