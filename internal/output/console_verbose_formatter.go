package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/zzpboek/zzptax/internal/domain"
)

// ConsoleVerboseFormatter renders the full line-by-line report, followed by
// the depreciation schedules when the report carries them.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string      { return "console" }
func (c ConsoleVerboseFormatter) Extension() string { return "txt" }

func (c ConsoleVerboseFormatter) Format(report *domain.TaxReport) ([]byte, error) {
	if report == nil || report.Result == nil {
		return nil, fmt.Errorf("console: empty report")
	}
	r := report.Result
	var buf bytes.Buffer

	rule := strings.Repeat("=", 64)
	fmt.Fprintln(&buf, rule)
	fmt.Fprintf(&buf, "INCOME TAX ESTIMATE  FISCAL YEAR %d  (%s)\n", report.FiscalYear, strings.ToUpper(string(report.Status)))
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf)

	criterion := "not met"
	if r.MeetsHoursCriterion {
		criterion = "met"
	}
	fmt.Fprintf(&buf, "Hours worked: %s (hours criterion %s)\n", FormatHours(r.HoursWorked), criterion)

	section := ""
	for _, l := range reportLines(r) {
		if l.Section != section {
			section = l.Section
			fmt.Fprintln(&buf)
			fmt.Fprintln(&buf, section)
			fmt.Fprintln(&buf, strings.Repeat("-", len(section)))
		}
		label := "  " + l.Label
		if l.Total {
			label = l.Label
		}
		fmt.Fprintf(&buf, "%-44s %18s\n", label, FormatCurrency(l.Amount))
	}

	if len(report.Schedules) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "DEPRECIATION SCHEDULES")
		fmt.Fprintln(&buf, strings.Repeat("-", 22))
		for _, s := range report.Schedules {
			writeSchedule(&buf, s)
		}
	}
	return buf.Bytes(), nil
}

func writeSchedule(buf *bytes.Buffer, s domain.AssetSchedule) {
	fmt.Fprintf(buf, "%s (%s)\n", s.Asset, s.Method)
	fmt.Fprintf(buf, "  %-6s %16s %16s %16s\n", "Year", "Book value start", "Depreciation", "Book value end")
	for _, e := range s.Entries {
		fmt.Fprintf(buf, "  %-6d %16s %16s %16s\n", e.Year,
			FormatCurrency(e.BookValueStart), FormatCurrency(e.Amount), FormatCurrency(e.BookValueEnd))
	}
	fmt.Fprintln(buf)
}

// FormatSchedules renders schedules on their own, without a tax report.
func FormatSchedules(schedules []domain.AssetSchedule) []byte {
	var buf bytes.Buffer
	for _, s := range schedules {
		writeSchedule(&buf, s)
	}
	return buf.Bytes()
}
