package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/zzpboek/zzptax/internal/domain"
)

// CSVLineItems writes the report as key/amount rows in report order.
// Amounts are plain decimals with two places.
type CSVLineItems struct{}

func (c CSVLineItems) Name() string      { return "csv" }
func (c CSVLineItems) Extension() string { return "csv" }

func (c CSVLineItems) Format(report *domain.TaxReport) ([]byte, error) {
	if report == nil || report.Result == nil {
		return nil, fmt.Errorf("csv: empty report")
	}
	r := report.Result
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	rows := [][]string{
		{"line", "value"},
		{"fiscal_year", intToString(report.FiscalYear)},
		{"status", string(report.Status)},
		{"hours_worked", r.HoursWorked.String()},
		{"meets_hours_criterion", boolToString(r.MeetsHoursCriterion)},
	}
	for _, l := range reportLines(r) {
		rows = append(rows, []string{l.Key, l.Amount.StringFixed(2)})
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
