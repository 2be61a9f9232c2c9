package output

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/zzpboek/zzptax/internal/domain"
)

// CSVScheduleExporter writes one row per asset and year of the attached
// depreciation schedules.
type CSVScheduleExporter struct{}

func (c CSVScheduleExporter) Name() string      { return "schedule-csv" }
func (c CSVScheduleExporter) Extension() string { return "csv" }

func (c CSVScheduleExporter) Format(report *domain.TaxReport) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("schedule-csv: empty report")
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"asset", "method", "year", "book_value_start", "depreciation", "book_value_end"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, s := range report.Schedules {
		for _, e := range s.Entries {
			row := []string{
				s.Asset,
				string(s.Method),
				intToString(e.Year),
				e.BookValueStart.StringFixed(2),
				e.Amount.StringFixed(2),
				e.BookValueEnd.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
