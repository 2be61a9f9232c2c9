package output

import (
	"bytes"
	"fmt"

	"github.com/zzpboek/zzptax/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console-lite" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *domain.TaxReport) ([]byte, error) {
	if report == nil || report.Result == nil {
		return nil, fmt.Errorf("console-lite: empty report")
	}
	r := report.Result
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "FY%d %s\n", report.FiscalYear, report.Status)
	fmt.Fprintf(&buf, "Gross profit:   %s\n", FormatCurrency(r.GrossProfit))
	fmt.Fprintf(&buf, "Deductions:     %s\n", FormatCurrency(r.GrossProfit.Sub(r.TaxableProfit)))
	fmt.Fprintf(&buf, "Taxable profit: %s\n", FormatCurrency(r.TaxableProfit))
	fmt.Fprintf(&buf, "Estimated tax:  %s\n", FormatCurrency(r.EstimatedTaxBox1))
	return buf.Bytes(), nil
}
