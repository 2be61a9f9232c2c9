package calculation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zzpboek/zzptax/internal/domain"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func date(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// rates2024 mirrors the built-in 2024 table so these tests do not depend on
// the embedded files.
func rates2024() domain.RateTable {
	bracket1 := d("75518")
	return domain.RateTable{
		FiscalYear:             2024,
		SelfEmployedDeduction:  d("3750"),
		StarterDeduction:       d("2123"),
		StarterMaxYears:        3,
		SMEExemptionPercentage: d("0.1331"),
		KIA: domain.KIATable{
			MinInvestment:    d("2801"),
			MaxInvestment:    d("387580"),
			Tier1Max:         d("69765"),
			Tier1Percentage:  d("0.28"),
			Tier2Max:         d("129194"),
			Tier2FixedAmount: d("19535"),
			Tier3Percentage:  d("0.0756"),
		},
		FORMaxPercentage:  d("0.0944"),
		FORMaxAmount:      d("10786"),
		HoursCriterionMin: d("1225"),
		TaxBrackets: []domain.TaxBracket{
			{UpTo: &bracket1, Rate: d("0.3697")},
			{Rate: d("0.4950")},
		},
	}
}

func rates2025() domain.RateTable {
	b1, b2 := d("38441"), d("76817")
	rt := rates2024()
	rt.FiscalYear = 2025
	rt.SelfEmployedDeduction = d("2470")
	rt.SMEExemptionPercentage = d("0.127")
	rt.TaxBrackets = []domain.TaxBracket{
		{UpTo: &b1, Rate: d("0.3582")},
		{UpTo: &b2, Rate: d("0.3748")},
		{Rate: d("0.4950")},
	}
	return rt
}

type staticRates map[int]domain.RateTable

func (s staticRates) Lookup(year int) (domain.RateTable, error) {
	t, ok := s[year]
	if !ok {
		return domain.RateTable{}, &domain.ConfigurationError{Year: year}
	}
	return t.Clone(), nil
}

func testRates() staticRates {
	return staticRates{2024: rates2024(), 2025: rates2025()}
}

// recordingLogger keeps warnings for assertions.
type recordingLogger struct {
	NopLogger
	warnings []string
}

func (r *recordingLogger) Warnf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}
