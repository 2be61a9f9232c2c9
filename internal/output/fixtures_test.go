package output

import (
	"github.com/shopspring/decimal"

	"github.com/zzpboek/zzptax/internal/domain"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func buildTestReport() *domain.TaxReport {
	return &domain.TaxReport{
		FiscalYear: 2024,
		Status:     domain.StatusDraft,
		Result: &domain.TaxReportResult{
			FiscalYear:            2024,
			RevenueGross:          dec("80000"),
			CreditNotesTotal:      dec("2000"),
			RevenueNet:            dec("78000"),
			Expenses:              domain.ExpenseBreakdown{Office: dec("3000.50"), Transport: dec("1500.25")},
			ExpensesTotal:         dec("4500.75"),
			DepreciationTotal:     dec("1000"),
			GrossProfit:           dec("72499.25"),
			KIAAmount:             dec("2800"),
			SelfEmployedDeduction: dec("3750"),
			StarterDeduction:      dec("2123"),
			FORReservation:        dec("6025"),
			ProfitBeforeExemption: dec("57801.25"),
			SMEProfitExemption:    dec("7693"),
			TaxableProfit:         dec("50108.25"),
			EstimatedTaxBox1:      dec("18525"),
			HoursWorked:           dec("1400"),
			MeetsHoursCriterion:   true,
		},
		Schedules: []domain.AssetSchedule{
			{
				Asset:  "camera rig",
				Method: domain.MethodLinear,
				Entries: []domain.DepreciationEntry{
					{Year: 2024, Amount: dec("1000"), BookValueStart: dec("12000"), BookValueEnd: dec("11000")},
					{Year: 2025, Amount: dec("2000"), BookValueStart: dec("11000"), BookValueEnd: dec("9000")},
				},
			},
		},
	}
}
