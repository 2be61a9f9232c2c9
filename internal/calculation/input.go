package calculation

import (
	"github.com/zzpboek/zzptax/internal/domain"
)

// AssembleInput turns raw yearly financials into engine input: expenses are
// bucketed, depreciation and KIA investments are summed over the fleet, and
// the hours override is applied.
func AssembleInput(f domain.YearFinancials) domain.TaxReportInput {
	return domain.TaxReportInput{
		RevenueGross:      f.RevenueGross,
		CreditNotesTotal:  f.CreditNotesTotal,
		Expenses:          AggregateExpenses(f.Expenses),
		DepreciationTotal: TotalDepreciationForYear(f.Assets, f.FiscalYear),
		KIAInvestments:    TotalKIAInvestmentsForYear(f.Assets, f.FiscalYear),
		HoursWorked:       f.Hours.Effective(),
		IsStarter:         f.Elections.IsStarter,
		StarterYearsUsed:  f.Elections.StarterYearsUsed,
		UseFORElection:    f.Elections.UseFOR,
	}
}
