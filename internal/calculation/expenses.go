package calculation

import (
	"github.com/zzpboek/zzptax/internal/domain"
	money "github.com/zzpboek/zzptax/pkg/decimal"
)

// AggregateExpenses books each expense on its tax bucket. Every bucket is
// present in the result and rounded to cents.
func AggregateExpenses(expenses []domain.Expense) domain.ExpenseBreakdown {
	var out domain.ExpenseBreakdown
	for _, e := range expenses {
		out = out.Add(e.Category.Bucket(), e.NetAmount)
	}
	return out.Map(money.Cents)
}
