package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zzpboek/zzptax/internal/domain"
)

func TestAggregateExpenses(t *testing.T) {
	expenses := []domain.Expense{
		{Category: domain.CategoryFuel, NetAmount: d("100.004")},
		{Category: domain.CategoryTravel, NetAmount: d("50")},
		{Category: domain.CategoryRent, NetAmount: d("1000")},
		{Category: domain.CategoryUtilities, NetAmount: d("250.10")},
		{Category: domain.CategorySoftware, NetAmount: d("19.99")},
		{Category: domain.CategorySubcontracting, NetAmount: d("2500.555")},
		{Category: domain.CategoryMeals, NetAmount: d("42")},
		{Category: domain.CategoryInsurance, NetAmount: d("600")},
		{Category: domain.ExpenseCategory("yacht"), NetAmount: d("10")},
		{Category: domain.CategoryOther, NetAmount: d("5")},
	}

	got := AggregateExpenses(expenses)

	want := map[domain.ExpenseBucket]string{
		domain.BucketTransport:      "150",
		domain.BucketHousing:        "1250.10",
		domain.BucketGeneral:        "600",
		domain.BucketOffice:         "19.99",
		domain.BucketOutsourced:     "2500.56",
		domain.BucketRepresentation: "42",
		domain.BucketOther:          "15",
	}
	for bucket, amount := range want {
		assert.True(t, got.Amount(bucket).Equal(d(amount)), "%s got %s want %s", bucket, got.Amount(bucket), amount)
	}
	assert.True(t, got.Total().Equal(d("4577.65")), "total got %s", got.Total())
}

func TestAggregateExpenses_Empty(t *testing.T) {
	got := AggregateExpenses(nil)

	entries := got.Entries()
	assert.Len(t, entries, 7)
	for _, e := range entries {
		assert.True(t, e.Amount.IsZero(), "%s should default to zero", e.Bucket)
	}
}
