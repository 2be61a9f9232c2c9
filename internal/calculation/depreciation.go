package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/zzpboek/zzptax/internal/domain"
	"github.com/zzpboek/zzptax/pkg/dateutil"
	money "github.com/zzpboek/zzptax/pkg/decimal"
)

var (
	twelve              = decimal.NewFromInt(12)
	degressiveMultiple  = decimal.NewFromInt(2)
	degressiveRateLimit = decimal.RequireFromString("0.40")
)

// LinearAnnualAmount is (price - residual) / life, rounded to cents.
// A non-positive life yields zero.
func LinearAnnualAmount(purchasePrice, residualValue decimal.Decimal, usefulLifeYears int) decimal.Decimal {
	if usefulLifeYears <= 0 {
		return decimal.Zero
	}
	return money.Cents(purchasePrice.Sub(residualValue).Div(decimal.NewFromInt(int64(usefulLifeYears))))
}

// DegressiveAnnualAmount applies min(200% / remaining life, 40%) to the
// current book value, never taking the book value below the residual value.
func DegressiveAnnualAmount(currentBookValue decimal.Decimal, remainingUsefulLifeYears int, residualValue decimal.Decimal) decimal.Decimal {
	if remainingUsefulLifeYears <= 0 {
		return decimal.Zero
	}
	rate := money.Min(degressiveMultiple.Div(decimal.NewFromInt(int64(remainingUsefulLifeYears))), degressiveRateLimit)
	amount := money.Min(currentBookValue.Mul(rate), currentBookValue.Sub(residualValue))
	return money.Cents(money.FloorZero(amount))
}

// ValidateAsset checks the asset invariants. The scheduler tolerates invalid
// assets, so this is for upstream rejection.
func ValidateAsset(a domain.Asset) error {
	switch {
	case a.PurchasePrice.IsNegative():
		return &domain.InvalidAssetError{Asset: a.Name, Reason: "purchase price cannot be negative"}
	case a.ResidualValue.IsNegative():
		return &domain.InvalidAssetError{Asset: a.Name, Reason: "residual value cannot be negative"}
	case a.ResidualValue.GreaterThan(a.PurchasePrice):
		return &domain.InvalidAssetError{Asset: a.Name, Reason: "residual value exceeds purchase price"}
	case a.UsefulLifeYears <= 0:
		return &domain.InvalidAssetError{Asset: a.Name, Reason: "useful life must be at least one year"}
	case a.PurchaseDate.IsZero():
		return &domain.InvalidAssetError{Asset: a.Name, Reason: "purchase date is required"}
	case a.DisposalDate != nil && a.DisposalDate.Before(a.PurchaseDate):
		return &domain.InvalidAssetError{Asset: a.Name, Reason: "disposal date is before purchase date"}
	}
	return nil
}

// GenerateSchedule returns the year-by-year depreciation of one asset, from
// the purchase year until the book value reaches the residual value.
//
// The first year is prorated by the months remaining in the purchase year.
// The loop is bounded by the useful life; any balance still above the
// residual value afterwards is closed by one extra entry in the following year.
func GenerateSchedule(a domain.Asset) []domain.DepreciationEntry {
	startYear := a.PurchaseDate.Year()
	if a.UsefulLifeYears <= 0 {
		return []domain.DepreciationEntry{{
			Year:           startYear,
			Amount:         decimal.Zero,
			BookValueStart: a.PurchasePrice,
			BookValueEnd:   a.PurchasePrice,
		}}
	}

	months := decimal.NewFromInt(int64(dateutil.MonthsRemainingInYear(a.PurchaseDate)))
	linear := LinearAnnualAmount(a.PurchasePrice, a.ResidualValue, a.UsefulLifeYears)

	bookValue := a.PurchasePrice
	entries := make([]domain.DepreciationEntry, 0, a.UsefulLifeYears+1)

	for i := 0; i < a.UsefulLifeYears; i++ {
		amount := linear
		if a.Method == domain.MethodDegressive {
			amount = DegressiveAnnualAmount(bookValue, a.UsefulLifeYears-i, a.ResidualValue)
		}
		if i == 0 {
			amount = money.Cents(amount.Mul(months).Div(twelve))
		}
		amount = money.Clamp(amount, decimal.Zero, bookValue.Sub(a.ResidualValue))

		end := bookValue.Sub(amount)
		entries = append(entries, domain.DepreciationEntry{
			Year:           startYear + i,
			Amount:         amount,
			BookValueStart: bookValue,
			BookValueEnd:   end,
		})
		bookValue = end

		if bookValue.LessThanOrEqual(a.ResidualValue) {
			break
		}
	}

	if bookValue.GreaterThan(a.ResidualValue) {
		last := entries[len(entries)-1]
		entries = append(entries, domain.DepreciationEntry{
			Year:           last.Year + 1,
			Amount:         bookValue.Sub(a.ResidualValue),
			BookValueStart: bookValue,
			BookValueEnd:   a.ResidualValue,
		})
	}
	return entries
}

// DepreciationForYear returns the schedule entry for year, if the asset has one.
func DepreciationForYear(a domain.Asset, year int) (domain.DepreciationEntry, bool) {
	for _, e := range GenerateSchedule(a) {
		if e.Year == year {
			return e, true
		}
	}
	return domain.DepreciationEntry{}, false
}

// BookValueAsOf returns the closing book value of the latest scheduled year
// on or before date's year, or the purchase price if none has passed yet.
func BookValueAsOf(a domain.Asset, date time.Time) decimal.Decimal {
	value := a.PurchasePrice
	for _, e := range GenerateSchedule(a) {
		if e.Year > date.Year() {
			break
		}
		value = e.BookValueEnd
	}
	return value
}
