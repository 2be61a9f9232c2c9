package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/zzpboek/zzptax/internal/domain"
	money "github.com/zzpboek/zzptax/pkg/decimal"
)

// DeductionCalculator evaluates the entrepreneur deductions and the Box 1
// estimate for a single fiscal year. Every amount it returns is rounded to
// whole euros.
type DeductionCalculator struct {
	Rates domain.RateTable
}

// NewDeductionCalculator binds a calculator to one year's rate table.
func NewDeductionCalculator(rates domain.RateTable) *DeductionCalculator {
	return &DeductionCalculator{Rates: rates}
}

// MeetsHoursCriterion reports whether enough hours were worked to unlock the
// hours-gated deductions.
func (dc *DeductionCalculator) MeetsHoursCriterion(hoursWorked decimal.Decimal) bool {
	return hoursWorked.GreaterThanOrEqual(dc.Rates.HoursCriterionMin)
}

// KIA calculates the small-business investment deduction.
func (dc *DeductionCalculator) KIA(totalInvestments decimal.Decimal) decimal.Decimal {
	k := dc.Rates.KIA
	if totalInvestments.LessThan(k.MinInvestment) || totalInvestments.GreaterThan(k.MaxInvestment) {
		return decimal.Zero
	}

	switch {
	case totalInvestments.LessThanOrEqual(k.Tier1Max):
		return money.Whole(totalInvestments.Mul(k.Tier1Percentage))
	case totalInvestments.LessThanOrEqual(k.Tier2Max):
		return money.Whole(k.Tier2FixedAmount)
	default:
		decay := totalInvestments.Sub(k.Tier2Max).Mul(k.Tier3Percentage)
		return money.Whole(money.FloorZero(k.Tier2FixedAmount.Sub(decay)))
	}
}

// SelfEmployedDeduction is the fixed deduction, granted only when the hours
// criterion is met.
func (dc *DeductionCalculator) SelfEmployedDeduction(meetsHoursCriterion bool) decimal.Decimal {
	if !meetsHoursCriterion {
		return decimal.Zero
	}
	return money.Whole(dc.Rates.SelfEmployedDeduction)
}

// StarterDeduction requires the hours criterion, starter status and an
// unused starter year.
func (dc *DeductionCalculator) StarterDeduction(meetsHoursCriterion, isStarter bool, starterYearsUsed int) decimal.Decimal {
	if !meetsHoursCriterion || !isStarter || starterYearsUsed >= dc.Rates.StarterMaxYears {
		return decimal.Zero
	}
	return money.Whole(dc.Rates.StarterDeduction)
}

// FORReservation is the elective old-age reserve: a capped percentage of the
// profit that remains after the entrepreneur deductions.
func (dc *DeductionCalculator) FORReservation(profitBeforeFOR decimal.Decimal, useFORElection bool) decimal.Decimal {
	if !useFORElection || !profitBeforeFOR.IsPositive() {
		return decimal.Zero
	}
	return money.Min(money.Whole(profitBeforeFOR.Mul(dc.Rates.FORMaxPercentage)), dc.Rates.FORMaxAmount)
}

// SMEProfitExemption is the percentage exemption on the remaining profit.
// Callers gate it on the hours criterion.
func (dc *DeductionCalculator) SMEProfitExemption(profitBeforeExemption decimal.Decimal) decimal.Decimal {
	if !profitBeforeExemption.IsPositive() {
		return decimal.Zero
	}
	return money.Whole(profitBeforeExemption.Mul(dc.Rates.SMEExemptionPercentage))
}

// EstimatedProgressiveTax applies the Box 1 brackets to taxable income and
// rounds once, at the end.
func (dc *DeductionCalculator) EstimatedProgressiveTax(taxableIncome decimal.Decimal) decimal.Decimal {
	if !taxableIncome.IsPositive() {
		return decimal.Zero
	}

	tax := decimal.Zero
	lower := decimal.Zero
	for _, b := range dc.Rates.TaxBrackets {
		if b.UpTo == nil || taxableIncome.LessThanOrEqual(*b.UpTo) {
			tax = tax.Add(taxableIncome.Sub(lower).Mul(b.Rate))
			break
		}
		tax = tax.Add(b.UpTo.Sub(lower).Mul(b.Rate))
		lower = *b.UpTo
	}
	return money.Whole(tax)
}
