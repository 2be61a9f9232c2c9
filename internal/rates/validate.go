package rates

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/zzpboek/zzptax/internal/domain"
)

var one = decimal.NewFromInt(1)

// Validate checks the structural invariants of a rate table: amounts are
// non-negative, rates are fractions, and bracket tables are contiguous and
// strictly increasing.
func Validate(t domain.RateTable) error {
	if t.FiscalYear <= 0 {
		return errors.New("fiscal_year is required")
	}
	if t.StarterMaxYears < 0 {
		return errors.New("starter_max_years cannot be negative")
	}
	if !t.HoursCriterionMin.IsPositive() {
		return errors.New("hours_criterion_min must be positive")
	}

	for name, v := range map[string]decimal.Decimal{
		"self_employed_deduction": t.SelfEmployedDeduction,
		"starter_deduction":       t.StarterDeduction,
		"for_max_amount":          t.FORMaxAmount,
	} {
		if v.IsNegative() {
			return fmt.Errorf("%s cannot be negative", name)
		}
	}
	for name, v := range map[string]decimal.Decimal{
		"sme_exemption_percentage": t.SMEExemptionPercentage,
		"for_max_percentage":       t.FORMaxPercentage,
		"kia.tier1_percentage":     t.KIA.Tier1Percentage,
		"kia.tier3_percentage":     t.KIA.Tier3Percentage,
	} {
		if v.IsNegative() || v.GreaterThan(one) {
			return fmt.Errorf("%s must be between 0 and 1", name)
		}
	}

	if err := validateKIA(t.KIA); err != nil {
		return fmt.Errorf("kia: %w", err)
	}
	if err := validateBrackets(t.TaxBrackets); err != nil {
		return fmt.Errorf("tax_brackets: %w", err)
	}
	return nil
}

func validateKIA(k domain.KIATable) error {
	if k.MinInvestment.IsNegative() {
		return errors.New("min_investment cannot be negative")
	}
	if k.Tier1Max.LessThan(k.MinInvestment) {
		return errors.New("tier1_max must not be below min_investment")
	}
	if !k.Tier2Max.GreaterThan(k.Tier1Max) {
		return errors.New("tier2_max must be above tier1_max")
	}
	if k.MaxInvestment.LessThan(k.Tier2Max) {
		return errors.New("max_investment must not be below tier2_max")
	}
	if k.Tier2FixedAmount.LessThan(k.Tier1Max.Mul(k.Tier1Percentage).Round(0)) {
		return errors.New("tier2_fixed_amount is below the tier 1 amount at tier1_max")
	}
	return nil
}

func validateBrackets(brackets []domain.TaxBracket) error {
	if len(brackets) == 0 {
		return errors.New("at least one bracket is required")
	}
	prev := decimal.Zero
	for i, b := range brackets {
		if b.Rate.IsNegative() || b.Rate.GreaterThan(one) {
			return fmt.Errorf("bracket %d: rate must be between 0 and 1", i+1)
		}
		last := i == len(brackets)-1
		switch {
		case last && b.UpTo != nil:
			return errors.New("last bracket must be unbounded")
		case !last && b.UpTo == nil:
			return fmt.Errorf("bracket %d: only the last bracket may be unbounded", i+1)
		case !last && !b.UpTo.GreaterThan(prev):
			return fmt.Errorf("bracket %d: up_to must be above %s", i+1, prev.String())
		}
		if b.UpTo != nil {
			prev = *b.UpTo
		}
	}
	return nil
}
