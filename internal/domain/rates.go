package domain

import (
	"github.com/shopspring/decimal"
)

// KIATable holds the small-business investment deduction brackets for one year.
//
// Tiers are contiguous: [MinInvestment, Tier1Max] pays a percentage of the
// investment, (Tier1Max, Tier2Max] pays a fixed amount, and
// (Tier2Max, MaxInvestment] decays linearly from the fixed amount.
type KIATable struct {
	MinInvestment    decimal.Decimal `yaml:"min_investment" json:"min_investment"`
	MaxInvestment    decimal.Decimal `yaml:"max_investment" json:"max_investment"`
	Tier1Max         decimal.Decimal `yaml:"tier1_max" json:"tier1_max"`
	Tier1Percentage  decimal.Decimal `yaml:"tier1_percentage" json:"tier1_percentage"`
	Tier2Max         decimal.Decimal `yaml:"tier2_max" json:"tier2_max"`
	Tier2FixedAmount decimal.Decimal `yaml:"tier2_fixed_amount" json:"tier2_fixed_amount"`
	Tier3Percentage  decimal.Decimal `yaml:"tier3_percentage" json:"tier3_percentage"`
}

// TaxBracket is one band of the progressive Box 1 table. UpTo is nil for the
// final, unbounded bracket.
type TaxBracket struct {
	UpTo *decimal.Decimal `yaml:"up_to,omitempty" json:"up_to,omitempty"`
	Rate decimal.Decimal  `yaml:"rate" json:"rate"`
}

// RateTable is the read-only set of constants for a single fiscal year.
type RateTable struct {
	FiscalYear             int             `yaml:"fiscal_year" json:"fiscal_year"`
	SelfEmployedDeduction  decimal.Decimal `yaml:"self_employed_deduction" json:"self_employed_deduction"`
	StarterDeduction       decimal.Decimal `yaml:"starter_deduction" json:"starter_deduction"`
	StarterMaxYears        int             `yaml:"starter_max_years" json:"starter_max_years"`
	SMEExemptionPercentage decimal.Decimal `yaml:"sme_exemption_percentage" json:"sme_exemption_percentage"`
	KIA                    KIATable        `yaml:"kia" json:"kia"`
	FORMaxPercentage       decimal.Decimal `yaml:"for_max_percentage" json:"for_max_percentage"`
	FORMaxAmount           decimal.Decimal `yaml:"for_max_amount" json:"for_max_amount"`
	HoursCriterionMin      decimal.Decimal `yaml:"hours_criterion_min" json:"hours_criterion_min"`
	TaxBrackets            []TaxBracket    `yaml:"tax_brackets" json:"tax_brackets"`
}

// Clone returns a deep copy so callers can never mutate a registered table.
func (rt RateTable) Clone() RateTable {
	out := rt
	out.TaxBrackets = make([]TaxBracket, len(rt.TaxBrackets))
	for i, b := range rt.TaxBrackets {
		out.TaxBrackets[i] = TaxBracket{Rate: b.Rate}
		if b.UpTo != nil {
			upTo := *b.UpTo
			out.TaxBrackets[i].UpTo = &upTo
		}
	}
	return out
}
