package domain

import (
	"github.com/shopspring/decimal"
)

// Hours is the hours-worked figure for one year. A manual Override always
// takes precedence over Tracked hours.
type Hours struct {
	Tracked  decimal.Decimal  `yaml:"tracked" json:"tracked" validate:"gte=0"`
	Override *decimal.Decimal `yaml:"override,omitempty" json:"override,omitempty" validate:"omitempty,gte=0"`
}

// Effective returns the hours used for the hours criterion.
func (h Hours) Effective() decimal.Decimal {
	if h.Override != nil {
		return *h.Override
	}
	return h.Tracked
}

// FiscalElections are the per-year choices made by the entrepreneur.
type FiscalElections struct {
	IsStarter        bool `yaml:"is_starter" json:"is_starter"`
	StarterYearsUsed int  `yaml:"starter_years_used" json:"starter_years_used" validate:"gte=0"`
	UseFOR           bool `yaml:"use_for" json:"use_for"`
}

// TaxReportInput is the aggregated yearly data the engine works on.
type TaxReportInput struct {
	RevenueGross      decimal.Decimal  `json:"revenue_gross"`
	CreditNotesTotal  decimal.Decimal  `json:"credit_notes_total"`
	Expenses          ExpenseBreakdown `json:"expenses"`
	DepreciationTotal decimal.Decimal  `json:"depreciation_total"`
	KIAInvestments    decimal.Decimal  `json:"kia_investments"`
	HoursWorked       decimal.Decimal  `json:"hours_worked"`
	IsStarter         bool             `json:"is_starter"`
	StarterYearsUsed  int              `json:"starter_years_used"`
	UseFORElection    bool             `json:"use_for_election"`
}

// TaxReportResult is the complete, rounded report for one fiscal year.
type TaxReportResult struct {
	FiscalYear            int              `json:"fiscal_year" yaml:"fiscal_year"`
	RevenueGross          decimal.Decimal  `json:"revenue_gross" yaml:"revenue_gross"`
	CreditNotesTotal      decimal.Decimal  `json:"credit_notes_total" yaml:"credit_notes_total"`
	RevenueNet            decimal.Decimal  `json:"revenue_net" yaml:"revenue_net"`
	Expenses              ExpenseBreakdown `json:"expenses" yaml:"expenses"`
	ExpensesTotal         decimal.Decimal  `json:"expenses_total" yaml:"expenses_total"`
	DepreciationTotal     decimal.Decimal  `json:"depreciation_total" yaml:"depreciation_total"`
	GrossProfit           decimal.Decimal  `json:"gross_profit" yaml:"gross_profit"`
	KIAAmount             decimal.Decimal  `json:"kia_amount" yaml:"kia_amount"`
	SelfEmployedDeduction decimal.Decimal  `json:"self_employed_deduction" yaml:"self_employed_deduction"`
	StarterDeduction      decimal.Decimal  `json:"starter_deduction" yaml:"starter_deduction"`
	FORReservation        decimal.Decimal  `json:"for_reservation" yaml:"for_reservation"`
	ProfitBeforeExemption decimal.Decimal  `json:"profit_before_exemption" yaml:"profit_before_exemption"`
	SMEProfitExemption    decimal.Decimal  `json:"sme_profit_exemption" yaml:"sme_profit_exemption"`
	TaxableProfit         decimal.Decimal  `json:"taxable_profit" yaml:"taxable_profit"`
	EstimatedTaxBox1      decimal.Decimal  `json:"estimated_tax_box1" yaml:"estimated_tax_box1"`
	HoursWorked           decimal.Decimal  `json:"hours_worked" yaml:"hours_worked"`
	MeetsHoursCriterion   bool             `json:"meets_hours_criterion" yaml:"meets_hours_criterion"`
}

// TaxReport is the envelope handed to formatters and downstream storage.
type TaxReport struct {
	FiscalYear int              `json:"fiscal_year" yaml:"fiscal_year"`
	Status     ReportStatus     `json:"status" yaml:"status"`
	Result     *TaxReportResult `json:"result" yaml:"result"`
	Schedules  []AssetSchedule  `json:"schedules,omitempty" yaml:"schedules,omitempty"`
}

// YearFinancials is the raw upstream data for one fiscal year before aggregation.
type YearFinancials struct {
	FiscalYear       int              `yaml:"fiscal_year" json:"fiscal_year" validate:"required,gte=2000,lte=2100"`
	RevenueGross     decimal.Decimal  `yaml:"revenue_gross" json:"revenue_gross" validate:"gte=0"`
	CreditNotesTotal decimal.Decimal  `yaml:"credit_notes_total" json:"credit_notes_total" validate:"gte=0"`
	Expenses         []Expense        `yaml:"expenses" json:"expenses" validate:"dive"`
	Assets           []Asset          `yaml:"assets" json:"assets" validate:"dive"`
	Hours            Hours            `yaml:"hours" json:"hours"`
	Elections        FiscalElections  `yaml:"elections" json:"elections"`
}
