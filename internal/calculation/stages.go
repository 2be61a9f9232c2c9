package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/zzpboek/zzptax/internal/domain"
	money "github.com/zzpboek/zzptax/pkg/decimal"
)

// The report is computed as a chain of stages. Each stage is an immutable
// value and each stage function takes exactly the earlier stages it depends
// on, so the evaluation order is fixed by the signatures.
//
//	profit -> eligibility -> entrepreneur -> reservation -> exemption -> tax
//
// Profit figures are carried unrounded; deduction amounts are whole euros.

// profitStage: net revenue, expenses and gross profit.
type profitStage struct {
	RevenueGross      decimal.Decimal
	CreditNotesTotal  decimal.Decimal
	RevenueNet        decimal.Decimal
	Expenses          domain.ExpenseBreakdown
	ExpensesTotal     decimal.Decimal
	DepreciationTotal decimal.Decimal
	GrossProfit       decimal.Decimal
}

// eligibilityStage: the hours criterion.
type eligibilityStage struct {
	HoursWorked decimal.Decimal
	MeetsHours  bool
}

// entrepreneurStage: KIA, self-employed and starter deductions, and the
// profit the FOR reservation is based on.
type entrepreneurStage struct {
	KIAAmount    decimal.Decimal
	SelfEmployed decimal.Decimal
	Starter      decimal.Decimal
	ProfitForFOR decimal.Decimal
}

// reservationStage: the FOR reservation and the floored profit before exemption.
type reservationStage struct {
	FORAmount             decimal.Decimal
	ProfitBeforeExemption decimal.Decimal
}

// exemptionStage: SME profit exemption and taxable profit.
type exemptionStage struct {
	ExemptionAmount decimal.Decimal
	TaxableProfit   decimal.Decimal
}

type taxStage struct {
	EstimatedTax decimal.Decimal
}

// stages holds every intermediate of one calculation.
type stages struct {
	Profit       profitStage
	Eligibility  eligibilityStage
	Entrepreneur entrepreneurStage
	Reservation  reservationStage
	Exemption    exemptionStage
	Tax          taxStage
}

func computeProfit(in domain.TaxReportInput) profitStage {
	revenueNet := in.RevenueGross.Sub(in.CreditNotesTotal)
	expensesTotal := in.Expenses.Total()
	return profitStage{
		RevenueGross:      in.RevenueGross,
		CreditNotesTotal:  in.CreditNotesTotal,
		RevenueNet:        revenueNet,
		Expenses:          in.Expenses,
		ExpensesTotal:     expensesTotal,
		DepreciationTotal: in.DepreciationTotal,
		GrossProfit:       revenueNet.Sub(expensesTotal).Sub(in.DepreciationTotal),
	}
}

func computeEligibility(dc *DeductionCalculator, in domain.TaxReportInput) eligibilityStage {
	return eligibilityStage{
		HoursWorked: in.HoursWorked,
		MeetsHours:  dc.MeetsHoursCriterion(in.HoursWorked),
	}
}

func computeEntrepreneur(dc *DeductionCalculator, in domain.TaxReportInput, p profitStage, e eligibilityStage) entrepreneurStage {
	kia := dc.KIA(in.KIAInvestments)
	selfEmployed := dc.SelfEmployedDeduction(e.MeetsHours)
	starter := dc.StarterDeduction(e.MeetsHours, in.IsStarter, in.StarterYearsUsed)
	return entrepreneurStage{
		KIAAmount:    kia,
		SelfEmployed: selfEmployed,
		Starter:      starter,
		ProfitForFOR: p.GrossProfit.Sub(kia).Sub(selfEmployed).Sub(starter),
	}
}

func computeReservation(dc *DeductionCalculator, in domain.TaxReportInput, en entrepreneurStage) reservationStage {
	forAmount := dc.FORReservation(en.ProfitForFOR, in.UseFORElection)
	return reservationStage{
		FORAmount:             forAmount,
		ProfitBeforeExemption: money.FloorZero(en.ProfitForFOR.Sub(forAmount)),
	}
}

func computeExemption(dc *DeductionCalculator, e eligibilityStage, r reservationStage) exemptionStage {
	exemption := decimal.Zero
	if e.MeetsHours {
		exemption = dc.SMEProfitExemption(r.ProfitBeforeExemption)
	}
	return exemptionStage{
		ExemptionAmount: exemption,
		TaxableProfit:   money.FloorZero(r.ProfitBeforeExemption.Sub(exemption)),
	}
}

func computeTax(dc *DeductionCalculator, x exemptionStage) taxStage {
	return taxStage{EstimatedTax: dc.EstimatedProgressiveTax(x.TaxableProfit)}
}

func runStages(dc *DeductionCalculator, in domain.TaxReportInput) stages {
	profit := computeProfit(in)
	eligibility := computeEligibility(dc, in)
	entrepreneur := computeEntrepreneur(dc, in, profit, eligibility)
	reservation := computeReservation(dc, in, entrepreneur)
	exemption := computeExemption(dc, eligibility, reservation)
	tax := computeTax(dc, exemption)
	return stages{
		Profit:       profit,
		Eligibility:  eligibility,
		Entrepreneur: entrepreneur,
		Reservation:  reservation,
		Exemption:    exemption,
		Tax:          tax,
	}
}

// assembleResult rounds every monetary line to cents.
func assembleResult(year int, s stages) *domain.TaxReportResult {
	c := money.Cents
	return &domain.TaxReportResult{
		FiscalYear:            year,
		RevenueGross:          c(s.Profit.RevenueGross),
		CreditNotesTotal:      c(s.Profit.CreditNotesTotal),
		RevenueNet:            c(s.Profit.RevenueNet),
		Expenses:              s.Profit.Expenses.Map(c),
		ExpensesTotal:         c(s.Profit.ExpensesTotal),
		DepreciationTotal:     c(s.Profit.DepreciationTotal),
		GrossProfit:           c(s.Profit.GrossProfit),
		KIAAmount:             c(s.Entrepreneur.KIAAmount),
		SelfEmployedDeduction: c(s.Entrepreneur.SelfEmployed),
		StarterDeduction:      c(s.Entrepreneur.Starter),
		FORReservation:        c(s.Reservation.FORAmount),
		ProfitBeforeExemption: c(s.Reservation.ProfitBeforeExemption),
		SMEProfitExemption:    c(s.Exemption.ExemptionAmount),
		TaxableProfit:         c(s.Exemption.TaxableProfit),
		EstimatedTaxBox1:      c(s.Tax.EstimatedTax),
		HoursWorked:           s.Eligibility.HoursWorked,
		MeetsHoursCriterion:   s.Eligibility.MeetsHours,
	}
}
