package output

import (
	"github.com/shopspring/decimal"

	"github.com/zzpboek/zzptax/internal/domain"
)

// lineItem is one monetary line of the report, shared by the text, CSV and
// HTML renderings so they always agree on order and labels.
type lineItem struct {
	Key     string
	Label   string
	Amount  decimal.Decimal
	Section string
	Total   bool
}

var bucketLabels = map[domain.ExpenseBucket]string{
	domain.BucketTransport:      "Transport",
	domain.BucketHousing:        "Housing",
	domain.BucketGeneral:        "General",
	domain.BucketOffice:         "Office",
	domain.BucketOutsourced:     "Outsourced work",
	domain.BucketRepresentation: "Representation",
	domain.BucketOther:          "Other",
}

const (
	sectionRevenue    = "REVENUE"
	sectionExpenses   = "EXPENSES"
	sectionProfit     = "PROFIT"
	sectionDeductions = "ENTREPRENEUR DEDUCTIONS"
	sectionTax        = "TAX"
)

func reportLines(r *domain.TaxReportResult) []lineItem {
	lines := []lineItem{
		{Key: "revenue_gross", Label: "Gross revenue", Amount: r.RevenueGross, Section: sectionRevenue},
		{Key: "credit_notes_total", Label: "Credit notes", Amount: r.CreditNotesTotal, Section: sectionRevenue},
		{Key: "revenue_net", Label: "Net revenue", Amount: r.RevenueNet, Section: sectionRevenue, Total: true},
	}
	for _, e := range r.Expenses.Entries() {
		lines = append(lines, lineItem{
			Key:     "expenses_" + string(e.Bucket),
			Label:   bucketLabels[e.Bucket],
			Amount:  e.Amount,
			Section: sectionExpenses,
		})
	}
	return append(lines,
		lineItem{Key: "expenses_total", Label: "Total expenses", Amount: r.ExpensesTotal, Section: sectionExpenses, Total: true},
		lineItem{Key: "depreciation_total", Label: "Depreciation", Amount: r.DepreciationTotal, Section: sectionProfit},
		lineItem{Key: "gross_profit", Label: "Gross profit", Amount: r.GrossProfit, Section: sectionProfit, Total: true},
		lineItem{Key: "kia_amount", Label: "Small-scale investment deduction (KIA)", Amount: r.KIAAmount, Section: sectionDeductions},
		lineItem{Key: "self_employed_deduction", Label: "Self-employed deduction", Amount: r.SelfEmployedDeduction, Section: sectionDeductions},
		lineItem{Key: "starter_deduction", Label: "Starter deduction", Amount: r.StarterDeduction, Section: sectionDeductions},
		lineItem{Key: "for_reservation", Label: "Old-age reserve (FOR)", Amount: r.FORReservation, Section: sectionDeductions},
		lineItem{Key: "profit_before_exemption", Label: "Profit before SME exemption", Amount: r.ProfitBeforeExemption, Section: sectionDeductions, Total: true},
		lineItem{Key: "sme_profit_exemption", Label: "SME profit exemption", Amount: r.SMEProfitExemption, Section: sectionTax},
		lineItem{Key: "taxable_profit", Label: "Taxable profit", Amount: r.TaxableProfit, Section: sectionTax, Total: true},
		lineItem{Key: "estimated_tax_box1", Label: "Estimated income tax (box 1)", Amount: r.EstimatedTaxBox1, Section: sectionTax, Total: true},
	)
}
