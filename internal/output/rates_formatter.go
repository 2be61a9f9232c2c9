package output

import (
	"bytes"
	"fmt"

	"github.com/zzpboek/zzptax/internal/domain"
)

// FormatRateTable renders a rate table for the console.
func FormatRateTable(rt domain.RateTable) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "FISCAL YEAR %d\n", rt.FiscalYear)
	row := func(label, value string) { fmt.Fprintf(&buf, "  %-38s %s\n", label, value) }

	row("Hours criterion", FormatHours(rt.HoursCriterionMin))
	row("Self-employed deduction", FormatCurrency(rt.SelfEmployedDeduction))
	row("Starter deduction", fmt.Sprintf("%s (max %d years)", FormatCurrency(rt.StarterDeduction), rt.StarterMaxYears))
	row("SME profit exemption", FormatPercentage(rt.SMEExemptionPercentage))
	row("FOR reservation", fmt.Sprintf("%s, max %s", FormatPercentage(rt.FORMaxPercentage), FormatCurrency(rt.FORMaxAmount)))

	k := rt.KIA
	row("KIA investment range", fmt.Sprintf("%s to %s", FormatCurrency(k.MinInvestment), FormatCurrency(k.MaxInvestment)))
	row("KIA up to "+FormatCurrency(k.Tier1Max), FormatPercentage(k.Tier1Percentage))
	row("KIA up to "+FormatCurrency(k.Tier2Max), FormatCurrency(k.Tier2FixedAmount))
	row("KIA above, phase-out", FormatPercentage(k.Tier3Percentage))

	for i, b := range rt.TaxBrackets {
		label := fmt.Sprintf("Bracket %d", i+1)
		if b.UpTo != nil {
			label += " up to " + FormatCurrency(*b.UpTo)
		} else {
			label += " above"
		}
		row(label, FormatPercentage(b.Rate))
	}
	return buf.Bytes()
}
