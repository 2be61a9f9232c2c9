package output

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	money "github.com/zzpboek/zzptax/pkg/decimal"
)

// FormatCurrency formats a decimal as euros in Dutch notation, e.g. "€ 1.234,56".
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a fraction as a percentage with 2 decimals: 0.1331 is "13,31%".
func FormatPercentage(fraction decimal.Decimal) string {
	return strings.Replace(fraction.Mul(decimal.NewFromInt(100)).StringFixed(2), ".", ",", 1) + "%"
}

// FormatHours renders an hours figure without trailing zeros.
func FormatHours(h decimal.Decimal) string {
	return strings.Replace(h.String(), ".", ",", 1)
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
