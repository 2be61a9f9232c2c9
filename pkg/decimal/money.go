package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a euro amount with fixed financial precision.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds to cents, half away from zero.
func (m Money) Round() Money {
	return Money{Cents(m.Decimal)}
}

// RoundWhole rounds to whole euros, half away from zero.
func (m Money) RoundWhole() Money {
	return Money{Whole(m.Decimal)}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// Div divides by a decimal factor
func (m Money) Div(factor decimal.Decimal) Money {
	return Money{m.Decimal.Div(factor)}
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the plain two-decimal representation used in machine formats.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount the Dutch way: "€ 1.234,56", "-€ 12,00".
func (m Money) Format() string {
	s := m.Decimal.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	sign := ""
	if m.Decimal.Round(2).IsNegative() {
		sign = "-"
	}
	return sign + "€ " + b.String() + "," + frac
}

// Cents rounds d to two decimals, half away from zero.
func Cents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Whole rounds d to whole currency units, half away from zero.
func Whole(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// Min returns the smaller of two decimals.
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of two decimals.
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Clamp limits d to the closed range [lo, hi]. When hi < lo the result is lo.
func Clamp(d, lo, hi decimal.Decimal) decimal.Decimal {
	return Max(lo, Min(d, hi))
}

// FloorZero returns d, or zero when d is negative.
func FloorZero(d decimal.Decimal) decimal.Decimal {
	return Max(decimal.Zero, d)
}
