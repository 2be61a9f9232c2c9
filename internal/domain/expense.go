package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ExpenseCategory is the bookkeeping category of a single expense.
type ExpenseCategory string

const (
	CategoryVehicle         ExpenseCategory = "vehicle"
	CategoryFuel            ExpenseCategory = "fuel"
	CategoryTravel          ExpenseCategory = "travel"
	CategoryPublicTransport ExpenseCategory = "public_transport"
	CategoryRent            ExpenseCategory = "rent"
	CategoryUtilities       ExpenseCategory = "utilities"
	CategoryInsurance       ExpenseCategory = "insurance"
	CategoryAccounting      ExpenseCategory = "accounting"
	CategoryBankFees        ExpenseCategory = "bank_fees"
	CategoryMarketing       ExpenseCategory = "marketing"
	CategoryTraining        ExpenseCategory = "training"
	CategorySubscriptions   ExpenseCategory = "subscriptions"
	CategoryOfficeSupplies  ExpenseCategory = "office_supplies"
	CategorySoftware        ExpenseCategory = "software"
	CategoryHardware        ExpenseCategory = "hardware"
	CategoryTelecom         ExpenseCategory = "telecom"
	CategorySubcontracting  ExpenseCategory = "subcontracting"
	CategoryMeals           ExpenseCategory = "meals"
	CategoryGifts           ExpenseCategory = "gifts"
	CategoryEvents          ExpenseCategory = "events"
	CategoryOther           ExpenseCategory = "other"
)

// AllExpenseCategories lists every known category. Bucket must handle each one.
var AllExpenseCategories = []ExpenseCategory{
	CategoryVehicle, CategoryFuel, CategoryTravel, CategoryPublicTransport,
	CategoryRent, CategoryUtilities,
	CategoryInsurance, CategoryAccounting, CategoryBankFees, CategoryMarketing, CategoryTraining, CategorySubscriptions,
	CategoryOfficeSupplies, CategorySoftware, CategoryHardware, CategoryTelecom,
	CategorySubcontracting,
	CategoryMeals, CategoryGifts, CategoryEvents,
	CategoryOther,
}

// ParseExpenseCategory normalizes s. ok is false for names outside the closed set,
// in which case CategoryOther is returned.
func ParseExpenseCategory(s string) (ExpenseCategory, bool) {
	c := ExpenseCategory(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllExpenseCategories {
		if c == known {
			return c, true
		}
	}
	return CategoryOther, false
}

// IsKnown reports whether c belongs to the closed category set.
func (c ExpenseCategory) IsKnown() bool {
	_, ok := ParseExpenseCategory(string(c))
	return ok
}

// Bucket maps a category onto its tax-report bucket. Matching is
// case-insensitive; anything outside the closed set is other.
func (c ExpenseCategory) Bucket() ExpenseBucket {
	c, _ = ParseExpenseCategory(string(c))
	switch c {
	case CategoryVehicle, CategoryFuel, CategoryTravel, CategoryPublicTransport:
		return BucketTransport
	case CategoryRent, CategoryUtilities:
		return BucketHousing
	case CategoryInsurance, CategoryAccounting, CategoryBankFees, CategoryMarketing, CategoryTraining, CategorySubscriptions:
		return BucketGeneral
	case CategoryOfficeSupplies, CategorySoftware, CategoryHardware, CategoryTelecom:
		return BucketOffice
	case CategorySubcontracting:
		return BucketOutsourced
	case CategoryMeals, CategoryGifts, CategoryEvents:
		return BucketRepresentation
	default:
		return BucketOther
	}
}

// Expense is one categorized cost line, net of VAT.
type Expense struct {
	Category    ExpenseCategory `yaml:"category" json:"category" validate:"required"`
	NetAmount   decimal.Decimal `yaml:"net_amount" json:"net_amount"`
	Description string          `yaml:"description,omitempty" json:"description,omitempty"`
}

// ExpenseBucket is one of the seven fixed expense lines of the tax report.
type ExpenseBucket string

const (
	BucketTransport      ExpenseBucket = "transport"
	BucketHousing        ExpenseBucket = "housing"
	BucketGeneral        ExpenseBucket = "general"
	BucketOffice         ExpenseBucket = "office"
	BucketOutsourced     ExpenseBucket = "outsourced"
	BucketRepresentation ExpenseBucket = "representation"
	BucketOther          ExpenseBucket = "other"
)

// AllExpenseBuckets is the fixed report order.
var AllExpenseBuckets = []ExpenseBucket{
	BucketTransport, BucketHousing, BucketGeneral, BucketOffice,
	BucketOutsourced, BucketRepresentation, BucketOther,
}

// BucketAmount is a single bucket line.
type BucketAmount struct {
	Bucket ExpenseBucket
	Amount decimal.Decimal
}

// ExpenseBreakdown holds one amount per bucket; a zero value is a valid, empty breakdown.
type ExpenseBreakdown struct {
	Transport      decimal.Decimal `yaml:"transport" json:"transport"`
	Housing        decimal.Decimal `yaml:"housing" json:"housing"`
	General        decimal.Decimal `yaml:"general" json:"general"`
	Office         decimal.Decimal `yaml:"office" json:"office"`
	Outsourced     decimal.Decimal `yaml:"outsourced" json:"outsourced"`
	Representation decimal.Decimal `yaml:"representation" json:"representation"`
	Other          decimal.Decimal `yaml:"other" json:"other"`
}

func (e *ExpenseBreakdown) field(b ExpenseBucket) *decimal.Decimal {
	switch b {
	case BucketTransport:
		return &e.Transport
	case BucketHousing:
		return &e.Housing
	case BucketGeneral:
		return &e.General
	case BucketOffice:
		return &e.Office
	case BucketOutsourced:
		return &e.Outsourced
	case BucketRepresentation:
		return &e.Representation
	default:
		return &e.Other
	}
}

// Amount returns the amount booked on bucket b.
func (e ExpenseBreakdown) Amount(b ExpenseBucket) decimal.Decimal {
	return *e.field(b)
}

// Add returns a copy with amount added to bucket b.
func (e ExpenseBreakdown) Add(b ExpenseBucket, amount decimal.Decimal) ExpenseBreakdown {
	f := e.field(b)
	*f = f.Add(amount)
	return e
}

// Map returns a copy with fn applied to every bucket.
func (e ExpenseBreakdown) Map(fn func(decimal.Decimal) decimal.Decimal) ExpenseBreakdown {
	for _, b := range AllExpenseBuckets {
		f := e.field(b)
		*f = fn(*f)
	}
	return e
}

// Total sums all seven buckets.
func (e ExpenseBreakdown) Total() decimal.Decimal {
	total := decimal.Zero
	for _, b := range AllExpenseBuckets {
		total = total.Add(e.Amount(b))
	}
	return total
}

// Entries lists the buckets in report order.
func (e ExpenseBreakdown) Entries() []BucketAmount {
	out := make([]BucketAmount, 0, len(AllExpenseBuckets))
	for _, b := range AllExpenseBuckets {
		out = append(out, BucketAmount{Bucket: b, Amount: e.Amount(b)})
	}
	return out
}
