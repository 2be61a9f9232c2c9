package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/zzpboek/zzptax/pkg/dateutil"
)

// DepreciationMethod is fixed for the lifetime of an asset.
type DepreciationMethod string

const (
	MethodLinear     DepreciationMethod = "linear"
	MethodDegressive DepreciationMethod = "degressive"
)

// ParseDepreciationMethod accepts the method name case-insensitively.
func ParseDepreciationMethod(s string) (DepreciationMethod, error) {
	switch DepreciationMethod(strings.ToLower(strings.TrimSpace(s))) {
	case MethodLinear, "":
		return MethodLinear, nil
	case MethodDegressive:
		return MethodDegressive, nil
	default:
		return "", fmt.Errorf("unknown depreciation method %q (want linear or degressive)", s)
	}
}

// Asset is a business asset as supplied by the asset register.
type Asset struct {
	Name            string             `yaml:"name" json:"name" validate:"required"`
	PurchasePrice   decimal.Decimal    `yaml:"purchase_price" json:"purchase_price" validate:"gte=0"`
	ResidualValue   decimal.Decimal    `yaml:"residual_value" json:"residual_value" validate:"gte=0"`
	UsefulLifeYears int                `yaml:"useful_life_years" json:"useful_life_years" validate:"gt=0"`
	PurchaseDate    time.Time          `yaml:"purchase_date" json:"purchase_date"`
	Method          DepreciationMethod `yaml:"method" json:"method"`
	IsActive        bool               `yaml:"active" json:"active"`
	DisposalDate    *time.Time         `yaml:"disposal_date,omitempty" json:"disposal_date,omitempty"`
	KIAApplied      bool               `yaml:"kia_applied" json:"kia_applied"`
}

// UnmarshalYAML reads dates as YYYY-MM-DD and defaults active to true.
func (a *Asset) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		Name            string          `yaml:"name"`
		PurchasePrice   decimal.Decimal `yaml:"purchase_price"`
		ResidualValue   decimal.Decimal `yaml:"residual_value"`
		UsefulLifeYears int             `yaml:"useful_life_years"`
		PurchaseDate    string          `yaml:"purchase_date"`
		Method          string          `yaml:"method"`
		IsActive        *bool           `yaml:"active"`
		DisposalDate    string          `yaml:"disposal_date"`
		KIAApplied      bool            `yaml:"kia_applied"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	purchased, err := dateutil.ParseDate(aux.PurchaseDate)
	if err != nil {
		return fmt.Errorf("asset %q purchase_date: %w", aux.Name, err)
	}
	disposed, err := dateutil.ParseOptionalDate(aux.DisposalDate)
	if err != nil {
		return fmt.Errorf("asset %q disposal_date: %w", aux.Name, err)
	}
	method, err := ParseDepreciationMethod(aux.Method)
	if err != nil {
		return fmt.Errorf("asset %q: %w", aux.Name, err)
	}

	a.Name = aux.Name
	a.PurchasePrice = aux.PurchasePrice
	a.ResidualValue = aux.ResidualValue
	a.UsefulLifeYears = aux.UsefulLifeYears
	a.PurchaseDate = purchased
	a.Method = method
	a.IsActive = aux.IsActive == nil || *aux.IsActive
	a.DisposalDate = disposed
	a.KIAApplied = aux.KIAApplied
	return nil
}

// MarshalYAML writes the same shape UnmarshalYAML reads.
func (a Asset) MarshalYAML() (interface{}, error) {
	type Alias struct {
		Name            string          `yaml:"name"`
		PurchasePrice   decimal.Decimal `yaml:"purchase_price"`
		ResidualValue   decimal.Decimal `yaml:"residual_value"`
		UsefulLifeYears int             `yaml:"useful_life_years"`
		PurchaseDate    string          `yaml:"purchase_date"`
		Method          string          `yaml:"method,omitempty"`
		IsActive        bool            `yaml:"active"`
		DisposalDate    string          `yaml:"disposal_date,omitempty"`
		KIAApplied      bool            `yaml:"kia_applied,omitempty"`
	}
	return Alias{
		Name:            a.Name,
		PurchasePrice:   a.PurchasePrice,
		ResidualValue:   a.ResidualValue,
		UsefulLifeYears: a.UsefulLifeYears,
		PurchaseDate:    a.PurchaseDate.Format(dateutil.DateLayout),
		Method:          string(a.Method),
		IsActive:        a.IsActive,
		DisposalDate:    dateutil.FormatOptionalDate(a.DisposalDate),
		KIAApplied:      a.KIAApplied,
	}, nil
}

// DepreciationEntry is one fiscal year of an asset's schedule.
type DepreciationEntry struct {
	Year           int             `json:"year" yaml:"year"`
	Amount         decimal.Decimal `json:"amount" yaml:"amount"`
	BookValueStart decimal.Decimal `json:"book_value_start" yaml:"book_value_start"`
	BookValueEnd   decimal.Decimal `json:"book_value_end" yaml:"book_value_end"`
}

// AssetSchedule pairs an asset with its generated schedule for reporting.
type AssetSchedule struct {
	Asset   string              `json:"asset" yaml:"asset"`
	Method  DepreciationMethod  `json:"method" yaml:"method"`
	Entries []DepreciationEntry `json:"entries" yaml:"entries"`
}
