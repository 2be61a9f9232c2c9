package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/zzpboek/zzptax/internal/calculation"
	"github.com/zzpboek/zzptax/internal/domain"
)

// InputParser handles parsing of fiscal-year input files
type InputParser struct {
	validate *validator.Validate
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	v := validator.New()
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &InputParser{validate: v}
}

// decimalValue lets numeric validation tags apply to decimal fields.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// LoadFromFile loads fiscal-year financials from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.YearFinancials, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	f, err := ip.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return f, nil
}

// Parse decodes and validates YAML input. Known expense categories are
// normalized; unknown ones are kept verbatim and end up in the other bucket.
func (ip *InputParser) Parse(data []byte) (*domain.YearFinancials, error) {
	var f domain.YearFinancials
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for i := range f.Expenses {
		if c, ok := domain.ParseExpenseCategory(string(f.Expenses[i].Category)); ok {
			f.Expenses[i].Category = c
		}
	}

	if err := ip.ValidateFinancials(&f); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}
	return &f, nil
}

// ValidateFinancials runs the struct tag rules and then the checks that span
// several fields.
func (ip *InputParser) ValidateFinancials(f *domain.YearFinancials) error {
	if err := ip.validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return formatValidationErrors(verrs)
		}
		return err
	}

	seen := make(map[string]bool, len(f.Assets))
	for _, a := range f.Assets {
		if seen[a.Name] {
			return fmt.Errorf("duplicate asset name %q", a.Name)
		}
		seen[a.Name] = true

		if err := calculation.ValidateAsset(a); err != nil {
			return err
		}
		if a.PurchaseDate.Year() > f.FiscalYear {
			return fmt.Errorf("asset %q purchased after fiscal year %d", a.Name, f.FiscalYear)
		}
	}

	if f.Elections.StarterYearsUsed > 0 && !f.Elections.IsStarter {
		return fmt.Errorf("starter_years_used is set but is_starter is false")
	}
	return nil
}

func formatValidationErrors(verrs validator.ValidationErrors) error {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "YearFinancials.")
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s must satisfy %s=%s", field, fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s is %s", field, fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

// CreateExampleFinancials returns a complete example input for year.
func (ip *InputParser) CreateExampleFinancials(year int) *domain.YearFinancials {
	jan := time.Date(year, time.January, 15, 0, 0, 0, 0, time.UTC)
	jul := time.Date(year, time.July, 1, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(year-2, time.March, 1, 0, 0, 0, 0, time.UTC)

	return &domain.YearFinancials{
		FiscalYear:       year,
		RevenueGross:     decimal.NewFromInt(72500),
		CreditNotesTotal: decimal.NewFromInt(1250),
		Expenses: []domain.Expense{
			{Category: domain.CategorySoftware, NetAmount: decimal.RequireFromString("1188.00"), Description: "IDE and cloud subscriptions"},
			{Category: domain.CategoryTelecom, NetAmount: decimal.RequireFromString("420.00"), Description: "Mobile phone"},
			{Category: domain.CategoryTravel, NetAmount: decimal.RequireFromString("865.40"), Description: "Client visits"},
			{Category: domain.CategoryAccounting, NetAmount: decimal.RequireFromString("950.00")},
			{Category: domain.CategoryMeals, NetAmount: decimal.RequireFromString("212.75")},
		},
		Assets: []domain.Asset{
			{
				Name:            "laptop",
				PurchasePrice:   decimal.NewFromInt(3200),
				ResidualValue:   decimal.NewFromInt(200),
				UsefulLifeYears: 3,
				PurchaseDate:    jan,
				Method:          domain.MethodLinear,
				IsActive:        true,
			},
			{
				Name:            "camera rig",
				PurchasePrice:   decimal.NewFromInt(12000),
				ResidualValue:   decimal.NewFromInt(2000),
				UsefulLifeYears: 5,
				PurchaseDate:    jul,
				Method:          domain.MethodLinear,
				IsActive:        true,
			},
			{
				Name:            "van",
				PurchasePrice:   decimal.NewFromInt(28000),
				ResidualValue:   decimal.NewFromInt(4000),
				UsefulLifeYears: 5,
				PurchaseDate:    earlier,
				Method:          domain.MethodDegressive,
				IsActive:        true,
				KIAApplied:      true,
			},
		},
		Hours:     domain.Hours{Tracked: decimal.NewFromInt(1410)},
		Elections: domain.FiscalElections{IsStarter: true, StarterYearsUsed: 1, UseFOR: true},
	}
}
