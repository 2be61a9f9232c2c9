package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/zzpboek/zzptax/internal/domain"
)

const validInput = `fiscal_year: 2024
revenue_gross: 80000
credit_notes_total: "2000.00"
expenses:
  - category: Software
    net_amount: 1200.50
    description: licences
  - category: fuel
    net_amount: 300
  - category: yacht
    net_amount: 99.99
assets:
  - name: camera rig
    purchase_price: 12000
    residual_value: 2000
    useful_life_years: 5
    purchase_date: "2024-07-01"
  - name: old car
    purchase_price: 20000
    residual_value: 0
    useful_life_years: 4
    purchase_date: "2021-01-01"
    method: degressive
    active: false
    disposal_date: "2024-06-30"
    kia_applied: true
hours:
  tracked: 1180
  override: 1300
elections:
  is_starter: true
  starter_years_used: 1
  use_for: true
`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	parser := NewInputParser()
	f, err := parser.LoadFromFile(writeInput(t, validInput))
	require.NoError(t, err)

	assert.Equal(t, 2024, f.FiscalYear)
	assert.True(t, f.RevenueGross.Equal(decimal.NewFromInt(80000)))
	assert.True(t, f.CreditNotesTotal.Equal(decimal.NewFromInt(2000)))

	require.Len(t, f.Expenses, 3)
	assert.Equal(t, domain.CategorySoftware, f.Expenses[0].Category)
	assert.Equal(t, "licences", f.Expenses[0].Description)
	assert.Equal(t, domain.ExpenseCategory("yacht"), f.Expenses[2].Category)
	assert.Equal(t, domain.BucketOther, f.Expenses[2].Category.Bucket())

	require.Len(t, f.Assets, 2)
	rig := f.Assets[0]
	assert.Equal(t, domain.MethodLinear, rig.Method)
	assert.True(t, rig.IsActive)
	assert.Nil(t, rig.DisposalDate)

	car := f.Assets[1]
	assert.Equal(t, domain.MethodDegressive, car.Method)
	assert.False(t, car.IsActive)
	require.NotNil(t, car.DisposalDate)
	assert.Equal(t, 2024, car.DisposalDate.Year())
	assert.True(t, car.KIAApplied)

	assert.True(t, f.Hours.Effective().Equal(decimal.NewFromInt(1300)))
	assert.True(t, f.Elections.UseFOR)
	assert.Equal(t, 1, f.Elections.StarterYearsUsed)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	f, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, f)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestParse_InvalidYAML(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.Parse([]byte("fiscal_year: [2024"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParse_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "missing fiscal year",
			input:   "revenue_gross: 100\n",
			wantErr: "fiscal_year is required",
		},
		{
			name:    "fiscal year out of range",
			input:   "fiscal_year: 1999\n",
			wantErr: "fiscal_year must satisfy gte=2000",
		},
		{
			name:    "negative revenue",
			input:   "fiscal_year: 2024\nrevenue_gross: -1\n",
			wantErr: "revenue_gross must satisfy gte=0",
		},
		{
			name:    "negative hours override",
			input:   "fiscal_year: 2024\nhours:\n  override: -5\n",
			wantErr: "hours.override must satisfy gte=0",
		},
		{
			name:    "expense without category",
			input:   "fiscal_year: 2024\nexpenses:\n  - net_amount: 10\n",
			wantErr: "expenses[0].category is required",
		},
		{
			name: "asset without useful life",
			input: "fiscal_year: 2024\nassets:\n  - name: desk\n    purchase_price: 500\n" +
				"    purchase_date: \"2024-01-01\"\n",
			wantErr: "assets[0].useful_life_years must satisfy gt=0",
		},
		{
			name: "residual above price",
			input: "fiscal_year: 2024\nassets:\n  - name: desk\n    purchase_price: 500\n" +
				"    residual_value: 600\n    useful_life_years: 5\n    purchase_date: \"2024-01-01\"\n",
			wantErr: `invalid asset "desk"`,
		},
		{
			name: "asset from a later year",
			input: "fiscal_year: 2024\nassets:\n  - name: desk\n    purchase_price: 500\n" +
				"    useful_life_years: 5\n    purchase_date: \"2025-01-01\"\n",
			wantErr: "purchased after fiscal year 2024",
		},
		{
			name: "duplicate asset names",
			input: "fiscal_year: 2024\nassets:\n" +
				"  - {name: desk, purchase_price: 500, useful_life_years: 5, purchase_date: \"2024-01-01\"}\n" +
				"  - {name: desk, purchase_price: 700, useful_life_years: 5, purchase_date: \"2024-02-01\"}\n",
			wantErr: `duplicate asset name "desk"`,
		},
		{
			name: "bad purchase date",
			input: "fiscal_year: 2024\nassets:\n  - name: desk\n    purchase_price: 500\n" +
				"    useful_life_years: 5\n    purchase_date: \"01-02-2024\"\n",
			wantErr: "purchase_date",
		},
		{
			name: "unknown method",
			input: "fiscal_year: 2024\nassets:\n  - name: desk\n    purchase_price: 500\n" +
				"    useful_life_years: 5\n    purchase_date: \"2024-01-01\"\n    method: sum_of_years\n",
			wantErr: "unknown depreciation method",
		},
		{
			name:    "starter years without starter",
			input:   "fiscal_year: 2024\nelections:\n  starter_years_used: 2\n",
			wantErr: "is_starter is false",
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse_InvalidAssetIsTyped(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.Parse([]byte("fiscal_year: 2024\nassets:\n  - name: desk\n    purchase_price: 500\n" +
		"    residual_value: 600\n    useful_life_years: 5\n    purchase_date: \"2024-01-01\"\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidAsset)
}

func TestCreateExampleFinancials_RoundTrips(t *testing.T) {
	parser := NewInputParser()
	example := parser.CreateExampleFinancials(2024)
	require.NoError(t, parser.ValidateFinancials(example))

	data, err := yaml.Marshal(example)
	require.NoError(t, err)

	parsed, err := parser.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, example.FiscalYear, parsed.FiscalYear)
	require.Len(t, parsed.Assets, len(example.Assets))
	for i := range example.Assets {
		assert.Equal(t, example.Assets[i].Name, parsed.Assets[i].Name)
		assert.True(t, example.Assets[i].PurchaseDate.Equal(parsed.Assets[i].PurchaseDate))
		assert.True(t, example.Assets[i].PurchasePrice.Equal(parsed.Assets[i].PurchasePrice))
		assert.Equal(t, example.Assets[i].Method, parsed.Assets[i].Method)
	}
	assert.Len(t, parsed.Expenses, len(example.Expenses))
}
