// Package rates holds the per-fiscal-year constant tables used by the tax engine.
package rates

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/zzpboek/zzptax/internal/domain"
)

//go:embed tables/*.yaml
var embeddedTables embed.FS

// Registry maps fiscal years to their rate tables. It is immutable once built
// and safe for concurrent use.
type Registry struct {
	tables map[int]domain.RateTable
}

// NewRegistry validates and registers the given tables. Duplicate years are rejected.
func NewRegistry(tables ...domain.RateTable) (*Registry, error) {
	r := &Registry{tables: make(map[int]domain.RateTable, len(tables))}
	for _, t := range tables {
		if err := Validate(t); err != nil {
			return nil, fmt.Errorf("rate table %d: %w", t.FiscalYear, err)
		}
		if _, exists := r.tables[t.FiscalYear]; exists {
			return nil, fmt.Errorf("rate table %d registered twice", t.FiscalYear)
		}
		r.tables[t.FiscalYear] = t.Clone()
	}
	return r, nil
}

// Default returns a registry with the built-in tables.
func Default() (*Registry, error) {
	entries, err := embeddedTables.ReadDir("tables")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded rate tables: %w", err)
	}
	var tables []domain.RateTable
	for _, e := range entries {
		data, err := embeddedTables.ReadFile("tables/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded table %s: %w", e.Name(), err)
		}
		t, err := ParseTable(data)
		if err != nil {
			return nil, fmt.Errorf("embedded table %s: %w", e.Name(), err)
		}
		tables = append(tables, t)
	}
	return NewRegistry(tables...)
}

// Load returns the built-in tables with any rates_<year>.yaml files in dir
// layered on top. An empty dir means built-ins only.
func Load(dir string) (*Registry, error) {
	base, err := Default()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return base, nil
	}
	overrides, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}
	return base.WithOverrides(overrides...)
}

// LoadDir parses every rates_*.yaml file in dir.
func LoadDir(dir string) ([]domain.RateTable, error) {
	files, err := filepath.Glob(filepath.Join(dir, "rates_*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list rate tables in %s: %w", dir, err)
	}
	sort.Strings(files)

	tables := make([]domain.RateTable, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", f, err)
		}
		t, err := ParseTable(data)
		if err != nil {
			return nil, fmt.Errorf("rate table %s: %w", f, err)
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// ParseTable decodes one YAML rate table. Unknown keys are rejected so that a
// misspelled constant cannot silently default to zero.
func ParseTable(data []byte) (domain.RateTable, error) {
	var t domain.RateTable
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		return domain.RateTable{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return t, nil
}

// WithOverrides returns a new registry where the given tables add or replace years.
func (r *Registry) WithOverrides(tables ...domain.RateTable) (*Registry, error) {
	merged := make(map[int]domain.RateTable, len(r.tables)+len(tables))
	for y, t := range r.tables {
		merged[y] = t
	}
	for _, t := range tables {
		if err := Validate(t); err != nil {
			return nil, fmt.Errorf("rate table %d: %w", t.FiscalYear, err)
		}
		merged[t.FiscalYear] = t.Clone()
	}
	return &Registry{tables: merged}, nil
}

// Lookup returns a copy of the table for year, or a *domain.ConfigurationError.
func (r *Registry) Lookup(year int) (domain.RateTable, error) {
	t, ok := r.tables[year]
	if !ok {
		return domain.RateTable{}, &domain.ConfigurationError{Year: year, Available: r.Years()}
	}
	return t.Clone(), nil
}

// Years lists the supported fiscal years in ascending order.
func (r *Registry) Years() []int {
	years := make([]int, 0, len(r.tables))
	for y := range r.tables {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
