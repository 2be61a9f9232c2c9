package calculation

import (
	"github.com/zzpboek/zzptax/internal/domain"
)

// RateSource resolves the rate table for a fiscal year. An unknown year must
// yield a *domain.ConfigurationError.
type RateSource interface {
	Lookup(year int) (domain.RateTable, error)
}

// TaxReportEngine orchestrates the yearly tax estimate. It holds no mutable
// state and is safe for concurrent use.
type TaxReportEngine struct {
	Rates  RateSource
	Logger Logger
}

// ReportOptions control the report envelope produced by Report.
type ReportOptions struct {
	Status           domain.ReportStatus
	IncludeSchedules bool
}

// NewTaxReportEngine creates an engine backed by the given rate tables.
func NewTaxReportEngine(rates RateSource) *TaxReportEngine {
	return &TaxReportEngine{
		Rates:  rates,
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *TaxReportEngine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

func (e *TaxReportEngine) log() Logger {
	if e.Logger == nil {
		return NopLogger{}
	}
	return e.Logger
}

// Calculate produces the report for year from aggregated inputs. The only
// error is an unsupported fiscal year, returned as the rate source reported it.
func (e *TaxReportEngine) Calculate(year int, in domain.TaxReportInput) (*domain.TaxReportResult, error) {
	rt, err := e.Rates.Lookup(year)
	if err != nil {
		return nil, err
	}

	s := runStages(NewDeductionCalculator(rt), in)
	e.log().Debugf("fiscal year %d: gross profit %s, hours criterion met %t, deductions kia=%s self-employed=%s starter=%s for=%s, exemption %s, taxable %s, tax %s",
		year,
		s.Profit.GrossProfit.StringFixed(2),
		s.Eligibility.MeetsHours,
		s.Entrepreneur.KIAAmount.String(),
		s.Entrepreneur.SelfEmployed.String(),
		s.Entrepreneur.Starter.String(),
		s.Reservation.FORAmount.String(),
		s.Exemption.ExemptionAmount.String(),
		s.Exemption.TaxableProfit.StringFixed(2),
		s.Tax.EstimatedTax.String(),
	)
	return assembleResult(year, s), nil
}

// Report aggregates raw yearly financials and wraps the result in a report envelope.
func (e *TaxReportEngine) Report(f domain.YearFinancials, opts ReportOptions) (*domain.TaxReport, error) {
	for _, a := range f.Assets {
		if err := ValidateAsset(a); err != nil {
			e.log().Warnf("%v", err)
		}
	}
	for _, x := range f.Expenses {
		if !x.Category.IsKnown() {
			e.log().Warnf("unknown expense category %q booked as other", x.Category)
		}
	}

	result, err := e.Calculate(f.FiscalYear, AssembleInput(f))
	if err != nil {
		return nil, err
	}

	status := opts.Status
	if status == "" {
		status = domain.StatusDraft
	}
	report := &domain.TaxReport{
		FiscalYear: f.FiscalYear,
		Status:     status,
		Result:     result,
	}
	if opts.IncludeSchedules {
		report.Schedules = FleetSchedules(f.Assets)
	}
	e.log().Infof("generated %s report for fiscal year %d", status, f.FiscalYear)
	return report, nil
}
