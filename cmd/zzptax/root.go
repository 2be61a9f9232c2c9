package main

import (
	"github.com/spf13/cobra"

	"github.com/zzpboek/zzptax/internal/calculation"
	"github.com/zzpboek/zzptax/internal/config"
	"github.com/zzpboek/zzptax/internal/domain"
	"github.com/zzpboek/zzptax/internal/logger"
	"github.com/zzpboek/zzptax/internal/rates"
)

var version = "0.1.0"

// app carries what every subcommand needs.
type app struct {
	cfg      *config.Config
	ratesDir string
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	a := &app{cfg: cfg}

	root := &cobra.Command{
		Use:   "zzptax",
		Short: "Annual income tax estimate for Dutch freelancers",
		Long: `zzptax estimates the box 1 income tax of a Dutch sole proprietor (ZZP'er)
for one fiscal year: net revenue, bucketed expenses, asset depreciation,
entrepreneur deductions, the FOR reservation, the SME profit exemption and
the progressive tax on the result.

Inputs are YAML files describing one fiscal year. Rate tables for the
supported years are built in; a directory of rates_<year>.yaml files can
add or replace years.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&a.ratesDir, "rates-dir", cfg.RatesDir, "Directory with rates_<year>.yaml files (env ZZPTAX_RATES_DIR)")

	root.AddCommand(
		newReportCmd(a),
		newScheduleCmd(a),
		newRatesCmd(a),
		newExampleCmd(a),
	)
	return root
}

func (a *app) registry() (*rates.Registry, error) {
	return rates.Load(a.ratesDir)
}

func (a *app) loadFinancials(path string) (*domain.YearFinancials, error) {
	return config.NewInputParser().LoadFromFile(path)
}

func (a *app) engine(year int) (*calculation.TaxReportEngine, error) {
	reg, err := a.registry()
	if err != nil {
		return nil, err
	}
	engine := calculation.NewTaxReportEngine(reg)
	engine.SetLogger(logger.NewCalculationLogger(logger.WithYear("engine", year)))
	return engine, nil
}

func (a *app) defaultFormat() string {
	if a.cfg.DefaultFormat == "" {
		return "console"
	}
	return a.cfg.DefaultFormat
}
