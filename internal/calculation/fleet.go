package calculation

import (
	"runtime"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/zzpboek/zzptax/internal/domain"
	"github.com/zzpboek/zzptax/pkg/dateutil"
	money "github.com/zzpboek/zzptax/pkg/decimal"
)

// parallelFleetSize is the asset count from which schedules are generated
// concurrently.
const parallelFleetSize = 64

// TotalDepreciationForYear sums the year's depreciation over active assets
// that were not disposed of before that year, rounded to cents.
func TotalDepreciationForYear(assets []domain.Asset, year int) decimal.Decimal {
	amounts := make([]decimal.Decimal, len(assets))

	if len(assets) < parallelFleetSize {
		for i, a := range assets {
			amounts[i] = depreciationContribution(a, year)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i := range assets {
			i := i
			g.Go(func() error {
				amounts[i] = depreciationContribution(assets[i], year)
				return nil
			})
		}
		_ = g.Wait() // workers never fail
	}

	total := decimal.Zero
	for _, amt := range amounts {
		total = total.Add(amt)
	}
	return money.Cents(total)
}

func depreciationContribution(a domain.Asset, year int) decimal.Decimal {
	if !a.IsActive || !dateutil.OnOrAfterYear(a.DisposalDate, year) {
		return decimal.Zero
	}
	entry, ok := DepreciationForYear(a, year)
	if !ok {
		return decimal.Zero
	}
	return entry.Amount
}

// TotalKIAInvestmentsForYear sums the purchase prices of assets bought in year
// for which the investment deduction has not already been claimed.
func TotalKIAInvestmentsForYear(assets []domain.Asset, year int) decimal.Decimal {
	total := decimal.Zero
	for _, a := range assets {
		if a.PurchaseDate.Year() == year && !a.KIAApplied {
			total = total.Add(a.PurchasePrice)
		}
	}
	return total
}

// FleetSchedules generates a schedule per asset, in input order.
func FleetSchedules(assets []domain.Asset) []domain.AssetSchedule {
	out := make([]domain.AssetSchedule, len(assets))
	for i, a := range assets {
		out[i] = domain.AssetSchedule{Asset: a.Name, Method: a.Method, Entries: GenerateSchedule(a)}
	}
	return out
}
