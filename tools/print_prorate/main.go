package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zzpboek/zzptax/internal/calculation"
	"github.com/zzpboek/zzptax/internal/domain"
	"github.com/zzpboek/zzptax/pkg/dateutil"
)

// Prints the first-year depreciation of one asset for every purchase month,
// to check proration against a hand calculation.
func main() {
	price := flag.String("price", "12000", "purchase price")
	residual := flag.String("residual", "2000", "residual value")
	life := flag.Int("life", 5, "useful life in years")
	method := flag.String("method", "linear", "linear or degressive")
	year := flag.Int("year", 2024, "purchase year")
	flag.Parse()

	m, err := domain.ParseDepreciationMethod(*method)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%-10s %6s %14s %14s %8s\n", "purchased", "months", "first year", "book value", "years")
	for month := time.January; month <= time.December; month++ {
		a := domain.Asset{
			Name:            "probe",
			PurchasePrice:   decimal.RequireFromString(*price),
			ResidualValue:   decimal.RequireFromString(*residual),
			UsefulLifeYears: *life,
			PurchaseDate:    time.Date(*year, month, 1, 0, 0, 0, 0, time.UTC),
			Method:          m,
			IsActive:        true,
		}
		if err := calculation.ValidateAsset(a); err != nil {
			log.Fatal(err)
		}
		schedule := calculation.GenerateSchedule(a)
		first := schedule[0]
		fmt.Printf("%-10s %6d %14s %14s %8d\n",
			a.PurchaseDate.Format(dateutil.DateLayout),
			dateutil.MonthsRemainingInYear(a.PurchaseDate),
			first.Amount.StringFixed(2),
			first.BookValueEnd.StringFixed(2),
			len(schedule))
	}
}
