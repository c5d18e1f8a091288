package service

import (
	"time"

	"vantagelite/internal/domain"
	"vantagelite/internal/util"

	"github.com/shopspring/decimal"
)

// GenerateDummySeries builds the deterministic demo walk: a gentle
// upward drift with a small repeating wiggle, rounded to cents at
// every step. The closes depend only on days, never on the clock, so
// identical requests produce bit-identical series; end only positions
// the calendar dates, which run to it from days-1 before.
func GenerateDummySeries(days int, end time.Time) domain.PriceSeries {
	closes := dummyCloses(days)
	dates := util.TrailingDates(end, days)

	series := make(domain.PriceSeries, days)
	for i := range closes {
		series[i] = domain.PricePoint{
			Date:  domain.NewDate(dates[i]),
			Close: closes[i].InexactFloat64(),
		}
	}
	return series
}

func dummyCloses(days int) []decimal.Decimal {
	growth := decimal.NewFromFloat(1.0008)
	wiggleUnit := decimal.NewFromFloat(0.02)

	current := decimal.NewFromInt(100)
	out := make([]decimal.Decimal, 0, days)
	for i := 0; i < days; i++ {
		wiggle := decimal.NewFromInt(int64(i%5) - 2).Mul(wiggleUnit)
		current = current.Mul(growth).Add(wiggle).Round(2)
		out = append(out, current)
	}
	return out
}
