package repository

import (
	"context"

	"vantagelite/internal/domain"
)

// PriceVendorRepository fetches trailing daily closes for a symbol
// from an external market-data provider. Implementations return bars
// ascending by date. Fewer bars than requested is valid (young
// listings, provider limits); distinguishing "no data at all" from a
// short series is the caller's job.
type PriceVendorRepository interface {
	GetDailyCloses(ctx context.Context, symbol string, days int) (domain.PriceSeries, error)
}

// vendors fetch by calendar range, so pad the lookback to keep
// weekends and holidays from starving the requested day count
func vendorLookbackDays(days int) int {
	return days*2 + 5
}
