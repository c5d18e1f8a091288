package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vantagelite/internal/domain"
	"vantagelite/internal/util"
	"vantagelite/pkg/stooq"
)

func NewStooqPriceRepository(client *stooq.Client) PriceVendorRepository {
	return stooqPriceRepositoryHandler{
		Client: client,
	}
}

type stooqPriceRepositoryHandler struct {
	Client *stooq.Client
}

// stooq lists US equities under a ".us" suffix
func stooqSymbol(symbol string) string {
	s := strings.ToLower(symbol)
	if !strings.Contains(s, ".") {
		s += ".us"
	}
	return s
}

func (h stooqPriceRepositoryHandler) GetDailyCloses(ctx context.Context, symbol string, days int) (domain.PriceSeries, error) {
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -vendorLookbackDays(days))

	bars, err := h.Client.GetDailyHistory(ctx, stooqSymbol(symbol), start, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get stooq history for %s: %w", symbol, err)
	}

	series := domain.PriceSeries{}
	for _, bar := range bars {
		day, err := time.Parse("2006-01-02", bar.Date)
		if err != nil {
			return nil, fmt.Errorf("unparseable stooq date %q for %s: %w", bar.Date, symbol, err)
		}
		if !util.DateLte(day, now) {
			continue
		}
		series = append(series, domain.PricePoint{
			Date:  domain.NewDate(day),
			Close: bar.Close,
		})
	}

	if len(series) > days {
		series = series[len(series)-days:]
	}

	return series, nil
}
