package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"vantagelite/internal/domain"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

func NewYahooPriceRepository() PriceVendorRepository {
	return yahooPriceRepositoryHandler{}
}

type yahooPriceRepositoryHandler struct {
}

func (h yahooPriceRepositoryHandler) GetDailyCloses(ctx context.Context, symbol string, days int) (domain.PriceSeries, error) {
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -vendorLookbackDays(days))
	params := &chart.Params{
		Params: finance.Params{
			Context: &ctx,
		},
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	series := domain.PriceSeries{}
	for iter.Next() {
		bar := iter.Bar()
		series = append(series, domain.PricePoint{
			Date:  domain.NewDate(time.Unix(int64(bar.Timestamp), 0).UTC()),
			Close: bar.AdjClose.InexactFloat64(),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get chart for %s: %w", symbol, err)
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date.Time)
	})

	if len(series) > days {
		series = series[len(series)-days:]
	}

	return series, nil
}
