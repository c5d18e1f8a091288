package repository

import (
	"context"
	"fmt"
	"time"

	"vantagelite/internal/domain"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
)

func NewAlpacaPriceRepository(apiKey, apiSecret, endpoint string) PriceVendorRepository {
	mdClient := marketdata.NewClient(marketdata.ClientOpts{
		APIKey:    apiKey,
		APISecret: apiSecret,
		BaseURL:   endpoint,
	})

	return &alpacaPriceRepositoryHandler{
		MdClient: mdClient,
	}
}

type alpacaPriceRepositoryHandler struct {
	MdClient *marketdata.Client
}

func (h alpacaPriceRepositoryHandler) GetDailyCloses(ctx context.Context, symbol string, days int) (domain.PriceSeries, error) {
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -vendorLookbackDays(days))

	bars, err := h.MdClient.GetBars(symbol, marketdata.GetBarsRequest{
		TimeFrame: marketdata.OneDay,
		Start:     start,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get bars for %s: %w", symbol, err)
	}

	series := domain.PriceSeries{}
	for _, bar := range bars {
		if bar.Timestamp.After(now) {
			continue
		}
		series = append(series, domain.PricePoint{
			Date:  domain.NewDate(bar.Timestamp.UTC()),
			Close: bar.Close,
		})
	}

	if len(series) > days {
		series = series[len(series)-days:]
	}

	return series, nil
}
