package integration_tests

import (
	"context"
	"time"

	"vantagelite/internal/domain"
	"vantagelite/internal/repository"
	"vantagelite/internal/util"
)

// NewStubVendorRepositoryForTests returns a vendor that serves a
// deterministic rising series for any symbol, so use_real code paths
// run without the network.
func NewStubVendorRepositoryForTests() repository.PriceVendorRepository {
	return stubVendorForTestsHandler{}
}

type stubVendorForTestsHandler struct{}

func (m stubVendorForTestsHandler) GetDailyCloses(ctx context.Context, symbol string, days int) (domain.PriceSeries, error) {
	if days <= 0 {
		return domain.PriceSeries{}, nil
	}

	dates := util.TrailingDates(time.Now().UTC(), days)

	series := make(domain.PriceSeries, 0, days)
	for i, d := range dates {
		series = append(series, domain.PricePoint{
			Date:  domain.NewDate(d),
			Close: 100 + float64(i),
		})
	}
	return series, nil
}
