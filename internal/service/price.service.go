package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vantagelite/internal/domain"
	"vantagelite/internal/logger"
	"vantagelite/internal/metrics"
	"vantagelite/internal/repository"

	"golang.org/x/time/rate"
)

// DummySymbol routes to the synthetic generator instead of a vendor.
const DummySymbol = "DUMMY"

type PriceService interface {
	GetSeries(ctx context.Context, symbol string, days int) (domain.PriceSeries, error)
}

type priceServiceHandler struct {
	Vendor       repository.PriceVendorRepository
	FetchTimeout time.Duration
	Limiter      *rate.Limiter

	now func() time.Time
}

func NewPriceService(vendor repository.PriceVendorRepository, fetchTimeout time.Duration, vendorRequestsPerMinute int) PriceService {
	limit := rate.Inf
	if vendorRequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(vendorRequestsPerMinute))
	}

	return &priceServiceHandler{
		Vendor:       vendor,
		FetchTimeout: fetchTimeout,
		Limiter:      rate.NewLimiter(limit, 1),
		now:          time.Now,
	}
}

// GetSeries resolves the daily close series for a symbol. DUMMY is
// generated locally and always succeeds; everything else goes to the
// configured vendor. A vendor failure or an empty vendor response maps
// to domain.ErrDataUnavailable so callers can tell "provider broken"
// apart from "short history", which comes back as a shorter series.
func (h *priceServiceHandler) GetSeries(ctx context.Context, symbol string, days int) (domain.PriceSeries, error) {
	log := logger.FromContext(ctx)

	if days <= 0 {
		return domain.PriceSeries{}, nil
	}

	if strings.EqualFold(symbol, DummySymbol) {
		return GenerateDummySeries(days, h.now()), nil
	}

	if err := h.Limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("gave up waiting for vendor rate limit: %w", err)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, h.FetchTimeout)
	defer cancel()

	series, err := h.Vendor.GetDailyCloses(fetchCtx, symbol, days)
	if err != nil {
		metrics.VendorErrorsTotal.Inc()
		log.Warnf("price vendor lookup failed for %s: %v", symbol, err)
		return nil, fmt.Errorf("%w for %s: %s", domain.ErrDataUnavailable, symbol, err.Error())
	}
	if len(series) == 0 {
		metrics.VendorErrorsTotal.Inc()
		return nil, fmt.Errorf("%w for %s: vendor returned no bars", domain.ErrDataUnavailable, symbol)
	}

	return series, nil
}
