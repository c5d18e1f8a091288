package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vantagelite/internal/calculator"
	"vantagelite/internal/domain"
	"vantagelite/internal/logger"
	"vantagelite/internal/metrics"
	"vantagelite/internal/service"
)

const (
	MinDays = 5
	MaxDays = 365

	maxSymbolLen = 10
)

type BacktestHandler struct {
	PriceService service.PriceService
}

type BacktestInput struct {
	Symbol    string
	Window    int
	AltWindow int
	Days      int
	// UseReal routes non-DUMMY symbols to the price vendor. Off by
	// default so the demo stays deterministic and free of network
	// calls.
	UseReal bool
}

// normalizeSymbol uppercases and falls back to DUMMY for blank input.
func normalizeSymbol(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if s == "" {
		return service.DummySymbol
	}
	return s
}

func validateBacktestInput(in BacktestInput) error {
	if len(normalizeSymbol(in.Symbol)) > maxSymbolLen {
		return domain.NewInvalidParameterError("symbol", fmt.Sprintf("must be at most %d characters", maxSymbolLen))
	}
	if in.Window < calculator.MinWindow || in.Window > calculator.MaxWindow {
		return domain.NewInvalidParameterError("window", fmt.Sprintf("must be between %d and %d", calculator.MinWindow, calculator.MaxWindow))
	}
	if in.AltWindow < calculator.MinWindow || in.AltWindow > calculator.MaxWindow {
		return domain.NewInvalidParameterError("alt_window", fmt.Sprintf("must be between %d and %d", calculator.MinWindow, calculator.MaxWindow))
	}
	if in.Days < MinDays || in.Days > MaxDays {
		return domain.NewInvalidParameterError("days", fmt.Sprintf("must be between %d and %d", MinDays, MaxDays))
	}
	return nil
}

// Run resolves the price series and computes the whole result: buy and
// hold, both SMA strategy returns, the primary equity curve and the
// risk metrics. It is stateless; every call builds a fresh result from
// its inputs alone.
func (h BacktestHandler) Run(ctx context.Context, in BacktestInput) (*domain.BacktestResult, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	if err := validateBacktestInput(in); err != nil {
		return nil, err
	}

	symbol := normalizeSymbol(in.Symbol)

	fetchSymbol := symbol
	if !in.UseReal {
		fetchSymbol = service.DummySymbol
	}

	series, err := h.PriceService.GetSeries(ctx, fetchSymbol, in.Days)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve price series: %w", err)
	}

	closes := series.Closes()
	primary := calculator.SimulateSmaStrategy(closes, in.Window)
	alt := calculator.SimulateSmaStrategy(closes, in.AltWindow)
	riskMetrics := calculator.ComputeRiskMetrics(primary.EquityCurve)

	source := "vendor"
	if fetchSymbol == service.DummySymbol {
		source = "dummy"
	}
	metrics.BacktestsTotal.WithLabelValues(source).Inc()
	metrics.BacktestDuration.Observe(time.Since(start).Seconds())

	log.Infow("backtest complete",
		"symbol", symbol,
		"window", in.Window,
		"altWindow", in.AltWindow,
		"days", in.Days,
		"numPoints", len(series),
		"durationMs", time.Since(start).Milliseconds(),
	)

	return &domain.BacktestResult{
		Symbol:                  symbol,
		Window:                  in.Window,
		AltWindow:               in.AltWindow,
		Days:                    in.Days,
		BuyAndHoldReturnPct:     calculator.BuyAndHoldReturnPct(closes),
		SmaStrategyReturnPct:    primary.ReturnPct,
		AltSmaStrategyReturnPct: alt.ReturnPct,
		NumPoints:               len(series),
		Prices:                  series,
		EquityCurve:             primary.EquityCurve,
		MaxDrawdownPct:          riskMetrics.MaxDrawdownPct,
		VolatilityPct:           riskMetrics.VolatilityPct,
		SharpeLike:              riskMetrics.SharpeLike,
	}, nil
}
