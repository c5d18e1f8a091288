package app

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"vantagelite/internal/domain"
	"vantagelite/internal/service"
	mock_service "vantagelite/internal/service/mocks"
	"vantagelite/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newDummyOnlyHandler() BacktestHandler {
	// nil vendor is fine: the DUMMY route never touches it
	return BacktestHandler{
		PriceService: service.NewPriceService(nil, time.Second, 0),
	}
}

func Test_BacktestHandler_Run(t *testing.T) {
	t.Run("deterministic demo scenario", func(t *testing.T) {
		h := newDummyOnlyHandler()

		in := BacktestInput{Symbol: "DUMMY", Window: 5, AltWindow: 10, Days: 30}

		first, err := h.Run(context.Background(), in)
		require.NoError(t, err)

		require.Equal(t, "DUMMY", first.Symbol)
		require.Equal(t, 5, first.Window)
		require.Equal(t, 10, first.AltWindow)
		require.Equal(t, 30, first.Days)
		require.Equal(t, 30, first.NumPoints)
		require.Len(t, first.Prices, 30)
		require.Len(t, first.EquityCurve, 30)
		require.Equal(t, domain.EquityPoint{Step: 0, Equity: 1.0}, first.EquityCurve[0])
		require.LessOrEqual(t, first.MaxDrawdownPct, 0.0)
		require.GreaterOrEqual(t, first.VolatilityPct, 0.0)

		for _, f := range []float64{
			first.BuyAndHoldReturnPct,
			first.SmaStrategyReturnPct,
			first.AltSmaStrategyReturnPct,
			first.MaxDrawdownPct,
			first.VolatilityPct,
			first.SharpeLike,
		} {
			require.False(t, math.IsNaN(f))
			require.False(t, math.IsInf(f, 0))
		}

		second, err := h.Run(context.Background(), in)
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(first.Prices.Closes(), second.Prices.Closes()))
		require.Equal(t, "", cmp.Diff(first.EquityCurve, second.EquityCurve))
		require.Equal(t, first.SmaStrategyReturnPct, second.SmaStrategyReturnPct)
		require.Equal(t, first.AltSmaStrategyReturnPct, second.AltSmaStrategyReturnPct)
		require.Equal(t, first.BuyAndHoldReturnPct, second.BuyAndHoldReturnPct)
		require.Equal(t, first.SharpeLike, second.SharpeLike)
	})

	t.Run("window at least series length stays flat", func(t *testing.T) {
		h := newDummyOnlyHandler()

		out, err := h.Run(context.Background(), BacktestInput{Symbol: "DUMMY", Window: 100, AltWindow: 10, Days: 30})
		require.NoError(t, err)

		require.Equal(t, 0.0, out.SmaStrategyReturnPct)
		require.Len(t, out.EquityCurve, 30)
		for _, point := range out.EquityCurve {
			require.Equal(t, 1.0, point.Equity)
		}
		require.Equal(t, 0.0, out.MaxDrawdownPct)
		require.Equal(t, 0.0, out.VolatilityPct)
		require.Equal(t, 0.0, out.SharpeLike)
	})

	t.Run("symbol is trimmed, uppercased and defaulted", func(t *testing.T) {
		h := newDummyOnlyHandler()

		out, err := h.Run(context.Background(), BacktestInput{Symbol: " aapl ", Window: 5, AltWindow: 10, Days: 30})
		require.NoError(t, err)
		require.Equal(t, "AAPL", out.Symbol)

		out, err = h.Run(context.Background(), BacktestInput{Symbol: "", Window: 5, AltWindow: 10, Days: 30})
		require.NoError(t, err)
		require.Equal(t, "DUMMY", out.Symbol)
	})

	t.Run("rejects out of range parameters with the offending field", func(t *testing.T) {
		h := newDummyOnlyHandler()

		tests := []struct {
			name  string
			in    BacktestInput
			field string
		}{
			{"window too small", BacktestInput{Symbol: "DUMMY", Window: 0, AltWindow: 10, Days: 30}, "window"},
			{"window too large", BacktestInput{Symbol: "DUMMY", Window: 101, AltWindow: 10, Days: 30}, "window"},
			{"alt window too small", BacktestInput{Symbol: "DUMMY", Window: 5, AltWindow: 0, Days: 30}, "alt_window"},
			{"days too small", BacktestInput{Symbol: "DUMMY", Window: 5, AltWindow: 10, Days: 4}, "days"},
			{"days too large", BacktestInput{Symbol: "DUMMY", Window: 5, AltWindow: 10, Days: 366}, "days"},
			{"symbol too long", BacktestInput{Symbol: "WAYTOOLONGTICKER", Window: 5, AltWindow: 10, Days: 30}, "symbol"},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				_, err := h.Run(context.Background(), tc.in)

				var invalid domain.InvalidParameterError
				require.ErrorAs(t, err, &invalid)
				require.Equal(t, tc.field, invalid.Field)
			})
		}
	})

	t.Run("data unavailable propagates untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceService := mock_service.NewMockPriceService(ctrl)

		priceService.EXPECT().
			GetSeries(gomock.Any(), "UNKNOWNXYZ", 30).
			Return(nil, fmt.Errorf("%w for UNKNOWNXYZ: vendor said no", domain.ErrDataUnavailable))

		h := BacktestHandler{PriceService: priceService}

		out, err := h.Run(context.Background(), BacktestInput{Symbol: "UNKNOWNXYZ", Window: 5, AltWindow: 10, Days: 30, UseReal: true})
		require.Nil(t, out)
		require.ErrorIs(t, err, domain.ErrDataUnavailable)
	})

	t.Run("short vendor series degrades instead of failing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		priceService := mock_service.NewMockPriceService(ctrl)

		priceService.EXPECT().
			GetSeries(gomock.Any(), "NEWIPO", 30).
			Return(domain.PriceSeries{
				{Date: domain.NewDate(util.NewDate(2024, 3, 9)), Close: 100},
				{Date: domain.NewDate(util.NewDate(2024, 3, 10)), Close: 110},
			}, nil)

		h := BacktestHandler{PriceService: priceService}

		out, err := h.Run(context.Background(), BacktestInput{Symbol: "newipo", Window: 5, AltWindow: 10, Days: 30, UseReal: true})
		require.NoError(t, err)

		require.Equal(t, 30, out.Days)
		require.Equal(t, 2, out.NumPoints)
		require.Len(t, out.Prices, 2)
		require.Len(t, out.EquityCurve, 2)
		require.Equal(t, 10.0, out.BuyAndHoldReturnPct)
		require.Equal(t, 0.0, out.SmaStrategyReturnPct)
	})
}
