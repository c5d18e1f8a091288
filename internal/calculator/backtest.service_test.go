package calculator

import (
	"testing"
	"vantagelite/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func Test_SimulateSmaStrategy(t *testing.T) {
	t.Run("rising series goes long after warmup", func(t *testing.T) {
		out := SimulateSmaStrategy([]float64{1, 2, 4, 8}, 2)

		require.Equal(
			t,
			"",
			cmp.Diff(
				[]domain.EquityPoint{
					{Step: 0, Equity: 1},
					{Step: 1, Equity: 1},
					{Step: 2, Equity: 2},
					{Step: 3, Equity: 4},
				},
				out.EquityCurve,
			),
		)
		require.Equal(t, float64(300), out.ReturnPct)
	})

	t.Run("downtrend never enters a position", func(t *testing.T) {
		out := SimulateSmaStrategy([]float64{10, 9, 8, 7}, 2)

		require.Equal(t, float64(0), out.ReturnPct)
		require.Equal(
			t,
			"",
			cmp.Diff(
				[]domain.EquityPoint{
					{Step: 0, Equity: 1},
					{Step: 1, Equity: 1},
					{Step: 2, Equity: 1},
					{Step: 3, Equity: 1},
				},
				out.EquityCurve,
			),
		)
	})

	t.Run("whipsaw exits before the drop", func(t *testing.T) {
		out := SimulateSmaStrategy([]float64{10, 12, 11, 9, 8}, 2)

		// long only across day 1 -> 2, so equity tracks 11/12 and
		// then holds flat through the decline
		require.Len(t, out.EquityCurve, 5)
		require.InDelta(t, 11.0/12.0, out.EquityCurve[2].Equity, 0.0000001)
		require.InDelta(t, 11.0/12.0, out.EquityCurve[4].Equity, 0.0000001)
		require.InDelta(t, (11.0/12.0-1)*100, out.ReturnPct, 0.0000001)
	})

	t.Run("window longer than series stays flat", func(t *testing.T) {
		closes := []float64{100, 101, 102, 103, 104, 105}
		out := SimulateSmaStrategy(closes, 100)

		require.Equal(t, float64(0), out.ReturnPct)
		require.Len(t, out.EquityCurve, len(closes))
		for _, point := range out.EquityCurve {
			require.Equal(t, float64(1), point.Equity)
		}
	})

	t.Run("window of one never trades", func(t *testing.T) {
		out := SimulateSmaStrategy([]float64{1, 2, 3, 4}, 1)

		require.Equal(t, float64(0), out.ReturnPct)
		for _, point := range out.EquityCurve {
			require.Equal(t, float64(1), point.Equity)
		}
	})

	t.Run("curve starts at step zero equity one", func(t *testing.T) {
		out := SimulateSmaStrategy([]float64{50, 51, 52}, 2)

		require.Equal(t, domain.EquityPoint{Step: 0, Equity: 1}, out.EquityCurve[0])
	})

	t.Run("empty series", func(t *testing.T) {
		out := SimulateSmaStrategy(nil, 5)

		require.Equal(t, float64(0), out.ReturnPct)
		require.Empty(t, out.EquityCurve)
	})

	t.Run("single close", func(t *testing.T) {
		out := SimulateSmaStrategy([]float64{100}, 5)

		require.Equal(t, float64(0), out.ReturnPct)
		require.Equal(
			t,
			"",
			cmp.Diff(
				[]domain.EquityPoint{{Step: 0, Equity: 1}},
				out.EquityCurve,
			),
		)
	})

	t.Run("out of range window clamps instead of exploding", func(t *testing.T) {
		out := SimulateSmaStrategy([]float64{1, 2, 4, 8}, 0)

		// clamped to 1, which can never signal long
		require.Equal(t, float64(0), out.ReturnPct)
	})
}

func Test_BuyAndHoldReturnPct(t *testing.T) {
	t.Run("gain", func(t *testing.T) {
		require.Equal(t, float64(10), BuyAndHoldReturnPct([]float64{100, 105, 110}))
	})

	t.Run("loss", func(t *testing.T) {
		require.Equal(t, float64(-50), BuyAndHoldReturnPct([]float64{100, 80, 50}))
	})

	t.Run("single point", func(t *testing.T) {
		require.Equal(t, float64(0), BuyAndHoldReturnPct([]float64{100}))
	})

	t.Run("empty", func(t *testing.T) {
		require.Equal(t, float64(0), BuyAndHoldReturnPct(nil))
	})
}

func Test_ClampWindow(t *testing.T) {
	require.Equal(t, 1, ClampWindow(0))
	require.Equal(t, 1, ClampWindow(-3))
	require.Equal(t, 5, ClampWindow(5))
	require.Equal(t, 100, ClampWindow(100))
	require.Equal(t, 100, ClampWindow(250))
}
