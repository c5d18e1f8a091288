package calculator

import (
	"vantagelite/internal/domain"
)

const (
	MinWindow = 1
	MaxWindow = 100
)

type SmaStrategyResult struct {
	ReturnPct   float64
	EquityCurve []domain.EquityPoint
}

// ClampWindow forces a window length into the accepted range. Callers
// are expected to validate before invoking the engine; this keeps an
// out-of-range value from ever producing undefined results.
func ClampWindow(window int) int {
	if window < MinWindow {
		return MinWindow
	}
	if window > MaxWindow {
		return MaxWindow
	}
	return window
}

// BuyAndHoldReturnPct is the return of holding from the first close to
// the last, in percent. Fewer than two points means there is nothing
// to hold across, so the return is 0.
func BuyAndHoldReturnPct(closes []float64) float64 {
	if len(closes) < 2 || closes[0] == 0 {
		return 0.0
	}
	first := closes[0]
	last := closes[len(closes)-1]
	return (last - first) / first * 100
}

// SimulateSmaStrategy runs the SMA regime rule over a close series.
//
// The simple moving average exists from index window-1 onwards. The
// position on day i is long when close[i] > SMA[i], flat otherwise,
// re-evaluated every day. A position held at the start of day i+1
// captures that day's market move: equity multiplies by
// close[i+1]/close[i] while long and holds still while flat, so the
// signal never sees the return it is applied to.
//
// The returned curve has one point per input close, step 0 at equity
// 1.0. A window longer than the series never produces a signal and
// yields a flat curve with a 0.0 return.
func SimulateSmaStrategy(closes []float64, window int) SmaStrategyResult {
	window = ClampWindow(window)

	n := len(closes)
	curve := make([]domain.EquityPoint, 0, n)
	equity := 1.0
	if n > 0 {
		curve = append(curve, domain.EquityPoint{Step: 0, Equity: equity})
	}

	long := false
	windowSum := 0.0
	for i := 0; i < n; i++ {
		windowSum += closes[i]
		if i >= window {
			windowSum -= closes[i-window]
		}

		if i >= window-1 {
			sma := windowSum / float64(window)
			long = closes[i] > sma
		} else {
			long = false
		}

		if i+1 < n {
			if long && closes[i] != 0 {
				equity *= closes[i+1] / closes[i]
			}
			curve = append(curve, domain.EquityPoint{Step: i + 1, Equity: equity})
		}
	}

	return SmaStrategyResult{
		ReturnPct:   (equity - 1.0) * 100,
		EquityCurve: curve,
	}
}
