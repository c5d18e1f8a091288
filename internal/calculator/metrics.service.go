package calculator

import (
	"vantagelite/internal/domain"

	"github.com/montanaflynn/stats"
)

type RiskMetrics struct {
	MaxDrawdownPct float64
	VolatilityPct  float64
	SharpeLike     float64
}

// ComputeRiskMetrics derives drawdown, volatility and a sharpe-like
// ratio from an equity curve. Degenerate inputs (short curves, zero
// variance) resolve to 0.0 so the response never carries NaN or Inf.
func ComputeRiskMetrics(curve []domain.EquityPoint) RiskMetrics {
	out := RiskMetrics{
		MaxDrawdownPct: maxDrawdownPct(curve),
	}

	returns := dailyReturns(curve)
	if len(returns) < 2 {
		return out
	}

	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil || stdev == 0 {
		return out
	}
	out.VolatilityPct = stdev * 100

	mean, err := stats.Mean(returns)
	if err != nil {
		return out
	}
	out.SharpeLike = mean / stdev

	return out
}

// maxDrawdownPct is the most negative decline from the running peak,
// in percent. 0 when the curve never dips below a prior peak.
func maxDrawdownPct(curve []domain.EquityPoint) float64 {
	if len(curve) == 0 {
		return 0.0
	}

	peak := curve[0].Equity
	maxDrawdown := 0.0
	for _, point := range curve {
		if point.Equity > peak {
			peak = point.Equity
		}
		if peak == 0 {
			continue
		}
		drawdown := (point.Equity - peak) / peak * 100
		if drawdown < maxDrawdown {
			maxDrawdown = drawdown
		}
	}

	return maxDrawdown
}

func dailyReturns(curve []domain.EquityPoint) []float64 {
	returns := []float64{}
	for i := 1; i < len(curve); i++ {
		prev := curve[i-1].Equity
		if prev == 0 {
			continue
		}
		returns = append(returns, curve[i].Equity/prev-1)
	}
	return returns
}
