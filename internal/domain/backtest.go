package domain

// EquityPoint is one step of the simulated portfolio value, expressed
// as a multiplier of starting capital. Step 0 is always equity 1.0.
type EquityPoint struct {
	Step   int     `json:"step"`
	Equity float64 `json:"equity"`
}

// BacktestResult is the full response contract. Field names are load
// bearing: the front end and the tests address them exactly as tagged.
// All floats are raw, unrounded values and are guaranteed finite.
type BacktestResult struct {
	Symbol                  string        `json:"symbol"`
	Window                  int           `json:"window"`
	AltWindow               int           `json:"alt_window"`
	Days                    int           `json:"days"`
	BuyAndHoldReturnPct     float64       `json:"buy_and_hold_return_pct"`
	SmaStrategyReturnPct    float64       `json:"sma_strategy_return_pct"`
	AltSmaStrategyReturnPct float64       `json:"alt_sma_strategy_return_pct"`
	NumPoints               int           `json:"num_points"`
	Prices                  PriceSeries   `json:"prices"`
	EquityCurve             []EquityPoint `json:"equity_curve"`
	MaxDrawdownPct          float64       `json:"max_drawdown_pct"`
	VolatilityPct           float64       `json:"volatility_pct"`
	SharpeLike              float64       `json:"sharpe_like"`
}
