package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
)

type backtestExportRow struct {
	Step   int     `csv:"step"`
	Date   string  `csv:"date"`
	Close  float64 `csv:"close"`
	Equity float64 `csv:"equity"`
}

// backtestDemoExport runs the same backtest as the demo endpoint and
// streams the price and equity series as a csv attachment.
func (m ApiHandler) backtestDemoExport(c *gin.Context) {
	result, ok := m.runBacktestFromQuery(c)
	if !ok {
		return
	}

	rows := make([]backtestExportRow, 0, len(result.Prices))
	for i, price := range result.Prices {
		row := backtestExportRow{
			Step:  i,
			Date:  price.Date.Format("2006-01-02"),
			Close: price.Close,
		}
		if i < len(result.EquityCurve) {
			row.Equity = result.EquityCurve[i].Equity
		}
		rows = append(rows, row)
	}

	csvBytes, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to marshal csv: %w", err), c)
		return
	}

	filename := fmt.Sprintf("%s_backtest.csv", strings.ToLower(result.Symbol))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(200, "text/csv", csvBytes)
}
