package api

import (
	"errors"
	"fmt"

	"vantagelite/internal/app"
	"vantagelite/internal/domain"

	"github.com/gin-gonic/gin"
)

type backtestDemoRequest struct {
	Symbol    string `form:"symbol,default=DUMMY"`
	Window    int    `form:"window,default=5"`
	AltWindow int    `form:"alt_window,default=10"`
	Days      int    `form:"days,default=30"`
	UseReal   bool   `form:"use_real,default=false"`
}

func (m ApiHandler) backtestDemo(c *gin.Context) {
	result, ok := m.runBacktestFromQuery(c)
	if !ok {
		return
	}
	c.JSON(200, result)
}

// runBacktestFromQuery binds the demo query parameters, runs the
// backtest and writes the error response on failure. The boolean
// reports whether the caller still owns the response.
func (m ApiHandler) runBacktestFromQuery(c *gin.Context) (*domain.BacktestResult, bool) {
	var requestBody backtestDemoRequest
	if err := c.ShouldBindQuery(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse query parameters: %w", err), c, 400)
		return nil, false
	}

	result, err := m.BacktestHandler.Run(c.Request.Context(), app.BacktestInput{
		Symbol:    requestBody.Symbol,
		Window:    requestBody.Window,
		AltWindow: requestBody.AltWindow,
		Days:      requestBody.Days,
		UseReal:   requestBody.UseReal,
	})
	if err != nil {
		var invalidErr domain.InvalidParameterError
		switch {
		case errors.As(err, &invalidErr):
			returnInvalidParameterJson(invalidErr, c)
		case errors.Is(err, domain.ErrDataUnavailable):
			returnErrorJsonCode(err, c, 502)
		default:
			returnErrorJson(fmt.Errorf("failed to run backtest: %w", err), c)
		}
		return nil, false
	}

	return result, true
}

func returnInvalidParameterJson(err domain.InvalidParameterError, c *gin.Context) {
	c.AbortWithStatusJSON(400, gin.H{
		"error": err.Error(),
		"field": err.Field,
	})
}
