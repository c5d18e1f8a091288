package api

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"vantagelite/internal/app"
	"vantagelite/internal/logger"
	"vantagelite/internal/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db              *sql.DB
	BacktestHandler app.BacktestHandler
	PresetHandler   app.PresetHandler
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to vantage lite"})
	})
	router.GET("/health", health)
	router.GET("/backtest/demo", m.backtestDemo)
	router.GET("/backtest/demo/export", m.backtestDemoExport)
	router.POST("/presets", m.savePreset)
	router.GET("/presets", m.listPresets)
	router.DELETE("/presets/:id", m.deletePreset)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func health(c *gin.Context) {
	c.JSON(200, map[string]string{"status": "ok"})
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	zap.S().Error(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// logRequestMiddlware attaches a request-scoped logger to the context
// and emits one line per request with the outcome.
func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	start := time.Now().UTC()

	lg := zap.S().With(
		"method", ctx.Request.Method,
		"path", ctx.Request.URL.Path,
	)
	reqCtx := context.WithValue(ctx.Request.Context(), logger.ContextKey, lg)
	ctx.Request = ctx.Request.WithContext(reqCtx)

	ctx.Next()

	status := ctx.Writer.Status()
	fields := []interface{}{
		"status", status,
		"durationMs", time.Since(start).Milliseconds(),
		"ip", ctx.ClientIP(),
	}
	switch {
	case status >= 500:
		lg.Errorw("request failed", fields...)
	case status >= 400:
		lg.Warnw("request rejected", fields...)
	default:
		lg.Infow("request served", fields...)
	}
}
