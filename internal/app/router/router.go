package router

import (
	eodhandler "stockchart/internal/feature/eod/transport/handler"
	"stockchart/internal/platform/http/handler"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with request logging and panic recovery.
func NewRouter(chart *eodhandler.ChartHandler) *gin.Engine {
	r := gin.Default()

	// Liveness check
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.OPTIONS("/healthz", handler.Health)

	r.GET("/", chart.Page)
	r.GET("/chart.png", chart.Image)

	api := r.Group("/api")
	{
		api.GET("/chart", chart.Chart)
		api.POST("/chart/refresh", chart.Refresh)
	}

	return r
}
