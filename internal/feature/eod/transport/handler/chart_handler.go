// Package handler provides the HTTP handlers of the eod chart feature.
package handler

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"stockchart/internal/feature/eod/domain/entity"
	eodrender "stockchart/internal/feature/eod/render"
	"stockchart/internal/feature/eod/transport/http/dto"
	"stockchart/internal/feature/eod/view"
)

//go:embed templates/*.html
var templateFS embed.FS

// ChartView is the view state the handlers read.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (view).
type ChartView interface {
	Snapshot() view.State
	Wait(ctx context.Context) error
	Refresh()
}

// RefreshLimiter throttles manual refreshes so they cannot exhaust the upstream quota.
type RefreshLimiter interface {
	Allow() bool
	RetryAfter() time.Duration
}

// ChartHandler serves the stock chart page and its data.
type ChartHandler struct {
	v       ChartView
	limiter RefreshLimiter
	tmpl    *template.Template
}

// Option configures a ChartHandler.
type Option func(*ChartHandler)

// WithRefreshLimiter sets the limiter consulted by Refresh.
func WithRefreshLimiter(l RefreshLimiter) Option {
	return func(h *ChartHandler) { h.limiter = l }
}

// NewChartHandler creates a ChartHandler for v.
func NewChartHandler(v ChartView, opts ...Option) *ChartHandler {
	h := &ChartHandler{
		v:    v,
		tmpl: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type pageData struct {
	Loading bool
	Options dto.ChartOptions
}

type errorData struct {
	Message string
}

// Page renders the chart page.
//
// GET /?wait=1
//
// In the error state only the message is rendered. ?wait=1 blocks until the
// current fetch finishes or the client goes away.
func (h *ChartHandler) Page(c *gin.Context) {
	if c.Query("wait") == "1" {
		_ = h.v.Wait(c.Request.Context())
	}

	st := h.v.Snapshot()
	switch st.Status {
	case view.StatusError:
		c.Render(http.StatusBadGateway, render.HTML{
			Template: h.tmpl,
			Name:     "error",
			Data:     errorData{Message: st.ErrorMessage()},
		})
	case view.StatusLoaded:
		c.Render(http.StatusOK, render.HTML{
			Template: h.tmpl,
			Name:     "chart",
			Data:     pageData{Options: dto.NewChartOptions(st.Request.Symbol, entity.BuildSeries(st.Records))},
		})
	default:
		c.Render(http.StatusOK, render.HTML{
			Template: h.tmpl,
			Name:     "chart",
			Data:     pageData{Loading: true},
		})
	}
}

// Chart returns the view state and, once loaded, the chart options as JSON.
//
// GET /api/chart
//
// 200 when loaded, 202 while loading, 502 when the fetch failed.
func (h *ChartHandler) Chart(c *gin.Context) {
	st := h.v.Snapshot()
	c.JSON(statusFor(st), toResponse(st))
}

// Refresh discards the current data and starts a new fetch.
//
// POST /api/chart/refresh
//
// 429 with Retry-After when the refresh limit is exhausted.
func (h *ChartHandler) Refresh(c *gin.Context) {
	if h.limiter != nil && !h.limiter.Allow() {
		secs := int(math.Ceil(h.limiter.RetryAfter().Seconds()))
		c.Header("Retry-After", strconv.Itoa(secs))
		c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{Error: "refresh rate limit exceeded"})
		return
	}

	h.v.Refresh()
	c.JSON(http.StatusAccepted, toResponse(h.v.Snapshot()))
}

// Image renders the chart as PNG.
//
// GET /chart.png
func (h *ChartHandler) Image(c *gin.Context) {
	st := h.v.Snapshot()
	switch st.Status {
	case view.StatusLoading:
		c.JSON(http.StatusAccepted, dto.ErrorResponse{Error: "chart is loading"})
		return
	case view.StatusError:
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: st.ErrorMessage()})
		return
	}

	var buf bytes.Buffer
	err := eodrender.PNG(&buf, entity.BuildSeries(st.Records), eodrender.Options{
		Title: st.Request.Symbol + " Historical",
	})
	if errors.Is(err, eodrender.ErrNotEnoughPoints) {
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		slog.Error("chart render failed", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "chart render failed"})
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func statusFor(st view.State) int {
	switch st.Status {
	case view.StatusLoaded:
		return http.StatusOK
	case view.StatusError:
		return http.StatusBadGateway
	default:
		return http.StatusAccepted
	}
}

func toResponse(st view.State) dto.ChartResponse {
	out := dto.ChartResponse{
		Status:    string(st.Status),
		IsLoading: st.IsLoading,
		IsError:   st.IsError,
		Symbol:    st.Request.Symbol,
		Records:   len(st.Records),
	}
	if st.Err != nil {
		out.Error = &dto.ErrorDetail{
			Kind:       string(st.Err.Kind),
			Code:       st.Err.Code,
			Message:    st.Err.Message,
			StatusCode: st.Err.StatusCode,
		}
	}
	if st.Status == view.StatusLoaded {
		opts := dto.NewChartOptions(st.Request.Symbol, entity.BuildSeries(st.Records))
		out.Options = &opts
	}
	return out
}
