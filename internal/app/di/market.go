// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"stockchart/internal/config"
	eodhandler "stockchart/internal/feature/eod/transport/handler"
	"stockchart/internal/feature/eod/usecase"
	"stockchart/internal/feature/eod/view"
	infrahttp "stockchart/internal/platform/http"
	"stockchart/internal/platform/marketstack"
	"stockchart/internal/shared/ratelimiter"
)

// NewMarket creates a marketstack-backed EODMarket with a tuned HTTP client.
// The access key is injected here, once per process.
func NewMarket(cfg *config.Config) *marketstack.EODMarket {
	msCfg := marketstack.Config{
		BaseURL:   cfg.Marketstack.BaseURL,
		APIPrefix: cfg.Marketstack.APIPrefix,
		AccessKey: cfg.Marketstack.AccessKey,
		Timeout:   cfg.Marketstack.Timeout,
	}
	httpClient := infrahttp.NewHTTPClient(msCfg.Timeout)
	return marketstack.NewEODMarket(marketstack.NewClient(msCfg, httpClient))
}

// NewChartView wires the usecase and returns an unmounted view for the
// configured symbol. date_to is left empty so each fetch uses its own "today".
func NewChartView(cfg *config.Config, repo usecase.MarketRepository) *view.View {
	uc := usecase.NewEODUsecase(repo)
	req := uc.Normalize(usecase.EODRequest{
		Symbol:   cfg.Chart.Symbol,
		DateFrom: cfg.Chart.DateFrom,
		Limit:    cfg.Chart.Limit,
	})
	req.DateTo = ""
	return view.New(uc, req)
}

// NewChartHandler wraps v with the configured per-minute refresh limit.
func NewChartHandler(cfg *config.Config, v eodhandler.ChartView) *eodhandler.ChartHandler {
	limiter := ratelimiter.NewRateLimiter(cfg.Chart.RefreshLimit, time.Minute)
	return eodhandler.NewChartHandler(v, eodhandler.WithRefreshLimiter(limiter))
}
