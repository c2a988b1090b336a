// Package usecase implements the business logic for fetching end-of-day price data.
package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"stockchart/internal/feature/eod/domain"
	"stockchart/internal/feature/eod/domain/entity"
)

const (
	// EndpointEOD is the upstream endpoint serving end-of-day records.
	EndpointEOD = "eod"
	// DefaultSymbol is charted when no symbol is configured.
	DefaultSymbol = "AAPL"
	// DefaultDateFrom is the first day requested when none is configured.
	DefaultDateFrom = "2020-01-01"
	// DefaultLimit caps the number of records returned by the upstream.
	DefaultLimit = 1000
	// MaxLimit is the largest page the upstream accepts.
	MaxLimit = 1000
	// DateLayout is the wire format of date_from and date_to.
	DateLayout = "2006-01-02"
)

// EODRequest describes one end-of-day query for a single symbol.
type EODRequest struct {
	Symbol   string
	DateFrom string // YYYY-MM-DD
	DateTo   string // YYYY-MM-DD; filled with today when empty
	Limit    int
}

// MarketRepository abstracts the upstream end-of-day data source.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MarketRepository interface {
	GetEOD(ctx context.Context, req EODRequest) ([]entity.PriceRecord, error)
}

// EODUsecase fetches end-of-day records for the chart.
type EODUsecase struct {
	repo MarketRepository
	now  func() time.Time
}

// Option customizes an EODUsecase.
type Option func(*EODUsecase)

// WithClock replaces time.Now, which decides the default date_to.
func WithClock(now func() time.Time) Option {
	return func(u *EODUsecase) {
		if now != nil {
			u.now = now
		}
	}
}

// NewEODUsecase creates a new EODUsecase with the given repository.
func NewEODUsecase(repo MarketRepository, opts ...Option) *EODUsecase {
	u := &EODUsecase{repo: repo, now: time.Now}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Normalize fills defaults into req. date_to becomes today at call time.
func (u *EODUsecase) Normalize(req EODRequest) EODRequest {
	req.Symbol = strings.ToUpper(strings.TrimSpace(req.Symbol))
	if req.Symbol == "" {
		req.Symbol = DefaultSymbol
	}
	if req.DateFrom == "" {
		req.DateFrom = DefaultDateFrom
	}
	if req.DateTo == "" {
		req.DateTo = u.now().Format(DateLayout)
	}
	if req.Limit <= 0 || req.Limit > MaxLimit {
		req.Limit = DefaultLimit
	}
	return req
}

// FetchEOD returns the records for req in the order the upstream sent them.
// Every failure is returned as a *domain.FetchError.
func (u *EODUsecase) FetchEOD(ctx context.Context, req EODRequest) ([]entity.PriceRecord, error) {
	req = u.Normalize(req)

	records, err := u.repo.GetEOD(ctx, req)
	if err != nil {
		fe := domain.AsFetchError(err)
		slog.Warn("eod fetch failed", "symbol", req.Symbol, "kind", fe.Kind, "error", fe.Message)
		return nil, fe
	}

	for _, r := range records {
		if err := r.Validate(); err != nil {
			slog.Warn("eod record out of range", "error", err)
		}
	}
	slog.Info("eod fetched", "symbol", req.Symbol, "from", req.DateFrom, "to", req.DateTo, "records", len(records))
	return records, nil
}
