package marketstack

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"stockchart/internal/feature/eod/domain/entity"
	"stockchart/internal/feature/eod/usecase"
	"stockchart/internal/platform/marketstack/dto"
)

// dateLayouts lists the date formats accepted in EOD records, most specific first.
var dateLayouts = []string{
	"2006-01-02T15:04:05-0700",
	time.RFC3339,
	"2006-01-02",
}

// EODMarket is the MarketRepository that reads end-of-day data from marketstack.
type EODMarket struct {
	client *Client
}

// EODMarket must satisfy usecase.MarketRepository.
var _ usecase.MarketRepository = (*EODMarket)(nil)

// NewEODMarket creates an EODMarket backed by client.
func NewEODMarket(client *Client) *EODMarket {
	return &EODMarket{client: client}
}

// GetEOD fetches the eod endpoint and converts its data array to domain records,
// keeping the upstream order. Errors are returned normalized.
func (m *EODMarket) GetEOD(ctx context.Context, req usecase.EODRequest) ([]entity.PriceRecord, error) {
	q := Query{
		{Key: "symbols", Value: req.Symbol},
		{Key: "date_from", Value: req.DateFrom},
		{Key: "date_to", Value: req.DateTo},
		{Key: "limit", Value: req.Limit},
	}

	var body dto.EODResponse
	if err := m.client.FetchJSON(ctx, usecase.EndpointEOD, q, &body); err != nil {
		return nil, NormalizeError(err)
	}
	if body.Pagination.Total > len(body.Data) {
		slog.Info("eod result truncated by limit", "symbol", req.Symbol, "returned", len(body.Data), "total", body.Pagination.Total)
	}

	records := make([]entity.PriceRecord, 0, len(body.Data))
	for _, v := range body.Data {
		d, err := parseDate(v.Date)
		if err != nil {
			return nil, NormalizeError(err)
		}
		records = append(records, entity.PriceRecord{
			Date:   d,
			Symbol: v.Symbol,
			Open:   v.Open,
			High:   v.High,
			Low:    v.Low,
			Close:  v.Close,
			Volume: int64(math.Round(v.Volume)),
		})
	}
	return records, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("parse date %q", s)
}
