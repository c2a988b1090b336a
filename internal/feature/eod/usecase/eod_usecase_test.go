package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockchart/internal/feature/eod/domain"
	"stockchart/internal/feature/eod/domain/entity"
	"stockchart/internal/feature/eod/usecase"
)

// mockMarketRepository is a mock implementation of the MarketRepository interface.
type mockMarketRepository struct {
	GetEODFunc  func(ctx context.Context, req usecase.EODRequest) ([]entity.PriceRecord, error)
	GetEODCalls int
	LastRequest usecase.EODRequest
}

func (m *mockMarketRepository) GetEOD(ctx context.Context, req usecase.EODRequest) ([]entity.PriceRecord, error) {
	m.GetEODCalls++
	m.LastRequest = req
	if m.GetEODFunc != nil {
		return m.GetEODFunc(ctx, req)
	}
	return nil, errors.New("GetEODFunc is not implemented")
}

func fixedClock() time.Time {
	return time.Date(2024, 2, 29, 15, 4, 5, 0, time.UTC)
}

func TestEODUsecase_Normalize(t *testing.T) {
	t.Parallel()

	uc := usecase.NewEODUsecase(&mockMarketRepository{}, usecase.WithClock(fixedClock))

	tests := []struct {
		name     string
		input    usecase.EODRequest
		expected usecase.EODRequest
	}{
		{
			name:     "all defaults",
			input:    usecase.EODRequest{},
			expected: usecase.EODRequest{Symbol: "AAPL", DateFrom: "2020-01-01", DateTo: "2024-02-29", Limit: 1000},
		},
		{
			name:     "explicit values kept",
			input:    usecase.EODRequest{Symbol: "MSFT", DateFrom: "2023-01-01", DateTo: "2023-06-30", Limit: 50},
			expected: usecase.EODRequest{Symbol: "MSFT", DateFrom: "2023-01-01", DateTo: "2023-06-30", Limit: 50},
		},
		{
			name:     "symbol trimmed and upper-cased",
			input:    usecase.EODRequest{Symbol: "  brk.b ", Limit: 10},
			expected: usecase.EODRequest{Symbol: "BRK.B", DateFrom: "2020-01-01", DateTo: "2024-02-29", Limit: 10},
		},
		{
			name:     "limit above max falls back to default",
			input:    usecase.EODRequest{Symbol: "AAPL", Limit: 5000},
			expected: usecase.EODRequest{Symbol: "AAPL", DateFrom: "2020-01-01", DateTo: "2024-02-29", Limit: 1000},
		},
		{
			name:     "negative limit falls back to default",
			input:    usecase.EODRequest{Symbol: "AAPL", Limit: -1},
			expected: usecase.EODRequest{Symbol: "AAPL", DateFrom: "2020-01-01", DateTo: "2024-02-29", Limit: 1000},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, uc.Normalize(tt.input))
		})
	}
}

func TestEODUsecase_FetchEOD_Success(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	expected := []entity.PriceRecord{
		{Date: day, Symbol: "AAPL", Open: 10, High: 12, Low: 9, Close: 11, Volume: 1000},
		// out-of-range record is logged, not dropped
		{Date: day.AddDate(0, 0, -1), Symbol: "AAPL", Open: 10, High: 8, Low: 9, Close: 11, Volume: 1},
	}

	repo := &mockMarketRepository{
		GetEODFunc: func(ctx context.Context, req usecase.EODRequest) ([]entity.PriceRecord, error) {
			return expected, nil
		},
	}
	uc := usecase.NewEODUsecase(repo, usecase.WithClock(fixedClock))

	got, err := uc.FetchEOD(context.Background(), usecase.EODRequest{Symbol: "AAPL"})

	require.NoError(t, err)
	assert.Equal(t, expected, got)
	assert.Equal(t, 1, repo.GetEODCalls)
	assert.Equal(t, "2024-02-29", repo.LastRequest.DateTo)
	assert.Equal(t, usecase.DefaultLimit, repo.LastRequest.Limit)
}

func TestEODUsecase_FetchEOD_Errors(t *testing.T) {
	t.Parallel()

	upstream := &domain.FetchError{Kind: domain.KindUpstream, Message: "Invalid symbol", StatusCode: 422}

	tests := []struct {
		name         string
		repoErr      error
		expectedKind domain.ErrorKind
		expectedMsg  string
	}{
		{name: "normalized error passed through", repoErr: upstream, expectedKind: domain.KindUpstream, expectedMsg: "Invalid symbol"},
		{name: "raw error becomes unknown", repoErr: errors.New("parse date \"x\""), expectedKind: domain.KindUnknown, expectedMsg: "parse date \"x\""},
		{name: "cancellation becomes transport", repoErr: context.Canceled, expectedKind: domain.KindTransport, expectedMsg: "context canceled"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &mockMarketRepository{
				GetEODFunc: func(ctx context.Context, req usecase.EODRequest) ([]entity.PriceRecord, error) {
					return nil, tt.repoErr
				},
			}
			uc := usecase.NewEODUsecase(repo)

			got, err := uc.FetchEOD(context.Background(), usecase.EODRequest{})

			assert.Nil(t, got)
			var fe *domain.FetchError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.expectedKind, fe.Kind)
			assert.Equal(t, tt.expectedMsg, fe.Message)
		})
	}
}

func TestEODUsecase_WithClock_NilIgnored(t *testing.T) {
	t.Parallel()

	uc := usecase.NewEODUsecase(&mockMarketRepository{}, usecase.WithClock(nil))
	req := uc.Normalize(usecase.EODRequest{})

	_, err := time.Parse(usecase.DateLayout, req.DateTo)
	assert.NoError(t, err)
}
