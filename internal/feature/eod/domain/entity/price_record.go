// Package entity defines the domain models for the end-of-day chart feature.
package entity

import (
	"errors"
	"fmt"
	"time"
)

// PriceRecord is one trading day of OHLCV data for a single symbol.
type PriceRecord struct {
	Date   time.Time // Trading day
	Symbol string    // Ticker symbol (e.g. "AAPL")
	Open   float64   // Opening price
	High   float64   // Highest price of the day
	Low    float64   // Lowest price of the day
	Close  float64   // Closing price
	Volume int64     // Traded volume
}

// Validate reports prices or volume that break low <= {open, close} <= high
// or are negative. It does not modify the record.
func (r PriceRecord) Validate() error {
	var errs []error
	if r.Open < 0 || r.High < 0 || r.Low < 0 || r.Close < 0 {
		errs = append(errs, errors.New("negative price"))
	}
	if r.Volume < 0 {
		errs = append(errs, errors.New("negative volume"))
	}
	if r.Low > r.Open || r.Low > r.Close {
		errs = append(errs, fmt.Errorf("low %.4f above open/close", r.Low))
	}
	if r.High < r.Open || r.High < r.Close {
		errs = append(errs, fmt.Errorf("high %.4f below open/close", r.High))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%s %s: %w", r.Symbol, r.Date.Format(time.DateOnly), errors.Join(errs...))
}
