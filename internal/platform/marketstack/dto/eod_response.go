// Package dto defines data transfer objects for marketstack API responses.
package dto

import (
	"bytes"
	"encoding/json"
)

// EODResponse represents the JSON response from the marketstack eod endpoint.
type EODResponse struct {
	Pagination Pagination `json:"pagination"`
	Data       []EODValue `json:"data"`
}

// Pagination describes which slice of the result set a response holds.
type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Count  int `json:"count"`
	Total  int `json:"total"`
}

// EODValue is one trading day in an EODResponse.
type EODValue struct {
	Date     string  `json:"date"`
	Symbol   string  `json:"symbol"`
	Exchange string  `json:"exchange,omitempty"`
	Open     float64 `json:"open"`
	High     float64 `json:"high"`
	Low      float64 `json:"low"`
	Close    float64 `json:"close"`
	Volume   float64 `json:"volume"`
}

// ErrorResponse is the body marketstack sends with a non-success status.
// Code is kept raw since proxies send it as a string or a number.
type ErrorResponse struct {
	Error struct {
		Code    json.RawMessage `json:"code"`
		Message string          `json:"message"`
	} `json:"error"`
}

// CodeText returns error.code as text: strings unquoted, other values as
// written, "" when absent or null.
func (r ErrorResponse) CodeText() string {
	raw := bytes.TrimSpace(r.Error.Code)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
