package dto

// ChartResponse is the body of GET /api/chart.
type ChartResponse struct {
	Status    string        `json:"status"`
	IsLoading bool          `json:"is_loading"`
	IsError   bool          `json:"is_error"`
	Symbol    string        `json:"symbol"`
	Error     *ErrorDetail  `json:"error,omitempty"`
	Options   *ChartOptions `json:"options,omitempty"`
	Records   int           `json:"records"`
}

// ErrorDetail describes a failed fetch.
type ErrorDetail struct {
	Kind       string `json:"kind"`
	Code       string `json:"code,omitempty"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code,omitempty"`
}

// ErrorResponse is the generic error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
