package marketstack

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"stockchart/internal/feature/eod/domain"
	"stockchart/internal/platform/marketstack/dto"
)

// NormalizeError maps any error returned by FetchJSON to a *domain.FetchError
// whose Message is safe to show as-is. It never fails, whatever the payload.
func NormalizeError(err error) *domain.FetchError {
	if err == nil {
		return nil
	}

	var trErr *TransportError
	if errors.As(err, &trErr) {
		msg := "request failed"
		if trErr.Err != nil {
			msg = trErr.Err.Error()
		}
		return &domain.FetchError{Kind: domain.KindTransport, Message: msg, Err: err}
	}

	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		fe := &domain.FetchError{Kind: domain.KindUpstream, StatusCode: upErr.StatusCode, Err: err}

		var body dto.ErrorResponse
		if json.Unmarshal([]byte(upErr.Body), &body) == nil && body.Error.Message != "" {
			fe.Code = body.CodeText()
			fe.Message = body.Error.Message
			return fe
		}
		if text := strings.TrimSpace(upErr.Body); text != "" {
			fe.Message = text
			return fe
		}
		fe.Message = fmt.Sprintf("upstream request failed with status %d", upErr.StatusCode)
		return fe
	}

	return domain.AsFetchError(err)
}
