package marketstack

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockchart/internal/feature/eod/domain"
)

func TestNormalizeError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		err            error
		expectedKind   domain.ErrorKind
		expectedMsg    string
		expectedCode   string
		expectedStatus int
	}{
		{
			name:           "structured upstream error",
			err:            &UpstreamError{StatusCode: 422, Body: `{"error":{"message":"Invalid symbol"}}`},
			expectedKind:   domain.KindUpstream,
			expectedMsg:    "Invalid symbol",
			expectedStatus: 422,
		},
		{
			name:           "structured upstream error with code",
			err:            &UpstreamError{StatusCode: 401, Body: `{"error":{"code":"invalid_access_key","message":"You have not supplied a valid API Access Key."}}`},
			expectedKind:   domain.KindUpstream,
			expectedMsg:    "You have not supplied a valid API Access Key.",
			expectedCode:   "invalid_access_key",
			expectedStatus: 401,
		},
		{
			name:           "structured upstream error with numeric code",
			err:            &UpstreamError{StatusCode: 404, Body: `{"error":{"code":404,"message":"Invalid symbol"}}`},
			expectedKind:   domain.KindUpstream,
			expectedMsg:    "Invalid symbol",
			expectedCode:   "404",
			expectedStatus: 404,
		},
		{
			name:           "structured upstream error with null code",
			err:            &UpstreamError{StatusCode: 422, Body: `{"error":{"code":null,"message":"Invalid symbol"}}`},
			expectedKind:   domain.KindUpstream,
			expectedMsg:    "Invalid symbol",
			expectedStatus: 422,
		},
		{
			name:           "plain text upstream body",
			err:            &UpstreamError{StatusCode: 502, Body: "  Bad Gateway\n"},
			expectedKind:   domain.KindUpstream,
			expectedMsg:    "Bad Gateway",
			expectedStatus: 502,
		},
		{
			name:           "json body without error message falls back to text",
			err:            &UpstreamError{StatusCode: 500, Body: `{"error":{}}`},
			expectedKind:   domain.KindUpstream,
			expectedMsg:    `{"error":{}}`,
			expectedStatus: 500,
		},
		{
			name:           "json string body",
			err:            &UpstreamError{StatusCode: 500, Body: `"oops"`},
			expectedKind:   domain.KindUpstream,
			expectedMsg:    `"oops"`,
			expectedStatus: 500,
		},
		{
			name:           "empty upstream body",
			err:            &UpstreamError{StatusCode: 503},
			expectedKind:   domain.KindUpstream,
			expectedMsg:    "upstream request failed with status 503",
			expectedStatus: 503,
		},
		{
			name:         "transport error",
			err:          &TransportError{Err: errors.New("dial tcp 127.0.0.1:1: connect: connection refused")},
			expectedKind: domain.KindTransport,
			expectedMsg:  "dial tcp 127.0.0.1:1: connect: connection refused",
		},
		{
			name:         "transport error without cause",
			err:          &TransportError{},
			expectedKind: domain.KindTransport,
			expectedMsg:  "request failed",
		},
		{
			name:         "decode error",
			err:          &DecodeError{Err: errors.New("invalid character 'i'")},
			expectedKind: domain.KindUnknown,
			expectedMsg:  "marketstack decode: invalid character 'i'",
		},
		{
			name:         "anything else",
			err:          ErrEmptyEndpoint,
			expectedKind: domain.KindUnknown,
			expectedMsg:  "marketstack: endpoint is required",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fe := NormalizeError(tt.err)

			require.NotNil(t, fe)
			assert.Equal(t, tt.expectedKind, fe.Kind)
			assert.Equal(t, tt.expectedMsg, fe.Message)
			assert.Equal(t, tt.expectedCode, fe.Code)
			assert.Equal(t, tt.expectedStatus, fe.StatusCode)
			assert.ErrorIs(t, fe, tt.err)
		})
	}
}

func TestNormalizeError_Nil(t *testing.T) {
	t.Parallel()
	assert.Nil(t, NormalizeError(nil))
}
