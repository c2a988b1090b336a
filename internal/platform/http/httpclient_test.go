package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		timeout         time.Duration
		expectedTimeout time.Duration
	}{
		{name: "positive timeout kept", timeout: 10 * time.Second, expectedTimeout: 10 * time.Second},
		{name: "zero means no client timeout", timeout: 0, expectedTimeout: 0},
		{name: "negative clamped to zero", timeout: -time.Second, expectedTimeout: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewHTTPClient(tt.timeout)

			require.NotNil(t, c)
			assert.Equal(t, tt.expectedTimeout, c.Timeout)

			tr, ok := c.Transport.(*http.Transport)
			require.True(t, ok, "transport should be *http.Transport")
			assert.NotNil(t, tr.Proxy)
			assert.NotNil(t, tr.DialContext)
			assert.Equal(t, 5*time.Second, tr.TLSHandshakeTimeout)
			assert.Equal(t, 4, tr.MaxIdleConnsPerHost)
		})
	}
}
