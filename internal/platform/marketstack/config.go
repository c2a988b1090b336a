// Package marketstack provides the client for the marketstack end-of-day API.
package marketstack

import "time"

// DefaultAPIPrefix is the path prefix every endpoint is appended to.
const DefaultAPIPrefix = "/api"

// Config holds configuration for the marketstack client.
type Config struct {
	BaseURL   string        // Scheme and host of the upstream (e.g. "http://api.marketstack.com")
	APIPrefix string        // Path prefix before the endpoint (e.g. "/api" or "/v1")
	AccessKey string        // Sent as the access_key query parameter on every request
	Timeout   time.Duration // Whole-request timeout; zero disables it
}
