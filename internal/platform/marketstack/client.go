package marketstack

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Client performs authenticated GET requests against the marketstack API.
// Each call issues exactly one request; nothing is retried.
type Client struct {
	cfg Config
	rc  *resty.Client
}

// NewClient creates a Client on top of the given *http.Client.
// The access key is taken from cfg once and sent with every request.
func NewClient(cfg Config, hc *http.Client) *Client {
	if cfg.APIPrefix == "" {
		cfg.APIPrefix = DefaultAPIPrefix
	}
	cfg.APIPrefix = "/" + strings.Trim(cfg.APIPrefix, "/")

	rc := resty.NewWithClient(hc).
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetRetryCount(0).
		SetHeaders(map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		})

	return &Client{cfg: cfg, rc: rc}
}

// Path returns the request path and query for endpoint, without the base URL.
func (c *Client) Path(endpoint string, q Query) (string, error) {
	ep := strings.Trim(endpoint, "/")
	if ep == "" {
		return "", ErrEmptyEndpoint
	}
	return c.cfg.APIPrefix + "/" + url.PathEscape(ep) + "?" + BuildQueryString(c.cfg.AccessKey, q), nil
}

// FetchJSON issues GET {prefix}/{endpoint}?access_key=...&{query} and decodes
// a success body into out.
//
// Failures come back in one of three shapes:
//   - *TransportError when no response was received
//   - *UpstreamError with the raw body text on a non-2xx status
//   - *DecodeError when a 2xx body is not valid JSON
func (c *Client) FetchJSON(ctx context.Context, endpoint string, q Query, out any) error {
	path, err := c.Path(endpoint, q)
	if err != nil {
		return err
	}

	slog.Debug("marketstack request", "endpoint", endpoint, "query", q.Encode())

	resp, err := c.rc.R().SetContext(ctx).Get(path)
	if err != nil {
		return &TransportError{Err: err}
	}

	if !resp.IsSuccess() {
		slog.Warn("marketstack non-success response", "endpoint", endpoint, "status", resp.StatusCode())
		return &UpstreamError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}
