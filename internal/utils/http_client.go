package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{Timeout: 10 * time.Second})
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures [NewHTTPClient]. Zero values keep resty
// defaults.
type HTTPClientOptions struct {
	// Timeout bounds a single request including retries of the transport.
	Timeout time.Duration
	// RetryCount is the number of additional attempts on throttling (429)
	// and server (5xx) responses.
	RetryCount int
	// RetryWaitTime is the initial backoff between attempts.
	RetryWaitTime time.Duration
	// UserAgent is sent with every request when non-empty.
	UserAgent string
}

// NewHTTPClient creates and returns a new HTTPClient instance configured
// from opts.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New()

	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}
	if opts.RetryCount > 0 {
		client.SetRetryCount(opts.RetryCount)
		if opts.RetryWaitTime > 0 {
			client.SetRetryWaitTime(opts.RetryWaitTime)
		}
		client.AddRetryCondition(RetryOnThrottleOrServerError)
	}

	return &HTTPClient{Client: client}
}

// RetryOnThrottleOrServerError is a resty retry condition that retries 429
// and 5xx responses.
func RetryOnThrottleOrServerError(r *resty.Response, err error) bool {
	if err != nil || r == nil {
		return false
	}
	code := r.StatusCode()
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
