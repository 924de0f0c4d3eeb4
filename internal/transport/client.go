// Package transport provides the HTTP client used to read the registries:
// authenticated JSON GETs with retries and exponential backoff.
package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"

	"github.com/agentstation/teammap/pkg/constants"
	"github.com/agentstation/teammap/pkg/errors"
)

// Client performs authenticated, retrying requests against one registry.
type Client struct {
	name  string
	http  *retryablehttp.Client
	auth  Authenticator
	token string
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-attempt timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.HTTPClient.Timeout = d
		}
	}
}

// WithRetries sets how many times a failed request is retried.
func WithRetries(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.http.RetryMax = n
		}
	}
}

// WithBackoff sets the minimum and maximum wait between retries.
func WithBackoff(minWait, maxWait time.Duration) Option {
	return func(c *Client) {
		c.http.RetryWaitMin = minWait
		c.http.RetryWaitMax = maxWait
	}
}

// WithLogger routes retry diagnostics to logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.http.Logger = leveledLogger{logger: logger}
		}
	}
}

// New creates a client for the registry called name. An empty token skips
// authentication.
func New(name string, auth Authenticator, token string, opts ...Option) *Client {
	if auth == nil || token == "" {
		auth = &NoAuth{}
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	rc.RetryMax = constants.MaxRetries
	rc.RetryWaitMin = constants.RetryBackoff
	rc.RetryWaitMax = constants.MaxRetryBackoff
	rc.Logger = nil
	// Hand the last response back instead of a generic "giving up" error so
	// the status code can be classified.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	c := &Client{name: name, http: rc, auth: auth, token: token}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the registry name used in errors.
func (c *Client) Name() string {
	return c.name
}

// Get performs a GET request with authentication applied.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapResource("create", "request", "GET "+url, err)
	}
	req.Header.Set("Accept", "application/json")
	c.auth.Apply(req.Request, c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &errors.APIError{
			Registry: c.name,
			Endpoint: url,
			Message:  "request failed",
			Err:      err,
		}
	}
	return resp, nil
}

// GetJSON fetches url and decodes a JSON body into target. Non-2xx
// responses become typed errors: 401 and 403 an AuthenticationError, 404 a
// NotFoundError, anything else an APIError.
func (c *Client) GetJSON(ctx context.Context, url string, target any) error {
	resp, err := c.Get(ctx, url)
	if err != nil {
		return err
	}
	return DecodeResponse(c.name, url, c.auth.Method(), resp, target)
}
