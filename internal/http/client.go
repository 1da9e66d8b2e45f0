// Package http sends signed requests to the API and returns raw responses.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"

	"github.com/fivetwenty-io/lemonsqueezy/internal/constants"
)

// Request is an outgoing API request. Body, when set, is already encoded.
type Request struct {
	Method string
	URL    *url.URL
	Body   []byte
}

// Response is the raw result of a round trip.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Client sends signed requests. It is safe for concurrent use; nothing in
// it changes after NewClient returns.
type Client struct {
	httpClient *retryablehttp.Client
	apiKey     string
	userAgent  string
	logger     zerolog.Logger
	debug      bool
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug and transport logs.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug logs every request and response.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient sends requests through a copy of httpClient. The caller's
// client is never modified; its Transport is shared.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			hc := *httpClient
			c.httpClient.HTTPClient = &hc
		}
	}
}

// WithTimeout bounds each round trip.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// NewClient creates a client that signs every request with apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.CheckRetry = neverRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		httpClient: retryClient,
		apiKey:     apiKey,
		userAgent:  constants.DefaultUserAgent,
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.timeout > 0 {
		retryClient.HTTPClient.Timeout = client.timeout
	}

	retryClient.Logger = &leveledLogger{logger: client.logger}

	return client
}

// String redacts the API key.
func (c *Client) String() string {
	return fmt.Sprintf("http.Client{userAgent: %q, apiKey: %s}", c.userAgent, constants.RedactedValue)
}

// Sign sets the method and the authorization and JSON:API content headers.
func Sign(req *http.Request, method, apiKey string) {
	req.Method = method
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", constants.MediaTypeJSONAPI)
	req.Header.Set("Accept", constants.MediaTypeJSONAPI)
}

// Do signs and sends req and returns the response whatever its status.
// Transport errors, including context cancellation, are returned unchanged.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	var body interface{}
	if req.Body != nil {
		body = req.Body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, req.URL.String(), body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	Sign(httpReq.Request, req.Method, c.apiKey)

	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	if c.debug {
		c.logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Int("body_bytes", len(req.Body)).
			Msg("HTTP Request")
	}

	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}

	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if c.debug {
		c.logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Int("status", resp.StatusCode).
			Int("body_bytes", len(respBody)).
			Dur("duration", time.Since(start)).
			Msg("HTTP Response")
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

func neverRetry(_ context.Context, _ *http.Response, _ error) (bool, error) {
	return false, nil
}
