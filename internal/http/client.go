// Package http implements the transport layer: request signing, transport
// retries, 401 re-authentication, and translation of failure responses into
// the error taxonomy.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/alfawave-io/alfacrm/internal/auth"
	"github.com/alfawave-io/alfacrm/internal/constants"
	"github.com/alfawave-io/alfacrm/pkg/alfacrm"
)

// Request represents an API request. RawQuery is a pre-composed query string
// without the leading question mark; it is appended verbatim so parameter
// order is preserved.
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Body     interface{}
	Headers  map[string]string
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// JSON unmarshals the response body as a JSON object.
func (r *Response) JSON() (map[string]interface{}, error) {
	var parsed map[string]interface{}

	err := json.Unmarshal(r.Body, &parsed)
	if err != nil {
		return nil, fmt.Errorf("decoding response body: %w", err)
	}

	return parsed, nil
}

// Client sends authenticated requests to the API.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	tokenManager auth.TokenManager
	logger       alfacrm.Logger
	debug        bool
	userAgent    string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the structured logger.
func WithLogger(logger alfacrm.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig tunes transport-level retries.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithHTTPTimeout bounds each individual request attempt.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// NewClient creates an API transport bound to a base URL and token source.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil
	retryClient.CheckRetry = transportRetryPolicy

	client := &Client{
		baseURL:      baseURL,
		httpClient:   retryClient,
		tokenManager: tokenManager,
		userAgent:    "alfacrm-go",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// transportRetryPolicy retries connection-level failures only. A response
// with any HTTP status is final; status handling is the caller's job.
func transportRetryPolicy(ctx context.Context, resp *nethttp.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err != nil {
		return true, nil
	}

	return false, nil
}

// Do sends the request. A 401 response invalidates the held token and repeats
// the request once with a fresh one; a second 401 surfaces as an
// AuthenticationError like any other translated failure status.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	resp, err := c.send(ctx, req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == nethttp.StatusUnauthorized && c.tokenManager != nil {
		c.tokenManager.Invalidate()

		resp, err = c.send(ctx, req)
		if err != nil {
			return nil, err
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := resp.JSON()

		return nil, alfacrm.TranslateStatus(resp.StatusCode, body)
	}

	return resp, nil
}

// Post sends a POST request, the only method the API uses.
func (c *Client) Post(ctx context.Context, path, rawQuery string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:   nethttp.MethodPost,
		Path:     path,
		RawQuery: rawQuery,
		Body:     body,
	})
}

func (c *Client) send(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if req.RawQuery != "" {
		fullURL += "?" + req.RawQuery
	}

	var payload []byte

	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		payload = encoded
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, payload)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if c.tokenManager != nil {
		token, err := c.tokenManager.Token(ctx)
		if err != nil {
			return nil, err
		}

		httpReq.Header.Set(constants.TokenHeader, token)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &alfacrm.ConnectionError{Err: err}
	}
	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &alfacrm.ConnectionError{Err: err}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": httpResp.StatusCode,
			"url":    fullURL,
			"bytes":  len(body),
		})
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}, nil
}
