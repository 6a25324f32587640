// ABOUTME: Standard HTTP client implementation with timeout support
// ABOUTME: Performs exactly one round trip per call, matching the one-attempt provider contract

package standard

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lexassist-api/core/interfaces"
)

const userAgent = "LexAssistAPI/1.0"

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client *http.Client
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, rawURL string, headers map[string]string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	return c.do(req, headers)
}

// PostForm performs an HTTP POST request with a URL-encoded form body
func (c *StandardHTTPClient) PostForm(ctx context.Context, rawURL string, form url.Values, headers map[string]string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req, headers)
}

// do applies common headers and performs a single attempt. There is no
// retry loop: each inbound request maps to at most one outbound round trip
// per provider call.
func (c *StandardHTTPClient) do(req *http.Request, headers map[string]string) (interfaces.Response, error) {
	req.Header.Set("User-Agent", userAgent)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface for standard library responses
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
