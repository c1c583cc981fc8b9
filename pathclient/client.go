// Package pathclient talks to the external shortest-path service.
//
// The service takes {"source", "destination"} as a JSON POST and answers
// either {"path": [...], "distance": n} or, with a non-success status,
// {"error": "..."}. Exactly one attempt is made per call.
package pathclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/you/pathfinder/models"
)

const (
	// DefaultEndpoint is where the path service listens in local development.
	DefaultEndpoint = "http://localhost:5000/find_shortest_path"

	// maxResponseBytes bounds how much of a response body is read.
	maxResponseBytes = 1 << 20

	httpMaxIdleConns    = 10
	httpIdleConnTimeout = 30 * time.Second
)

// Client implements the path service wire contract over HTTP
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithTimeout bounds each call. Zero (the default) means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a Client posting to endpoint
func New(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        httpMaxIdleConns,
				MaxIdleConnsPerHost: httpMaxIdleConns,
				IdleConnTimeout:     httpIdleConnTimeout,
			},
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Endpoint returns the URL requests are sent to
func (c *Client) Endpoint() string {
	return c.endpoint
}

// FindPath asks the service for the shortest route from source to destination.
// Failures are reported as *ServerError (the service answered with a
// non-success status and a JSON body) or *TransportError (anything else).
func (c *Client) FindPath(ctx context.Context, source, destination string) (*models.PathResult, error) {
	body, err := json.Marshal(models.PathRequest{Source: source, Destination: destination})
	if err != nil {
		return nil, &TransportError{Op: "marshal request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Op: "create request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "http", Err: err}
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &TransportError{Op: "read response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newServerError(resp.StatusCode, respBytes)
	}

	var result models.PathResult
	if err := json.Unmarshal(respBytes, &result); err != nil {
		return nil, &TransportError{Op: "unmarshal response", Err: err}
	}
	if len(result.Path) == 0 {
		return nil, &TransportError{Op: "unmarshal response", Err: fmt.Errorf("response has no path")}
	}

	return &result, nil
}

// newServerError decodes a non-success answer. A body that is not JSON
// (a proxy error page, an empty reply) means no usable answer came back.
func newServerError(status int, body []byte) error {
	var apiErr models.PathError
	if err := json.Unmarshal(body, &apiErr); err != nil {
		return &TransportError{Op: "unmarshal response", Err: fmt.Errorf("status %d: %w", status, err)}
	}
	return &ServerError{StatusCode: status, Message: apiErr.Error}
}
