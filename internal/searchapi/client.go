// Package searchapi provides the HTTP client for the remote search endpoint.
package searchapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"searchbox/internal/domain"
)

// maxBodyBytes caps how much of a response is read
const maxBodyBytes = 8 << 20

// Searcher runs a query against a search backend
type Searcher interface {
	Search(ctx context.Context, query string) (*Response, error)
}

// Response is a decoded search response
type Response struct {
	Items   []domain.ResultItem
	Dropped int // array entries that were not result objects
}

// Config holds configuration for creating a client
type Config struct {
	Endpoint   string
	Path       string
	QueryParam string
	Timeout    time.Duration
	RateLimit  float64 // requests per second, 0 disables throttling
	Burst      int
	HTTPClient *http.Client
}

// Client issues GET <endpoint><path>?<param>=<query>
type Client struct {
	baseURL    string
	path       string
	queryParam string
	httpClient *http.Client
	limiter    *rate.Limiter
	group      singleflight.Group
}

// Compile-time check that Client implements Searcher.
var _ Searcher = (*Client)(nil)

// New creates a new search client
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("search endpoint is required")
	}

	parsedURL, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint URL: %w", err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, fmt.Errorf("endpoint scheme must be http or https, got: %s", parsedURL.Scheme)
	}
	if parsedURL.Host == "" {
		return nil, fmt.Errorf("endpoint must include a host (e.g., http://localhost:8080)")
	}

	path := cfg.Path
	if path == "" {
		path = "/api/search"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	param := cfg.QueryParam
	if param == "" {
		param = "q"
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.Endpoint, "/"),
		path:       path,
		queryParam: param,
		httpClient: httpClient,
		limiter:    limiter,
	}, nil
}

// SearchURL returns the request URL for query. The query is sent verbatim,
// URL-escaped, with no trimming.
func (c *Client) SearchURL(query string) string {
	v := url.Values{}
	v.Set(c.queryParam, query)
	return c.baseURL + c.path + "?" + v.Encode()
}

// Search fetches results for query. Concurrent calls for the same query
// share one request.
func (c *Client) Search(ctx context.Context, query string) (*Response, error) {
	ch := c.group.DoChan(query, func() (interface{}, error) {
		return c.fetch(ctx, query)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Response), nil
	}
}

func (c *Client) fetch(ctx context.Context, query string) (*Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.SearchURL(query), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, handleErrorResponse(resp)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}

	items, dropped, err := domain.DecodeResults(body)
	if err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	log.Printf("Search %q returned %d results (%d dropped) in %s", query, len(items), dropped, time.Since(start))

	return &Response{Items: items, Dropped: dropped}, nil
}

// StatusError is returned for non-2xx responses
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("search API error (%d): %s", e.StatusCode, e.Message)
}

// apiError represents an error response from the API.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// handleErrorResponse reads an error response and returns a *StatusError
func handleErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil {
		if apiErr.Message != "" {
			return &StatusError{StatusCode: resp.StatusCode, Message: apiErr.Message}
		}
		if apiErr.Error != "" {
			return &StatusError{StatusCode: resp.StatusCode, Message: apiErr.Error}
		}
	}

	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &StatusError{StatusCode: resp.StatusCode, Message: msg}
}
