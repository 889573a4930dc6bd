package pupbowl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// API defines the roster operations the UI depends on.
// This interface is implemented by *Client and can be used for testing.
type API interface {
	ListPlayers(ctx context.Context) ([]Player, error)
	GetPlayer(ctx context.Context, id int) (Player, error)
	CreatePlayer(ctx context.Context, params CreatePlayerParams) (Player, error)
	DeletePlayer(ctx context.Context, id int) error
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Client talks to the Puppy Bowl players HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultUserAgent      = "kennel/0.1"
	defaultRequestTimeout = 5 * time.Second
)

// NewClient builds a Client for the given cohort base URL. The URL must
// include the cohort path segment; endpoint paths are appended to it.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// ListPlayers retrieves the full roster.
func (c *Client) ListPlayers(ctx context.Context) ([]Player, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload PlayerListResponse
	if err := c.do(ctx, http.MethodGet, c.endpoint("players"), nil, &payload); err != nil {
		return nil, err
	}
	if !payload.Success {
		return nil, envelopeFailure(payload.Error)
	}
	if payload.Data.Players == nil {
		return nil, fmt.Errorf("malformed envelope: players missing")
	}
	return payload.Data.Players, nil
}

// GetPlayer retrieves a single player by id.
func (c *Client) GetPlayer(ctx context.Context, id int) (Player, error) {
	if c == nil {
		return Player{}, fmt.Errorf("client is nil")
	}
	var payload PlayerResponse
	if err := c.do(ctx, http.MethodGet, c.endpoint("players", strconv.Itoa(id)), nil, &payload); err != nil {
		return Player{}, err
	}
	if payload.Data.Player == nil {
		return Player{}, fmt.Errorf("malformed envelope: player missing")
	}
	return *payload.Data.Player, nil
}

// CreatePlayer adds a player to the roster and returns the created entry.
func (c *Client) CreatePlayer(ctx context.Context, params CreatePlayerParams) (Player, error) {
	if c == nil {
		return Player{}, fmt.Errorf("client is nil")
	}
	var payload PlayerResponse
	if err := c.do(ctx, http.MethodPost, c.endpoint("players"), params, &payload); err != nil {
		return Player{}, err
	}
	if payload.Data.Player == nil {
		return Player{}, fmt.Errorf("malformed envelope: player missing")
	}
	return *payload.Data.Player, nil
}

// DeletePlayer removes a player from the roster.
func (c *Client) DeletePlayer(ctx context.Context, id int) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodDelete, c.endpoint("players", strconv.Itoa(id)), nil, nil)
}

func (c *Client) endpoint(parts ...string) *url.URL {
	return c.baseURL.JoinPath(parts...)
}

func (c *Client) do(ctx context.Context, method string, reqURL *url.URL, body, dest any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !isSuccessStatusCode(resp.StatusCode) {
		return newRequestError(reqURL, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func envelopeFailure(e *EnvelopeError) error {
	if e != nil && e.Message != "" {
		return fmt.Errorf("api reported failure: %s", e.Message)
	}
	return fmt.Errorf("api reported failure")
}

// RequestError describes a non-2xx response from the players API.
type RequestError struct {
	requestURL *url.URL
	statusCode int
}

func newRequestError(requestURL *url.URL, statusCode int) *RequestError {
	return &RequestError{
		requestURL: requestURL,
		statusCode: statusCode,
	}
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request to %s failed with status code %d", e.requestURL, e.statusCode)
}

// StatusCode returns the HTTP status code of the failed request.
func (e *RequestError) StatusCode() int {
	return e.statusCode
}

func isSuccessStatusCode(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("api url required")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", raw, err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
