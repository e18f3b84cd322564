// Package remote issues single-attempt JSON calls to the provider proxies.
//
// There is no retry, backoff or circuit breaking here: a failed call is
// reported once as ErrRemoteCallFailed and the caller decides what it means.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// ErrRemoteCallFailed is matched by every transport or HTTP status failure.
var ErrRemoteCallFailed = errors.New("remote call failed")

// CallError describes a failed remote call.
type CallError struct {
	Method     string
	Path       string
	StatusCode int // zero when no response was received
	Body       string
	Err        error
}

func (e *CallError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Body != "":
		return fmt.Sprintf("%s: %s %s: status %d: %s", ErrRemoteCallFailed, e.Method, e.Path, e.StatusCode, e.Body)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: %s %s: status %d", ErrRemoteCallFailed, e.Method, e.Path, e.StatusCode)
	}

	return fmt.Sprintf("%s: %s %s: %v", ErrRemoteCallFailed, e.Method, e.Path, e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrRemoteCallFailed) work for *CallError.
func (e *CallError) Is(target error) bool {
	return target == ErrRemoteCallFailed
}

// maxErrorBody caps how much of an error response is kept in CallError.Body.
const maxErrorBody = 512

// Client is a thin JSON-over-HTTP caller bound to one base URL.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets a bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithTimeout sets the timeout of the underlying http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithRateLimit caps outgoing calls to rps per second. Zero disables the limit.
func WithRateLimit(rps int) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), rps)
		}
	}
}

// New creates a Client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Do sends one request and returns the raw response body of a 2xx response.
//
// in is encoded as JSON when not nil.
func (c *Client) Do(ctx context.Context, method, path string, in any) ([]byte, error) {
	fail := func(status int, body string, err error) error {
		return &CallError{Method: method, Path: path, StatusCode: status, Body: body, Err: err}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fail(0, "", fmt.Errorf("rate limit: %w", err))
		}
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fail(0, "", fmt.Errorf("build request: %w", err))
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fail(0, "", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fail(resp.StatusCode, "", fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		text := strings.TrimSpace(string(raw))
		if len(text) > maxErrorBody {
			text = text[:maxErrorBody]
		}

		return nil, fail(resp.StatusCode, text, errors.New(resp.Status))
	}

	return raw, nil
}
