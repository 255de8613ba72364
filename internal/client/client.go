// Package client provides an HTTP client for the portfolio backend API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/roland/portfolio/internal/comment"
	"github.com/roland/portfolio/internal/login"
)

var (
	// ErrNetwork means the request failed or the backend answered with a non-2xx status.
	ErrNetwork = errors.New("network failure")
	// ErrParse means the response body did not have the expected shape.
	ErrParse = errors.New("parse failure")
)

// StatusError carries the HTTP status of a non-OK backend response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned %d %s", e.Code, http.StatusText(e.Code))
}

// Is lets errors.Is(err, ErrNetwork) match status failures.
func (e *StatusError) Is(target error) bool {
	return target == ErrNetwork
}

// Client is an HTTP client for the portfolio backend.
type Client struct {
	baseURL    *url.URL
	cookies    []*http.Cookie
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds each request. Zero leaves the platform default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithCookies forwards the visitor's cookies so the backend sees its session.
func WithCookies(cookies []*http.Cookie) Option {
	return func(c *Client) {
		c.cookies = cookies
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a backend client rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing backend URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("backend URL %q must be absolute", baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	// The delete endpoint answers with a redirect back to the page.
	hc := *c.httpClient
	hc.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	c.httpClient = &hc
	return c, nil
}

// BaseURL returns the backend root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Comments returns up to n comments in backend order.
func (c *Client) Comments(ctx context.Context, n int) ([]comment.Comment, error) {
	path := "/data?numComments=" + strconv.Itoa(n)

	var comments []comment.Comment
	if err := c.getJSON(ctx, path, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// LoginStatus returns the visitor's session state.
func (c *Client) LoginStatus(ctx context.Context) (*login.Status, error) {
	var status login.Status
	if err := c.getJSON(ctx, "/login", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// DeleteComments removes every stored comment. The backend answers with a
// redirect back to its page, so 3xx counts as success here.
func (c *Client) DeleteComments(ctx context.Context) error {
	_, err := c.send(ctx, http.MethodPost, "/delete-data", successOrRedirect)
	return err
}

// UploadURL fetches a one-time blob upload URL, resolved against the backend.
func (c *Client) UploadURL(ctx context.Context) (string, error) {
	body, err := c.do(ctx, http.MethodGet, "/blobstore-upload-url")
	if err != nil {
		return "", err
	}

	raw := strings.TrimSpace(string(body))
	if raw == "" {
		return "", fmt.Errorf("%w: empty upload URL", ErrParse)
	}
	resolved, err := c.ResolveURL(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParse, err)
	}
	return resolved, nil
}

// ResolveURL resolves a backend-relative reference against the base URL.
// Absolute references are returned unchanged.
func (c *Client) ResolveURL(ref string) (string, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("parsing URL %q: %w", ref, err)
	}
	return c.baseURL.ResolveReference(u).String(), nil
}

// getJSON performs a GET request and decodes a JSON response.
func (c *Client) getJSON(ctx context.Context, path string, result interface{}) error {
	body, err := c.do(ctx, http.MethodGet, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", ErrParse, path, err)
	}
	return nil
}

func success(code int) bool {
	return code >= 200 && code < 300
}

func successOrRedirect(code int) bool {
	return code >= 200 && code < 400
}

// do executes a request and returns the body of a 2xx response.
func (c *Client) do(ctx context.Context, method, path string) ([]byte, error) {
	return c.send(ctx, method, path, success)
}

// send executes a request and returns the body when accept allows its status.
// Redirects are never followed.
func (c *Client) send(ctx context.Context, method, path string, accept func(int) bool) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrNetwork, method, path, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			slog.Warn("closing response body", "path", path, "error", cerr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrNetwork, path, err)
	}

	if !accept(resp.StatusCode) {
		return nil, fmt.Errorf("%s %s: %w", method, path, &StatusError{Code: resp.StatusCode})
	}

	return body, nil
}
