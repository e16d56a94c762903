// Package httpclient talks to the Hydra backend API. Failures are reported
// through a Logger (normally the clientlog service) using a fixed taxonomy:
// server errors, timeouts and unexpected failures go to the backend, client
// errors stay in the local log.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"thirdcoast.systems/hydra/internal/services/clientlog"
)

const maxBodyBytes = 8 << 20

// Logger receives failure reports. *clientlog.Service satisfies it.
type Logger interface {
	LogError(ctx context.Context, message string, opts ...clientlog.Option)
	LogWarning(ctx context.Context, message, url string)
}

type nopLogger struct{}

func (nopLogger) LogError(context.Context, string, ...clientlog.Option) {}
func (nopLogger) LogWarning(context.Context, string, string)            {}

// TokenSource returns the bearer token for outgoing requests, or "".
type TokenSource func(ctx context.Context) string

// StatusError is returned by the plain calls for non-2xx responses.
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("httpclient: %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("httpclient: %s: unexpected status %d: %s", e.URL, e.StatusCode, e.Body)
}

type Client struct {
	baseURL string
	http    *http.Client
	log     Logger
	token   TokenSource
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying client. Apply it before WithTimeout
// if both are used.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.token = ts }
}

// New returns a Client for baseURL. A nil logger discards reports.
func New(baseURL string, logger Logger, opts ...Option) *Client {
	if logger == nil {
		logger = nopLogger{}
	}
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) resolve(url string) string {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	return c.baseURL + "/" + strings.TrimLeft(url, "/")
}

type response struct {
	status     int
	statusText string
	body       []byte
}

func (r *response) ok() bool {
	return r.status >= 200 && r.status < 300
}

// do sends a request and reads the whole body. Only transport failures are
// returned as errors; status handling is left to the caller.
func (c *Client) do(ctx context.Context, method, url string, payload any) (*response, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.resolve(url), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if tok := c.token(ctx); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	slog.DebugContext(ctx, "api response",
		"method", method, "url", url, "status", resp.StatusCode, "size", humanize.Bytes(uint64(len(b))))

	return &response{status: resp.StatusCode, statusText: resp.Status, body: b}, nil
}

// report classifies err and logs it. The error is returned unchanged.
func (c *Client) report(ctx context.Context, url string, err error) error {
	var se *StatusError
	switch {
	case errors.As(err, &se) && se.StatusCode >= http.StatusInternalServerError:
		c.log.LogError(ctx, "Server Error: "+url,
			clientlog.WithStackTrace(err.Error()),
			clientlog.WithURL(url),
			clientlog.WithStatusCode(se.StatusCode))
	case se != nil:
		slog.WarnContext(ctx, "client error", "status", se.StatusCode, "url", url, "error", err)
	case errors.Is(err, context.Canceled):
		slog.DebugContext(ctx, "request canceled", "url", url)
	case isTimeout(err):
		c.log.LogError(ctx, "Request Timeout: "+url,
			clientlog.WithStackTrace(err.Error()),
			clientlog.WithURL(url),
			clientlog.WithStatusCode(http.StatusRequestTimeout))
	default:
		c.log.LogError(ctx, "Unexpected Error: "+url,
			clientlog.WithStackTrace(err.Error()),
			clientlog.WithURL(url))
	}
	return err
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func (c *Client) send(ctx context.Context, method, url string, payload any) (*response, error) {
	resp, err := c.do(ctx, method, url, payload)
	if err != nil {
		return nil, c.report(ctx, url, fmt.Errorf("%s %s: %w", method, url, err))
	}
	if !resp.ok() {
		return nil, c.report(ctx, url, &StatusError{
			StatusCode: resp.status,
			Status:     resp.statusText,
			URL:        url,
			Body:       strings.TrimSpace(string(truncate(resp.body, 512))),
		})
	}
	return resp, nil
}

func call[T any](ctx context.Context, c *Client, method, url string, payload any) (T, error) {
	var out T

	resp, err := c.send(ctx, method, url, payload)
	if err != nil {
		return out, err
	}
	if len(bytes.TrimSpace(resp.body)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(resp.body, &out); err != nil {
		return out, c.report(ctx, url, fmt.Errorf("decode %s: %w", url, err))
	}
	return out, nil
}

func truncate(b []byte, n int) []byte {
	if len(b) > n {
		return b[:n]
	}
	return b
}

// Get fetches url and decodes the JSON body into T. An empty body yields the
// zero value.
func Get[T any](ctx context.Context, c *Client, url string) (T, error) {
	return call[T](ctx, c, http.MethodGet, url, nil)
}

func Post[Req, Resp any](ctx context.Context, c *Client, url string, data Req) (Resp, error) {
	return call[Resp](ctx, c, http.MethodPost, url, data)
}

// PostNoContent posts data and discards any response body.
func PostNoContent[Req any](ctx context.Context, c *Client, url string, data Req) error {
	_, err := c.send(ctx, http.MethodPost, url, data)
	return err
}

func Put[Req, Resp any](ctx context.Context, c *Client, url string, data Req) (Resp, error) {
	return call[Resp](ctx, c, http.MethodPut, url, data)
}

func Delete[T any](ctx context.Context, c *Client, url string) (T, error) {
	return call[T](ctx, c, http.MethodDelete, url, nil)
}
