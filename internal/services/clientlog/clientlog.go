// Package clientlog reports client-side failures to the backend's
// /api/clientlog endpoint. Delivery is best effort: a failed report is
// written to the local slog output and never returned to the caller.
package clientlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Path is the backend endpoint that receives reports.
const Path = "/api/clientlog"

// WarningPrefix marks warning reports, which share the error endpoint.
const WarningPrefix = "[WARNING] "

var ErrPlatformIDRequired = errors.New("platform id not configured")

// Request is the report body.
type Request struct {
	Message       string    `json:"message" validate:"required"`
	StackTrace    string    `json:"stackTrace,omitempty"`
	URL           string    `json:"url,omitempty"`
	StatusCode    *int      `json:"statusCode,omitempty"`
	CorrelationID string    `json:"correlationId" validate:"required"`
	PlatformID    uuid.UUID `json:"platformId"`
	Timestamp     time.Time `json:"timestamp"`
}

// IsWarning reports whether the request was sent by LogWarning.
func (r Request) IsWarning() bool {
	return strings.HasPrefix(r.Message, WarningPrefix)
}

// Option adds detail to an error report.
type Option func(*Request)

func WithStackTrace(s string) Option {
	return func(r *Request) { r.StackTrace = s }
}

func WithURL(u string) Option {
	return func(r *Request) { r.URL = u }
}

func WithStatusCode(code int) Option {
	return func(r *Request) { r.StatusCode = &code }
}

// Service sends reports under one correlation ID for its whole lifetime,
// so a Service should be created per user session.
type Service struct {
	baseURL       string
	http          *http.Client
	correlationID string
	platformID    uuid.UUID
	now           func() time.Time
}

// New returns a Service posting to baseURL + Path. platformID must parse as
// a UUID.
func New(baseURL, platformID string, httpClient *http.Client) (*Service, error) {
	pid, err := uuid.Parse(strings.TrimSpace(platformID))
	if err != nil || pid == uuid.Nil {
		return nil, fmt.Errorf("%w: %q", ErrPlatformIDRequired, platformID)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &Service{
		baseURL:       strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:          httpClient,
		correlationID: uuid.NewString(),
		platformID:    pid,
		now:           time.Now,
	}, nil
}

func (s *Service) CorrelationID() string {
	return s.correlationID
}

func (s *Service) PlatformID() uuid.UUID {
	return s.platformID
}

// LogError reports an error.
func (s *Service) LogError(ctx context.Context, message string, opts ...Option) {
	req := s.newRequest(message)
	for _, opt := range opts {
		opt(&req)
	}
	if err := s.send(ctx, req); err != nil {
		slog.ErrorContext(ctx, "failed to log error to backend",
			"correlation_id", s.correlationID, "message", message, "error", err)
	}
}

// LogWarning reports a handled failure. The message gets WarningPrefix.
func (s *Service) LogWarning(ctx context.Context, message, url string) {
	req := s.newRequest(WarningPrefix + message)
	req.URL = url
	if err := s.send(ctx, req); err != nil {
		slog.WarnContext(ctx, "failed to log warning to backend",
			"correlation_id", s.correlationID, "message", message, "error", err)
	}
}

func (s *Service) newRequest(message string) Request {
	return Request{
		Message:       message,
		CorrelationID: s.correlationID,
		PlatformID:    s.platformID,
		Timestamp:     s.now().UTC(),
	}
}

func (s *Service) send(ctx context.Context, r Request) error {
	body, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+Path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 16*1024))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("clientlog: unexpected status %d", resp.StatusCode)
	}
	return nil
}
