package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"thirdcoast.systems/hydra/internal/services/clientlog"
)

// NoMessages is used in business-failure reports when the backend sent none.
const NoMessages = "No error messages provided."

type Message struct {
	Text string `json:"text"`
}

// Envelope is the backend's standard response wrapper.
type Envelope[T any] struct {
	Success  bool      `json:"success"`
	Data     T         `json:"data"`
	Messages []Message `json:"messages,omitempty"`
}

// JoinedMessages returns the message texts joined by "; ", or NoMessages.
func (e *Envelope[T]) JoinedMessages() string {
	if e == nil || len(e.Messages) == 0 {
		return NoMessages
	}
	texts := make([]string, 0, len(e.Messages))
	for _, m := range e.Messages {
		texts = append(texts, m.Text)
	}
	return strings.Join(texts, "; ")
}

// OK wraps data in a successful envelope.
func OK[T any](data T) Envelope[T] {
	return Envelope[T]{Success: true, Data: data}
}

// Fail builds a failed envelope carrying the given messages.
func Fail[T any](messages ...string) Envelope[T] {
	env := Envelope[T]{}
	for _, m := range messages {
		env.Messages = append(env.Messages, Message{Text: m})
	}
	return env
}

// GetEnvelope fetches url and unwraps the envelope. The bool is false when
// there is no data; the cause has already been reported.
func GetEnvelope[T any](ctx context.Context, c *Client, url string) (T, bool) {
	return envelopeCall[T](ctx, c, http.MethodGet, url, nil)
}

func PostEnvelope[T any](ctx context.Context, c *Client, url string, payload any) (T, bool) {
	return envelopeCall[T](ctx, c, http.MethodPost, url, payload)
}

func PutEnvelope[T any](ctx context.Context, c *Client, url string, payload any) (T, bool) {
	return envelopeCall[T](ctx, c, http.MethodPut, url, payload)
}

func DeleteEnvelope[T any](ctx context.Context, c *Client, url string) (T, bool) {
	return envelopeCall[T](ctx, c, http.MethodDelete, url, nil)
}

func envelopeCall[T any](ctx context.Context, c *Client, method, url string, payload any) (T, bool) {
	var zero T

	resp, err := c.do(ctx, method, url, payload)
	if err != nil {
		c.report(ctx, url, err)
		return zero, false
	}

	if !resp.ok() {
		if resp.status >= http.StatusInternalServerError {
			c.log.LogError(ctx, "Server Error: "+url,
				clientlog.WithStackTrace(resp.statusText),
				clientlog.WithURL(url),
				clientlog.WithStatusCode(resp.status))
		} else {
			slog.WarnContext(ctx, "client error", "status", resp.status, "url", url)
		}
		return zero, false
	}

	if len(bytes.TrimSpace(resp.body)) == 0 {
		c.log.LogError(ctx, "Empty response from "+url, clientlog.WithURL(url))
		return zero, false
	}

	var env *Envelope[T]
	if err := json.Unmarshal(resp.body, &env); err != nil {
		c.report(ctx, url, errors.Join(errors.New("decode envelope"), err))
		return zero, false
	}
	if env == nil {
		c.log.LogError(ctx, "Null envelope from "+url, clientlog.WithURL(url))
		return zero, false
	}

	if !env.Success {
		c.log.LogWarning(ctx, "Business Failure at "+url+": "+env.JoinedMessages(), url)
		return zero, false
	}

	return env.Data, true
}
