package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"thirdcoast.systems/hydra/internal/services/clientlog"
)

type logged struct {
	warning bool
	message string
	req     clientlog.Request
}

type fakeLogger struct {
	mu      sync.Mutex
	entries []logged
}

func (f *fakeLogger) LogError(_ context.Context, message string, opts ...clientlog.Option) {
	var r clientlog.Request
	for _, opt := range opts {
		opt(&r)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, logged{message: message, req: r})
}

func (f *fakeLogger) LogWarning(_ context.Context, message, url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, logged{warning: true, message: message, req: clientlog.Request{URL: url}})
}

func (f *fakeLogger) all() []logged {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]logged(nil), f.entries...)
}

func newTestClient(t *testing.T, h http.HandlerFunc, opts ...Option) (*Client, *fakeLogger) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	log := &fakeLogger{}
	opts = append([]Option{WithHTTPClient(srv.Client())}, opts...)
	return New(srv.URL+"/", log, opts...), log
}

type widget struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestGet_DecodesBody(t *testing.T) {
	c, log := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/Widget/1", r.URL.Path)
		_, _ = w.Write([]byte(`{"ID":"1","NAME":"gear"}`))
	})

	got, err := Get[widget](context.Background(), c, "Widget/1")
	require.NoError(t, err)
	require.Equal(t, widget{ID: "1", Name: "gear"}, got)
	require.Empty(t, log.all())
}

func TestGet_EmptyBodyIsZero(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	got, err := Get[*widget](context.Background(), c, "Widget/1")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPlainCalls_ServerErrorIsReported(t *testing.T) {
	c, log := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "kaput", http.StatusBadGateway)
	})

	_, err := Post[widget, widget](context.Background(), c, "Widget/Create", widget{Name: "x"})
	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, http.StatusBadGateway, se.StatusCode)
	require.Equal(t, "kaput", se.Body)

	entries := log.all()
	require.Len(t, entries, 1)
	require.Equal(t, "Server Error: Widget/Create", entries[0].message)
	require.Equal(t, "Widget/Create", entries[0].req.URL)
	require.Equal(t, http.StatusBadGateway, *entries[0].req.StatusCode)
}

func TestPlainCalls_ClientErrorStaysLocal(t *testing.T) {
	c, log := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := Delete[bool](context.Background(), c, "Widget/Delete/1")
	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, http.StatusNotFound, se.StatusCode)
	require.Empty(t, log.all())
}

func TestPlainCalls_Timeout(t *testing.T) {
	release := make(chan struct{})
	c, log := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := PostNoContent(ctx, c, "Widget/Touch", widget{})
	require.Error(t, err)
	require.True(t, errors.Is(err, context.DeadlineExceeded))

	entries := log.all()
	require.Len(t, entries, 1)
	require.Equal(t, "Request Timeout: Widget/Touch", entries[0].message)
	require.Equal(t, http.StatusRequestTimeout, *entries[0].req.StatusCode)
}

func TestPlainCalls_DecodeFailureIsUnexpected(t *testing.T) {
	c, log := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})

	_, err := Put[widget, widget](context.Background(), c, "Widget/Update", widget{})
	require.Error(t, err)

	entries := log.all()
	require.Len(t, entries, 1)
	require.Equal(t, "Unexpected Error: Widget/Update", entries[0].message)
	require.Nil(t, entries[0].req.StatusCode)
}

func TestTokenSource(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(r.Header.Get("Authorization"))
	}, WithTokenSource(func(context.Context) string { return "abc" }))

	got, err := Get[string](context.Background(), c, "whoami")
	require.NoError(t, err)
	require.Equal(t, "Bearer abc", got)
}

func TestResolve(t *testing.T) {
	c := New("https://api.example.com/", nil)
	require.Equal(t, "https://api.example.com/Widget/Select", c.resolve("/Widget/Select"))
	require.Equal(t, "https://other.example.com/x", c.resolve("https://other.example.com/x"))
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name       string
		controller string
		action     string
		params     map[string]string
		pathParam  string
		rawQuery   string
		want       string
	}{
		{name: "controller only", controller: "Exam", want: "Exam"},
		{name: "path param", controller: "Exam", action: "Details", pathParam: "123", want: "Exam/Details/123"},
		{name: "raw query", controller: "Exam", action: "Search", rawQuery: "status=active&type=final", want: "Exam/Search?status=active&type=final"},
		{
			name:       "params sorted and escaped",
			controller: "Exam",
			action:     "Search",
			params:     map[string]string{"q": "a b&c", "page": "2"},
			rawQuery:   "x=1",
			want:       "Exam/Search?page=2&q=a+b%26c&x=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildURL(tt.controller, tt.action, tt.params, tt.pathParam, tt.rawQuery)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestStatusErrorMessage(t *testing.T) {
	err := &StatusError{StatusCode: 500, URL: "x"}
	require.True(t, strings.Contains(err.Error(), "500"))

	id := uuid.New()
	require.Equal(t, "Widget/Delete/"+id.String(), BuildURL("Widget", "Delete", nil, id.String(), ""))
}
