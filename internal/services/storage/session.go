package storage

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
)

// SessionCookieName is the cookie that carries per-browser storage.
const SessionCookieName = "hydra_storage"

// SessionStore keeps items in a signed cookie, one store per browser.
// Cookies are small, so it suits tokens and preferences only.
type SessionStore struct {
	store sessions.Store
	name  string
}

func NewSessionStore(store sessions.Store) *SessionStore {
	return &SessionStore{store: store, name: SessionCookieName}
}

// NewCookieSessionStore builds a SessionStore over a CookieStore keyed by
// secret.
func NewCookieSessionStore(secret []byte) *SessionStore {
	cs := sessions.NewCookieStore(secret)
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return NewSessionStore(cs)
}

// For binds the store to one request/response pair. Writes are saved to w
// immediately, so For must be used before the response body is written.
func (s *SessionStore) For(w http.ResponseWriter, r *http.Request) Store {
	return &requestStore{parent: s, w: w, r: r}
}

type requestStore struct {
	parent *SessionStore
	w      http.ResponseWriter
	r      *http.Request
}

func (rs *requestStore) session() *sessions.Session {
	sess, err := rs.parent.store.Get(rs.r, rs.parent.name)
	if err != nil {
		// A stale or tampered cookie yields a fresh session.
		slog.Warn("failed to decode storage session", "error", err, "host", rs.r.Host)
	}
	return sess
}

func (rs *requestStore) save(sess *sessions.Session) error {
	if sess.Options != nil {
		sess.Options.Secure = rs.r.TLS != nil || rs.r.Header.Get("X-Forwarded-Proto") == "https"
	}
	return sess.Save(rs.r, rs.w)
}

func (rs *requestStore) SetItem(_ context.Context, key string, value []byte) error {
	key, err := normalizeKey(key)
	if err != nil {
		return err
	}
	sess := rs.session()
	sess.Values[key] = bytes.Clone(value)
	return rs.save(sess)
}

func (rs *requestStore) GetItem(_ context.Context, key string) ([]byte, bool, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return nil, false, err
	}
	v, ok := rs.session().Values[key]
	if !ok {
		return nil, false, nil
	}
	b, ok := v.([]byte)
	if !ok {
		return nil, false, nil
	}
	return bytes.Clone(b), true, nil
}

func (rs *requestStore) RemoveItem(_ context.Context, key string) error {
	key, err := normalizeKey(key)
	if err != nil {
		return err
	}
	sess := rs.session()
	if _, ok := sess.Values[key]; !ok {
		return nil
	}
	delete(sess.Values, key)
	return rs.save(sess)
}
