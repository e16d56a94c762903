package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

const (
	SessionName       = "hydra_session"
	UsernameKey       = "username"
	AccessLevelKey    = "access_level"
	SessionCreatedKey = "created_at"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
)

type SessionManager struct {
	store *sessions.CookieStore
}

func NewSessionManager(secret string) *SessionManager {
	if secret == "" {
		secret = generateSecret()
	}
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionManager{store: store}
}

func generateSecret() string {
	b := make([]byte, 32)
	rand.Read(b)
	return base64.StdEncoding.EncodeToString(b)
}

// CookieStore exposes the signed cookie store so other per-browser state can
// share its keys.
func (sm *SessionManager) CookieStore() *sessions.CookieStore {
	return sm.store
}

func isHTTPS(r *http.Request) bool {
	return r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"
}

func (sm *SessionManager) SaveSession(w http.ResponseWriter, r *http.Request, username string, accessLevel AccessLevel) error {
	session, _ := sm.store.Get(r, SessionName)
	session.Values[UsernameKey] = username
	session.Values[AccessLevelKey] = string(accessLevel)
	session.Values[SessionCreatedKey] = time.Now().Unix()
	session.Options.Secure = isHTTPS(r)

	return session.Save(r, w)
}

func (sm *SessionManager) GetSession(r *http.Request) (username string, err error) {
	session, err := sm.store.Get(r, SessionName)
	if err != nil {
		_, cookieErr := r.Cookie(SessionName)
		slog.Warn("failed to decode session", "error", err, "host", r.Host, "has_cookie", cookieErr == nil)
		return "", err
	}

	uname, ok := session.Values[UsernameKey].(string)
	if !ok || uname == "" {
		return "", ErrNotAuthenticated
	}
	return uname, nil
}

// GetAccessLevel reads the stored access level from the session cookie.
// Returns AccessUnauthenticated if the session is missing or invalid.
func (sm *SessionManager) GetAccessLevel(r *http.Request) AccessLevel {
	session, err := sm.store.Get(r, SessionName)
	if err != nil {
		return AccessUnauthenticated
	}

	str, ok := session.Values[AccessLevelKey].(string)
	if !ok {
		return AccessUnauthenticated
	}

	level := AccessLevel(str)
	switch level {
	case AccessUser, AccessAdmin:
		return level
	default:
		return AccessUnauthenticated
	}
}

func (sm *SessionManager) IsAuthenticated(r *http.Request) bool {
	_, err := sm.GetSession(r)
	return err == nil
}

// GetSessionCreatedAt returns the time the session was created.
// Returns zero time if the session is missing or invalid.
func (sm *SessionManager) GetSessionCreatedAt(r *http.Request) time.Time {
	session, err := sm.store.Get(r, SessionName)
	if err != nil {
		return time.Time{}
	}

	unix, ok := session.Values[SessionCreatedKey].(int64)
	if !ok {
		return time.Time{}
	}
	return time.Unix(unix, 0)
}

func (sm *SessionManager) ClearSession(w http.ResponseWriter, r *http.Request) error {
	session, _ := sm.store.Get(r, SessionName)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

type AccessLevel string

const (
	AccessUnauthenticated AccessLevel = "unauthenticated"
	AccessUser            AccessLevel = "user"
	AccessAdmin           AccessLevel = "admin"
)
