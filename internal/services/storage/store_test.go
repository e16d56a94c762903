package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"thirdcoast.systems/hydra/internal/db"
	"thirdcoast.systems/hydra/pkg/encryption"
)

type prefs struct {
	Theme string `json:"theme"`
	Size  int    `json:"size"`
}

// exerciseStore runs the behaviour every Store must share.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.GetItem(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, Set(ctx, s, "prefs", prefs{Theme: "dark", Size: 2}))
	got, ok, err := Get[prefs](ctx, s, " prefs ")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, prefs{Theme: "dark", Size: 2}, got)

	require.NoError(t, Set(ctx, s, "prefs", prefs{Theme: "light"}))
	got, _, err = Get[prefs](ctx, s, "prefs")
	require.NoError(t, err)
	require.Equal(t, "light", got.Theme)

	require.NoError(t, s.RemoveItem(ctx, "prefs"))
	require.NoError(t, s.RemoveItem(ctx, "prefs"))
	_, ok, err = Get[prefs](ctx, s, "prefs")
	require.NoError(t, err)
	require.False(t, ok)

	require.ErrorIs(t, s.SetItem(ctx, "  ", []byte("x")), ErrBlankKey)
	_, _, err = s.GetItem(ctx, "")
	require.ErrorIs(t, err, ErrBlankKey)
	require.ErrorIs(t, s.RemoveItem(ctx, ""), ErrBlankKey)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	v := []byte("abc")
	require.NoError(t, s.SetItem(ctx, "k", v))
	v[0] = 'z'

	got, _, err := s.GetItem(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "abc", string(got))
	require.Equal(t, 1, s.Len())
}

func TestGet_BadJSON(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.SetItem(ctx, "k", []byte("{")))

	_, ok, err := Get[prefs](ctx, s, "k")
	require.Error(t, err)
	require.False(t, ok)
}

func testManager(t *testing.T) *encryption.Manager {
	t.Helper()
	m, err := encryption.NewManagerFromHex(strings.Repeat("ab", 32), "")
	require.NoError(t, err)
	return m
}

func TestSealed(t *testing.T) {
	inner := NewMemoryStore()
	s := Sealed(inner, testManager(t))
	exerciseStore(t, s)

	ctx := context.Background()
	require.NoError(t, Set(ctx, s, "authToken", "secret-token"))

	raw, ok, err := inner.GetItem(ctx, "authToken")
	require.NoError(t, err)
	require.True(t, ok)
	require.NotContains(t, string(raw), "secret-token")

	token, ok, err := Get[string](ctx, s, "authToken")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "secret-token", token)

	require.NoError(t, inner.SetItem(ctx, "authToken", []byte("garbage")))
	_, _, err = s.GetItem(ctx, "authToken")
	require.Error(t, err)
}

func TestSealed_NilManager(t *testing.T) {
	inner := NewMemoryStore()
	require.Same(t, inner, Sealed(inner, nil))
}

func TestSessionStore(t *testing.T) {
	ss := NewCookieSessionStore([]byte(strings.Repeat("s", 32)))
	ctx := context.Background()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, Set(ctx, ss.For(rec, req), "authToken", "tok"))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	require.Equal(t, SessionCookieName, cookies[len(cookies)-1].Name)

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(cookies[len(cookies)-1])
	token, ok, err := Get[string](ctx, ss.For(httptest.NewRecorder(), next), "authToken")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "tok", token)

	other := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok, err = Get[string](ctx, ss.For(httptest.NewRecorder(), other), "authToken")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSessionStore_SharedBehaviour(t *testing.T) {
	ss := NewCookieSessionStore([]byte(strings.Repeat("s", 32)))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	exerciseStore(t, ss.For(httptest.NewRecorder(), req))
}

// fakeDB answers the local_storage queries from a map.
type fakeDB struct {
	rows map[string][]byte
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	key := args[0].(string) + "/" + args[1].(string)
	switch {
	case strings.Contains(sql, "INSERT INTO local_storage"):
		f.rows[key] = args[2].([]byte)
	case strings.Contains(sql, "DELETE FROM local_storage"):
		delete(f.rows, key)
	}
	return pgconn.CommandTag{}, nil
}

func (f *fakeDB) Query(context.Context, string, ...interface{}) (pgx.Rows, error) {
	return nil, pgx.ErrTxClosed
}

func (f *fakeDB) QueryRow(_ context.Context, _ string, args ...interface{}) pgx.Row {
	scope, key := args[0].(string), args[1].(string)
	v, ok := f.rows[scope+"/"+key]
	return fakeRow{scope: scope, key: key, value: v, found: ok}
}

type fakeRow struct {
	scope, key string
	value      []byte
	found      bool
}

func (r fakeRow) Scan(dest ...any) error {
	if !r.found {
		return pgx.ErrNoRows
	}
	*dest[0].(*string) = r.scope
	*dest[1].(*string) = r.key
	*dest[2].(*[]byte) = r.value
	*dest[3].(*time.Time) = time.Now()
	return nil
}

func TestPostgresStore(t *testing.T) {
	fake := &fakeDB{rows: map[string][]byte{}}
	s := NewPostgresStore(db.New(fake), "session-a")
	exerciseStore(t, s)

	ctx := context.Background()
	require.NoError(t, Set(ctx, s, "k", 1))
	_, ok, err := Get[int](ctx, s.WithScope("session-b"), "k")
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, "session-a", s.Scope())
}

func TestContext(t *testing.T) {
	fallback := NewMemoryStore()
	scoped := NewMemoryStore()

	require.Same(t, fallback, FromContext(context.Background(), fallback))
	ctx := NewContext(context.Background(), scoped)
	require.Same(t, scoped, FromContext(ctx, fallback))
}
