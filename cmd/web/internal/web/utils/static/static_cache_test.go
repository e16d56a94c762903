package static

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"testing/fstest"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"thirdcoast.systems/hydra/static"
)

func TestNewStaticCache_EmbeddedAssets(t *testing.T) {
	cache, err := NewStaticCache(static.FS)
	require.NoError(t, err)

	ci, ok := cache.Lookup("css/hydra.css")
	require.True(t, ok)
	require.True(t, regexp.MustCompile(`^"[0-9a-f]{64}"$`).MatchString(ci.ETag))
	require.True(t, ci.Size > 0)
	require.False(t, ci.LastModified.IsZero())
}

func serve(t *testing.T, cache *StaticCache, target string, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.GET("/static/*", cache.ServeStaticFile("/static/"))

	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestServeStaticFile(t *testing.T) {
	mod := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	cache, err := NewStaticCache(fstest.MapFS{
		"css/site.css":  {Data: []byte("body{}"), ModTime: mod},
		"img/logo.png":  {Data: []byte("png"), ModTime: mod},
		"misc/notes.md": {Data: []byte("# hi"), ModTime: mod},
	})
	require.NoError(t, err)

	rec := serve(t, cache, "/static/css/site.css", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "body{}", rec.Body.String())
	require.Equal(t, "no-cache, must-revalidate", rec.Header().Get(echo.HeaderCacheControl))
	require.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/css")
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)

	rec = serve(t, cache, "/static/css/site.css", map[string]string{"If-None-Match": etag})
	require.Equal(t, http.StatusNotModified, rec.Code)

	rec = serve(t, cache, "/static/img/logo.png", map[string]string{echo.HeaderIfModifiedSince: mod.Format(http.TimeFormat)})
	require.Equal(t, http.StatusNotModified, rec.Code)

	rec = serve(t, cache, "/static/img/logo.png", nil)
	require.Contains(t, rec.Header().Get(echo.HeaderCacheControl), "max-age=31536000")

	rec = serve(t, cache, "/static/misc/notes.md", nil)
	require.Contains(t, rec.Header().Get(echo.HeaderCacheControl), "max-age=3600")

	rec = serve(t, cache, "/static/missing.css", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
