package static

import (
	"crypto/sha256"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// CachedFileInfo holds metadata for a static file used in HTTP cache headers.
type CachedFileInfo struct {
	ETag         string
	Size         int64
	LastModified time.Time
}

// StaticCache serves files from an fs.FS with ETag and Last-Modified
// validators computed once at startup. The file set is fixed after
// construction, so lookups need no locking.
type StaticCache struct {
	entries map[string]CachedFileInfo
	fs      fs.FS
}

func NewStaticCache(fsys fs.FS) (*StaticCache, error) {
	c := &StaticCache{
		entries: make(map[string]CachedFileInfo),
		fs:      fsys,
	}

	started := time.Now().UTC().Truncate(time.Second)
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		f, err := fsys.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return err
		}

		h := sha256.New()
		if _, err := io.Copy(h, f); err != nil {
			return err
		}

		// Embedded files carry no mod time.
		modTime := info.ModTime()
		if modTime.IsZero() {
			modTime = started
		}

		c.entries[p] = CachedFileInfo{
			ETag:         fmt.Sprintf("%q", fmt.Sprintf("%x", h.Sum(nil))),
			Size:         info.Size(),
			LastModified: modTime,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *StaticCache) Lookup(name string) (CachedFileInfo, bool) {
	ci, ok := s.entries[name]
	return ci, ok
}

func cacheControl(name string) string {
	switch path.Ext(name) {
	case ".css", ".js":
		// Not fingerprinted; always revalidate.
		return "no-cache, must-revalidate"
	case ".png", ".jpg", ".jpeg", ".gif", ".svg", ".ico", ".woff", ".woff2", ".ttf":
		return "public, max-age=31536000, stale-while-revalidate=86400"
	default:
		return "public, max-age=3600, stale-while-revalidate=300"
	}
}

func (s *StaticCache) ServeStaticFile(prefix string) echo.HandlerFunc {
	return func(c echo.Context) error {
		name := strings.TrimPrefix(c.Request().URL.Path, prefix)

		ci, ok := s.entries[name]
		if !ok {
			return echo.ErrNotFound
		}

		if inm := c.Request().Header.Get("If-None-Match"); inm != "" && inm == ci.ETag {
			return c.NoContent(http.StatusNotModified)
		}
		if ims := c.Request().Header.Get(echo.HeaderIfModifiedSince); ims != "" {
			if t, err := http.ParseTime(ims); err == nil && !ci.LastModified.After(t) {
				return c.NoContent(http.StatusNotModified)
			}
		}

		f, err := s.fs.Open(name)
		if err != nil {
			return echo.ErrNotFound
		}
		defer f.Close()

		h := c.Response().Header()
		h.Set(echo.HeaderCacheControl, cacheControl(name))
		h.Set("ETag", ci.ETag)
		h.Set(echo.HeaderLastModified, ci.LastModified.Format(http.TimeFormat))

		contentType := mime.TypeByExtension(path.Ext(name))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		return c.Stream(http.StatusOK, contentType, f)
	}
}
