package common

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// SetSSEHeaders adds the header datastar.NewSSE does not set: nginx and
// similar proxies must not buffer the stream.
func SetSSEHeaders(c echo.Context) {
	c.Response().Header().Set("X-Accel-Buffering", "no")
}

// SSEComment writes an SSE comment line and flushes it. Comments keep idle
// streams open through proxies without triggering client events.
func SSEComment(c echo.Context, text string) error {
	resp := c.Response()
	flusher, ok := resp.Writer.(http.Flusher)
	if !ok {
		return ErrInternal("streaming unsupported")
	}
	if _, err := fmt.Fprintf(resp, ": %s\n\n", text); err != nil {
		return err
	}
	flusher.Flush()
	return nil
}
