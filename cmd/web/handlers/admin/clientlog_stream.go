package admin

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/starfederation/datastar-go/datastar"
	"thirdcoast.systems/hydra/cmd/web/handlers/common"
	"thirdcoast.systems/hydra/cmd/web/internal/logsink"
	"thirdcoast.systems/hydra/cmd/web/templates"
)

const keepAliveInterval = 10 * time.Second

// HandleClientLogStream prepends new client log rows as they arrive.
func HandleClientLogStream(hub *logsink.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !hub.AcquireStream() {
			return common.ErrTooManyRequests("too many open log streams")
		}
		defer hub.ReleaseStream()

		common.SetSSEHeaders(c)
		sse := datastar.NewSSE(c.Response(), c.Request())

		entries, unsubscribe := hub.Subscribe()
		defer unsubscribe()

		if err := common.SSEComment(c, "connected"); err != nil {
			return err
		}

		ticker := time.NewTicker(keepAliveInterval)
		defer ticker.Stop()

		ctx := c.Request().Context()
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-entries:
				if !ok {
					return nil
				}
				err := sse.PatchElementTempl(templates.ClientLogRow(e, time.Now()),
					datastar.WithSelectorID(templates.ClientLogBodyID),
					datastar.WithModePrepend(),
				)
				if err != nil {
					slog.Debug("client log stream closed", "error", err)
					return nil
				}
			case <-ticker.C:
				if err := common.SSEComment(c, "keepalive"); err != nil {
					return nil
				}
			}
		}
	}
}
