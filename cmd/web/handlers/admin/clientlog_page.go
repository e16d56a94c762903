package admin

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
	"thirdcoast.systems/hydra/cmd/web/handlers/common"
	"thirdcoast.systems/hydra/cmd/web/internal/logsink"
	"thirdcoast.systems/hydra/cmd/web/templates"
)

const recentLimit = 100

func HandleClientLogPage(hub *logsink.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		entries, err := hub.Recent(ctx, recentLimit)
		if err != nil {
			slog.Error("failed to list client logs", "error", err)
			return common.ErrInternal("failed to list client logs")
		}
		return common.RenderOK(c, templates.Layout("Client log", templates.ClientLogPage(entries, time.Now())))
	}
}
