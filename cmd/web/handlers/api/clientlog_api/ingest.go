package clientlog_api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"thirdcoast.systems/hydra/cmd/web/handlers/common"
	"thirdcoast.systems/hydra/cmd/web/internal/logsink"
	"thirdcoast.systems/hydra/internal/services/clientlog"
)

var validate = validator.New()

// HandleIngest accepts a client log entry and records it on the hub.
func HandleIngest(hub *logsink.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req clientlog.Request
		if err := c.Bind(&req); err != nil {
			return common.ErrBadRequest("invalid log entry")
		}
		if err := validate.Struct(req); err != nil {
			return common.ErrBadRequest(err.Error())
		}

		entry, err := hub.Record(c.Request().Context(), req)
		if err != nil {
			slog.Error("failed to record client log", "error", err, "correlation_id", req.CorrelationID)
			return common.ErrInternal("failed to record log entry")
		}

		slog.Debug("client log recorded", "id", entry.ID, "warning", req.IsWarning(), "url", req.URL)
		return c.NoContent(http.StatusNoContent)
	}
}
