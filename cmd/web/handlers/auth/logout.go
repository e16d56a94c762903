package auth

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	webauth "thirdcoast.systems/hydra/cmd/web/auth"
	"thirdcoast.systems/hydra/internal/services"
)

func HandleLogout(sm *webauth.SessionManager, svcs *services.Services) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := svcs.Auth.WithStore(svcs.StoreFor(ctx)).Logout(ctx); err != nil {
			slog.Warn("failed to drop token", "error", err)
		}
		if err := sm.ClearSession(c.Response().Writer, c.Request()); err != nil {
			slog.Warn("failed to clear session", "error", err)
		}
		return c.Redirect(http.StatusFound, "/login")
	}
}
