package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	webauth "thirdcoast.systems/hydra/cmd/web/auth"
	"thirdcoast.systems/hydra/cmd/web/handlers/common"
	"thirdcoast.systems/hydra/cmd/web/templates"
	"thirdcoast.systems/hydra/internal/services"
	svcauth "thirdcoast.systems/hydra/internal/services/auth"
)

// HandleLogin signs in through the auth service. The token lands in the
// request-scoped store the context middleware installed.
func HandleLogin(sm *webauth.SessionManager, svcs *services.Services) echo.HandlerFunc {
	return func(c echo.Context) error {
		username := strings.TrimSpace(c.FormValue("username"))
		password := c.FormValue("password")

		if username == "" || password == "" {
			return common.Render(c, http.StatusBadRequest, templates.Login("Username and password are required"))
		}

		ctx := c.Request().Context()
		view, err := svcs.Auth.WithStore(svcs.StoreFor(ctx)).Login(ctx, svcauth.LoginView{
			Username: username,
			Password: password,
		})
		if err != nil {
			if !errors.Is(err, svcauth.ErrLoginRejected) {
				slog.Error("login request failed", "error", err)
				return common.Render(c, http.StatusBadGateway, templates.Login("An error occurred. Please try again."))
			}
			return common.Render(c, http.StatusUnauthorized, templates.Login("Invalid username or password"))
		}

		if err := sm.SaveSession(c.Response().Writer, c.Request(), view.Username, webauth.AccessAdmin); err != nil {
			slog.Error("failed to save session", "error", err)
			return common.Render(c, http.StatusInternalServerError, templates.Login("An error occurred. Please try again."))
		}

		return c.Redirect(http.StatusFound, "/")
	}
}
