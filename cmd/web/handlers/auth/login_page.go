package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
	webauth "thirdcoast.systems/hydra/cmd/web/auth"
	"thirdcoast.systems/hydra/cmd/web/handlers/common"
	"thirdcoast.systems/hydra/cmd/web/templates"
)

func HandleLoginPage(sm *webauth.SessionManager) echo.HandlerFunc {
	return func(c echo.Context) error {
		if sm.IsAuthenticated(c.Request()) {
			return c.Redirect(http.StatusFound, "/")
		}
		return common.RenderOK(c, templates.Login(""))
	}
}
