package common

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Render writes component as an HTML response with the given status.
func Render(c echo.Context, status int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)
	return component.Render(c.Request().Context(), c.Response())
}

// RenderOK is Render with 200.
func RenderOK(c echo.Context, component templ.Component) error {
	return Render(c, http.StatusOK, component)
}
