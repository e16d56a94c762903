package widget_api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"thirdcoast.systems/hydra/cmd/web/internal/showcase"
	"thirdcoast.systems/hydra/internal/services/httpclient"
)

// HandleSelect fills the posted table descriptor from the widget store.
func HandleSelect(store *showcase.WidgetStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		var table httpclient.Table
		if err := c.Bind(&table); err != nil {
			return c.JSON(http.StatusOK, httpclient.Fail[*httpclient.Table]("Malformed table descriptor"))
		}
		out := store.Select(table)
		return c.JSON(http.StatusOK, httpclient.OK(&out))
	}
}
