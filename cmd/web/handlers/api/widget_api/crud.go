package widget_api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"thirdcoast.systems/hydra/cmd/web/handlers/common"
	"thirdcoast.systems/hydra/cmd/web/internal/showcase"
	"thirdcoast.systems/hydra/internal/services/httpclient"
)

type details struct {
	Table *httpclient.Table `json:"table"`
	Item  *showcase.Widget  `json:"item"`
}

func bindWidget(c echo.Context) (showcase.Widget, string) {
	var w showcase.Widget
	if err := c.Bind(&w); err != nil {
		return w, "Malformed widget"
	}
	w.Name = strings.TrimSpace(w.Name)
	if w.Name == "" {
		return w, "Name is required"
	}
	return w, ""
}

func HandleCreate(store *showcase.WidgetStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		w, msg := bindWidget(c)
		if msg != "" {
			return c.JSON(http.StatusOK, httpclient.Fail[*showcase.Widget](msg))
		}
		created := store.Create(w)
		return c.JSON(http.StatusOK, httpclient.OK(&created))
	}
}

func HandleUpdate(store *showcase.WidgetStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		w, msg := bindWidget(c)
		if msg != "" {
			return c.JSON(http.StatusOK, httpclient.Fail[*showcase.Widget](msg))
		}
		if !store.Update(w) {
			return c.JSON(http.StatusOK, httpclient.Fail[*showcase.Widget]("Widget not found"))
		}
		return c.JSON(http.StatusOK, httpclient.OK(&w))
	}
}

func HandleDelete(store *showcase.WidgetStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireUUIDParam(c, "id")
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, httpclient.OK(store.Delete(id)))
	}
}

// HandleDetails answers with the details view descriptor and the widget.
func HandleDetails(store *showcase.WidgetStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := common.RequireUUIDParam(c, "id")
		if err != nil {
			return err
		}
		w, ok := store.Get(id)
		if !ok {
			return c.JSON(http.StatusOK, httpclient.Fail[*details]("Widget not found"))
		}

		table := &httpclient.Table{Name: "Widget", ViewType: httpclient.DetailsView}
		table.AlterOrAddColumn(httpclient.EqualFilterColumn("Id", "", id.String()))
		*table = store.Select(*table)
		return c.JSON(http.StatusOK, httpclient.OK(&details{Table: table, Item: &w}))
	}
}
