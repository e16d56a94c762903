package showcase

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/starfederation/datastar-go/datastar"

	"thirdcoast.systems/hydra/cmd/web/handlers/common"
	"thirdcoast.systems/hydra/cmd/web/internal/showcase"
	"thirdcoast.systems/hydra/cmd/web/templates"
	"thirdcoast.systems/hydra/internal/services/httpclient"
)

// HandleHome renders the gallery with the default settings.
func HandleHome(api *httpclient.APIClient[showcase.Widget], defaults showcase.Settings) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		g := showcase.Build(defaults, showcase.LoadWidgets(ctx, api))
		return common.RenderOK(c, templates.Layout("Gallery", templates.GalleryPage(g)))
	}
}

// HandleState rebuilds the gallery from the posted signals and patches the
// gallery and debugger in place.
func HandleState(api *httpclient.APIClient[showcase.Widget], defaults showcase.Settings) echo.HandlerFunc {
	return func(c echo.Context) error {
		settings := defaults
		// Signals must be read before the SSE writer takes the body.
		if err := datastar.ReadSignals(c.Request(), &settings); err != nil {
			return common.ErrBadRequest("invalid signals")
		}

		ctx := c.Request().Context()
		g := showcase.Build(settings, showcase.LoadWidgets(ctx, api))

		common.SetSSEHeaders(c)
		sse := datastar.NewSSE(c.Response(), c.Request())

		if err := sse.PatchElementTempl(templates.GalleryBody(g), datastar.WithSelectorID(templates.GalleryID)); err != nil {
			slog.WarnContext(ctx, "failed to patch gallery", "error", err)
			return nil
		}
		if err := sse.PatchElementTempl(templates.DebuggerTable(g.Debugger), datastar.WithSelectorID(templates.DebuggerID)); err != nil {
			slog.WarnContext(ctx, "failed to patch debugger", "error", err)
		}
		return nil
	}
}

// HandleDebugger patches the debugger table for the inspected element.
// Debugger changes made while building are batched into one patch.
func HandleDebugger(defaults showcase.Settings) echo.HandlerFunc {
	return func(c echo.Context) error {
		settings := defaults
		if err := datastar.ReadSignals(c.Request(), &settings); err != nil {
			return common.ErrBadRequest("invalid signals")
		}

		g := showcase.Build(settings, nil)

		common.SetSSEHeaders(c)
		sse := datastar.NewSSE(c.Response(), c.Request())

		changes := 0
		unsubscribe := g.Debugger.OnChange(func() { changes++ })
		g.Inspected().Element.FillDebugger()
		unsubscribe()

		slog.DebugContext(c.Request().Context(), "debugger refreshed",
			"element", g.Inspected().Key, "changes", changes, "entries", len(g.Debugger.Snapshot()))

		return sse.PatchElementTempl(templates.DebuggerTable(g.Debugger), datastar.WithSelectorID(templates.DebuggerID))
	}
}
