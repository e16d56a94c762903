package showcase

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"thirdcoast.systems/hydra/cmd/web/internal/showcase"
	"thirdcoast.systems/hydra/cmd/web/templates"
)

func TestHandleHome_WithoutBackend(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, HandleHome(nil, showcase.Settings{})(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "No widgets")
}

func TestHandleState_PatchesBothTargets(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/showcase/state", strings.NewReader(`{"classOverride":"shout","inspect":"label"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, HandleState(nil, showcase.Settings{})(e.NewContext(req, rec)))

	body := rec.Body.String()
	require.Contains(t, body, "selector #"+templates.GalleryID)
	require.Contains(t, body, "selector #"+templates.DebuggerID)
	require.Contains(t, body, "shout")
}

func TestHandleState_BadSignals(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/showcase/state", strings.NewReader(`{`))
	rec := httptest.NewRecorder()

	err := HandleState(nil, showcase.Settings{})(e.NewContext(req, rec))
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestHandleDebugger(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/showcase/debugger?datastar="+`%7B%22inspect%22%3A%22spinner%22%7D`, nil)
	rec := httptest.NewRecorder()

	require.NoError(t, HandleDebugger(showcase.Settings{})(e.NewContext(req, rec)))
	require.Contains(t, rec.Body.String(), "selector #"+templates.DebuggerID)
	require.Contains(t, rec.Body.String(), "spinner")
}
