package common

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"thirdcoast.systems/hydra/cmd/web/auth"
)

// RequireUUIDParam extracts a UUID route parameter or returns a 400 error.
func RequireUUIDParam(c echo.Context, param string) (uuid.UUID, error) {
	u, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, ErrBadRequest("invalid " + param)
	}
	return u, nil
}

// RequireSessionUser returns the signed-in username or a 401.
func RequireSessionUser(c echo.Context, sm *auth.SessionManager) (string, error) {
	username, err := sm.GetSession(c.Request())
	if err != nil {
		return "", ErrUnauthorized()
	}
	return username, nil
}
