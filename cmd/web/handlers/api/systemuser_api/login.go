package systemuser_api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"thirdcoast.systems/hydra/internal/services/auth"
	"thirdcoast.systems/hydra/internal/services/httpclient"
	"thirdcoast.systems/hydra/pkg/utils/passwords"
)

const invalidCredentials = "Invalid username or password"

// HandleLogin is the demo backend's login endpoint. It answers with the
// standard envelope: a fresh token on success, a message otherwise.
func HandleLogin(creds *passwords.Credentials) echo.HandlerFunc {
	return func(c echo.Context) error {
		var in auth.LoginView
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusOK, httpclient.Fail[*auth.LoginView]("Malformed login request"))
		}

		if creds == nil || !creds.Verify(in.Username, in.Password) {
			slog.Info("login rejected", "username", in.Username)
			return c.JSON(http.StatusOK, httpclient.Fail[*auth.LoginView](invalidCredentials))
		}

		return c.JSON(http.StatusOK, httpclient.OK(&auth.LoginView{
			Username: in.Username,
			Token:    uuid.NewString(),
		}))
	}
}
