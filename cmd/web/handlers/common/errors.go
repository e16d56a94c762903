package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrBadRequest returns a 400 Bad Request error.
func ErrBadRequest(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, msg)
}

// ErrUnauthorized returns a 401 Unauthorized error.
func ErrUnauthorized() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
}

func ErrForbidden() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusForbidden, "forbidden")
}

// ErrTooManyRequests is returned when a bounded resource, such as the number
// of open log streams, is exhausted.
func ErrTooManyRequests(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusTooManyRequests, msg)
}

// ErrInternal returns a 500 Internal Server Error.
func ErrInternal(msg string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusInternalServerError, msg)
}
