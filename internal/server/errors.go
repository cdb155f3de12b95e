package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// NotFoundJSON returns the echo error handler for this API: every error
// that escapes a handler is rendered as an ErrorResponse so clients never
// see echo's default HTML or message shapes.
func NotFoundJSON() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg, ok := he.Message.(string)
			if !ok {
				msg = http.StatusText(he.Code)
			}
			_ = c.JSON(he.Code, ErrorResponse{Error: msg, Code: he.Code})
			return
		}

		// Anything unrecognized is an opaque 500; the cause was already
		// logged where it happened.
		_ = c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Internal server error",
			Code:  http.StatusInternalServerError,
		})
	}
}
