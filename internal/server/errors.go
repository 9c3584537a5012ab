package server

import (
	"errors"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/amantech/internal/handlers"
	"github.com/nfrund/amantech/internal/middleware"
)

// setupErrorHandling installs the central HTTP error handler. Client errors
// are answered as they are; anything else is logged with a stack trace and
// answered with a generic 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		}

		logger := middleware.FromContext(c.Request().Context())
		if code >= http.StatusInternalServerError {
			logger.Error("Internal Server Error (Unhandled)",
				"error", err,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
			message = http.StatusText(code)
		} else if he != nil && he.Internal != nil {
			logger.Debug("Request rejected", "status", code, "error", he.Internal)
		}

		var respErr error
		switch {
		case c.Request().Method == http.MethodHead:
			respErr = c.NoContent(code)
		case strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON):
			respErr = c.JSON(code, handlers.ErrorResponse{
				Code:    strings.ReplaceAll(strings.ToLower(http.StatusText(code)), " ", "_"),
				Message: message,
			})
		default:
			respErr = c.String(code, message)
		}
		if respErr != nil {
			logger.Error("Failed to write error response", "error", respErr)
		}
	}
}
