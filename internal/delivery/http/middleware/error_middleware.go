// Package middleware contains the HTTP middleware of the delivery layer.
package middleware

import (
	"log/slog"
	"net/http"

	"roster/internal/delivery/http/i18n"
	"roster/internal/delivery/http/response"
	domainerrors "roster/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware translates errors escaping the handlers into the unified
// envelope, localizing the user-facing message by Accept-Language. Root
// causes stay in the logs; callers see a single descriptive message.
type ErrorMiddleware struct {
	logger     *slog.Logger
	translator *i18n.Translator
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, translator *i18n.Translator) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:     logger,
		translator: translator,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	acceptLanguage := c.Request().Header.Get("Accept-Language")

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.Error(c,
			appErr.HTTPCode(),
			appErr.ErrorCode(),
			m.translator.Localize(acceptLanguage, appErr.ErrorCode(), appErr.Message()),
			appErr.Details(),
		)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, _ := httpErr.Message.(string)
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, "")

		return
	}

	// Anything else is an unexpected fault: log it with its cause and hand
	// the caller a generic, localized internal error.
	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	_ = response.Error(c,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		m.translator.Localize(acceptLanguage, "INTERNAL_ERROR", "internal server error"),
		"",
	)
}
