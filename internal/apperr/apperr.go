package apperr

import (
	"errors"
	"net/http"

	"compliance-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Error carries an HTTP status and a localized user-facing message through
// the handler layers. Lower layers return it unmodified; the echo error
// handler below is the single point that maps it to a response.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound reports an unresolvable resource (404).
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Validation reports malformed or conflicting input (400).
func Validation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// Unauthorized reports a missing or invalid credential (401).
func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// Internal wraps an unexpected error (500).
func Internal(message string, err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message, Err: err}
}

// ErrorHandler returns the centralized echo error handler. Every failure
// response carries success=false and a localized message; outside production
// the underlying error is included for diagnosis.
func ErrorHandler(env string) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "Lỗi máy chủ"

		var appErr *Error
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			status = appErr.Status
			message = appErr.Message
		case errors.As(err, &httpErr):
			status = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				message = msg
			}
		}

		if status >= http.StatusInternalServerError {
			logger.FromEcho(c).Error("Request failed", zap.Error(err))
		}

		body := echo.Map{
			"success": false,
			"message": message,
		}
		if env != "production" {
			body["error"] = err.Error()
		}

		if jsonErr := c.JSON(status, body); jsonErr != nil {
			logger.FromEcho(c).Error("Failed to write error response", zap.Error(jsonErr))
		}
	}
}
