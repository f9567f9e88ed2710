package http

import (
	"errors"
	"net/http"

	"workorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

const operationFailedMessage = "The operation could not be completed. Reload the board and try again."

// statusFor maps a use-case error to an HTTP status. Specific kinds are
// checked before ErrOperationFailed because that error unwraps to its cause.
func statusFor(err error) int {
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fieldOf returns the offending parameter name carried by err, if any.
func fieldOf(err error) string {
	var (
		required   *errs.ValueIsRequiredError
		invalid    *errs.ValueIsInvalidError
		outOfRange *errs.ValueIsOutOfRangeError
		conflict   *errs.ConflictError
	)
	switch {
	case errors.As(err, &required):
		return required.ParamName
	case errors.As(err, &invalid):
		return invalid.ParamName
	case errors.As(err, &outOfRange):
		return outOfRange.ParamName
	case errors.As(err, &conflict):
		return conflict.ParamName
	default:
		return ""
	}
}

// writeError renders err. Internal failures are logged and hidden from the
// client.
func (s *Server) writeError(c echo.Context, err error) error {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "Request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)

		msg := http.StatusText(code)
		if errors.Is(err, errs.ErrOperationFailed) {
			msg = operationFailedMessage
		}
		return c.JSON(code, Error{Code: code, Message: msg})
	}

	return c.JSON(code, Error{Code: code, Message: err.Error(), Field: fieldOf(err)})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: ErrMissingToken.Error()})
}
