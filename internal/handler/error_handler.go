package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "tasktracker/internal/errors"
)

// NewErrorHandler returns the echo.HTTPErrorHandler that turns every error
// escaping a route into an ErrorResponse. Unrecognised errors are logged in
// full and answered with a fixed 500 body.
func NewErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := normalize(err)
		if status >= http.StatusInternalServerError {
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)
			body.RequestID = requestID
			logger.Error("request failed",
				zap.Error(err),
				zap.String("request_id", requestID),
				zap.String("method", c.Request().Method),
				zap.String("path", c.Path()),
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			logger.Warn("write error response", zap.Error(writeErr))
		}
	}
}

func normalize(err error) (int, apperrors.ErrorResponse) {
	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code < http.StatusInternalServerError {
		if he.Internal != nil {
			if mapped := apperrors.MapErrorToHTTP(he.Internal); mapped.StatusCode < http.StatusInternalServerError {
				return mapped.StatusCode, mapped.ToErrorResponse()
			}
		}
		return he.Code, apperrors.ErrorResponse{
			Error: http.StatusText(he.Code),
			Code:  codeForStatus(he.Code),
		}
	}

	var ve *apperrors.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, apperrors.ErrorResponse{
			Error:   apperrors.ErrValidation.Error(),
			Code:    apperrors.CodeValidation,
			Details: ve.Violations,
		}
	}

	mapped := apperrors.MapErrorToHTTP(err)
	return mapped.StatusCode, mapped.ToErrorResponse()
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case http.StatusUnsupportedMediaType:
		return apperrors.CodeInvalidBody
	case http.StatusUnauthorized:
		return "UNAUTHENTICATED"
	default:
		return "BAD_REQUEST"
	}
}
