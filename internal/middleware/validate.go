package middleware

import (
	"github.com/labstack/echo/v4"

	apperrors "tasktracker/internal/errors"
)

const payloadKey = "payload"

// ValidateBody decodes the JSON body into a T and checks it with the echo
// instance's Validator before the handler runs. A body that does not decode
// fails with apperrors.ErrInvalidBody; a schema failure returns the
// validator's error. Unknown fields are ignored.
func ValidateBody[T any]() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var payload T
			if err := (&echo.DefaultBinder{}).BindBody(c, &payload); err != nil {
				return apperrors.ErrInvalidBody
			}
			if err := c.Validate(&payload); err != nil {
				return err
			}

			c.Set(payloadKey, payload)
			return next(c)
		}
	}
}

// Payload returns the body validated by ValidateBody[T].
func Payload[T any](c echo.Context) (T, bool) {
	payload, ok := c.Get(payloadKey).(T)
	return payload, ok
}
