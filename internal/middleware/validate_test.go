package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tasktracker/internal/errors"
	"tasktracker/internal/model"
	"tasktracker/internal/validation"
)

func TestValidateBody(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectedErr error
		fields      []string
	}{
		{
			name: "valid payload reaches handler",
			body: `{"title":"Write docs","content":"all of them","status":"not_started","priority":"low","user_id":99}`,
		},
		{
			name:        "malformed json",
			body:        `{"title":`,
			expectedErr: apperrors.ErrInvalidBody,
		},
		{
			name:        "schema violations in field order",
			body:        `{"title":"ab","content":"","status":"done","priority":"low"}`,
			expectedErr: apperrors.ErrValidation,
			fields:      []string{"title", "content", "status"},
		},
		{
			name:        "empty body",
			body:        ``,
			expectedErr: apperrors.ErrValidation,
			fields:      []string{"title", "content", "status", "priority"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Validator = validation.New()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var received model.TaskInput
			reached := false
			handler := ValidateBody[model.TaskInput]()(func(c echo.Context) error {
				payload, ok := Payload[model.TaskInput](c)
				require.True(t, ok)
				received = payload
				reached = true
				return c.NoContent(http.StatusCreated)
			})

			err := handler(c)
			if tt.expectedErr == nil {
				require.NoError(t, err)
				assert.Equal(t, http.StatusCreated, rec.Code)
				assert.Equal(t, "Write docs", received.Title)
				return
			}

			assert.ErrorIs(t, err, tt.expectedErr)
			assert.False(t, reached)

			if tt.fields != nil {
				var verr *apperrors.ValidationError
				require.True(t, errors.As(err, &verr))
				fields := make([]string, 0, len(verr.Violations))
				for _, v := range verr.Violations {
					fields = append(fields, v.Field)
				}
				assert.Equal(t, tt.fields, fields)
			}
		})
	}
}
