package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidBody is returned when a request body cannot be decoded.
	ErrInvalidBody = errors.New("invalid request body")
	// ErrValidation is returned when a payload fails its schema.
	ErrValidation = errors.New("validation failed")
	// ErrUnauthenticated is returned when no identity token was presented.
	ErrUnauthenticated = errors.New("no token provided")
	// ErrInvalidToken is returned when a presented token cannot be verified.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenRevoked is returned when a verified token has been logged out.
	ErrTokenRevoked = errors.New("token revoked")
	// ErrMissingIdentity is returned when a token is requested for a user that was never persisted.
	ErrMissingIdentity = errors.New("cannot issue token: identity has no id")
	// ErrNoTasksFound is returned when the caller owns no tasks at all.
	ErrNoTasksFound = errors.New("no tasks found")
	// ErrTaskNotFound is returned when a task does not exist or belongs to someone else.
	ErrTaskNotFound = errors.New("task not found")
	// ErrUserNotFound is returned when the identified user no longer exists.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyRegistered is returned when registering an email that is taken.
	ErrUserAlreadyRegistered = errors.New("user already registered")
	// ErrInvalidCredentials is returned for an unknown email and for a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrRateLimited is returned when a client exceeds its request budget.
	ErrRateLimited = errors.New("rate limit exceeded")
	// ErrRevocationUnavailable is returned when a logout cannot be recorded.
	ErrRevocationUnavailable = errors.New("token revocation unavailable")
)

// Messages and codes written to clients.
const (
	MessageInternal = "Something failed."
	CodeInternal    = "INTERNAL_ERROR"
	CodeValidation  = "VALIDATION_FAILED"
	CodeInvalidBody = "INVALID_BODY"
)

// Violation describes one field that failed validation.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error     string      `json:"error"`
	Code      string      `json:"code"`
	Details   []Violation `json:"details,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// ValidationError carries the ordered field violations of a rejected payload.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error()
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// mappings is evaluated in order; the first match wins.
var mappings = []struct {
	target error
	status int
	msg    string
	code   string
}{
	{ErrInvalidBody, http.StatusBadRequest, "invalid request body", CodeInvalidBody},
	{ErrValidation, http.StatusBadRequest, "validation failed", CodeValidation},
	{ErrUnauthenticated, http.StatusUnauthorized, "Access denied. No token provided.", "UNAUTHENTICATED"},
	{ErrInvalidToken, http.StatusBadRequest, "Invalid token.", "INVALID_TOKEN"},
	{ErrTokenRevoked, http.StatusBadRequest, "Invalid token.", "INVALID_TOKEN"},
	{ErrNoTasksFound, http.StatusNotFound, "No tasks found.", "TASK_NOT_FOUND"},
	{ErrTaskNotFound, http.StatusNotFound, "task not found", "TASK_NOT_FOUND"},
	{ErrUserNotFound, http.StatusNotFound, "user not found", "USER_NOT_FOUND"},
	{ErrUserAlreadyRegistered, http.StatusBadRequest, "User already registered.", "USER_ALREADY_REGISTERED"},
	{ErrInvalidCredentials, http.StatusNotFound, "Invalid email or password.", "INVALID_CREDENTIALS"},
	{ErrRateLimited, http.StatusTooManyRequests, "rate limit exceeded", "RATE_LIMITED"},
	{ErrRevocationUnavailable, http.StatusServiceUnavailable, "Logout is temporarily unavailable.", "REVOCATION_UNAVAILABLE"},
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything it does not
// recognise becomes a 500 carrying no internal detail.
func MapErrorToHTTP(err error) *HTTPError {
	for _, m := range mappings {
		if errors.Is(err, m.target) {
			return NewHTTPError(m.status, m.msg, m.code)
		}
	}
	return NewHTTPError(http.StatusInternalServerError, MessageInternal, CodeInternal)
}
