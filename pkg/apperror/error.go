package apperror

import (
	"fmt"
	"net/http"
)

// Error represents an application error with HTTP status and error code
type Error struct {
	HTTPStatus int
	Code       string
	Message    string
	Internal   error
	Details    map[string]any
}

func (e *Error) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Internal
}

// WithInternal returns a copy of the error with an internal error attached
func (e *Error) WithInternal(err error) *Error {
	c := *e
	c.Internal = err
	return &c
}

// WithMessage returns a copy of the error with a custom message
func (e *Error) WithMessage(message string) *Error {
	c := *e
	c.Message = message
	return &c
}

// WithDetails returns a copy of the error with details attached
func (e *Error) WithDetails(details map[string]any) *Error {
	c := *e
	c.Details = details
	return &c
}

func New(status int, code, message string) *Error {
	return &Error{
		HTTPStatus: status,
		Code:       code,
		Message:    message,
	}
}

var (
	ErrNotFound     = New(http.StatusNotFound, "not_found", "Resource not found")
	ErrViewNotFound = New(http.StatusNotFound, "view_not_found", "Page view not found or expired")
	ErrBadRequest   = New(http.StatusBadRequest, "bad_request", "Invalid request")
	ErrRateLimited  = New(http.StatusTooManyRequests, "rate_limited", "Too many requests")
	ErrInternal     = New(http.StatusInternalServerError, "internal_error", "An internal error occurred")
)

// ToHTTPError converts an error to a status code and JSON body. Errors that
// are not *Error become a generic internal error.
func ToHTTPError(err error) (int, map[string]any) {
	appErr, ok := err.(*Error)
	if !ok {
		appErr = ErrInternal
	}

	body := map[string]any{
		"code":    appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		body["details"] = appErr.Details
	}
	return appErr.HTTPStatus, map[string]any{"error": body}
}

func NewBadRequest(message string) *Error {
	return ErrBadRequest.WithMessage(message)
}

// NewNotFound creates a not found error for a resource type and ID
func NewNotFound(resourceType, id string) *Error {
	return ErrNotFound.WithMessage(fmt.Sprintf("%s '%s' not found", resourceType, id))
}

func NewInternal(message string, err error) *Error {
	return ErrInternal.WithMessage(message).WithInternal(err)
}
