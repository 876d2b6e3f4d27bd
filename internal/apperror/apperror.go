package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a tagged error carrying the HTTP status a gatekeeper stage or
// repository intends for the response. The normalizer is the only place that
// turns one of these into a wire body.
type AppError struct {
	Status  int    // intended HTTP status code
	Message string // public, stage-specific message
	Err     error  // underlying cause, never exposed to clients
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Unauthenticated means no session identity was attached to the request.
func Unauthenticated() *AppError {
	return &AppError{Status: http.StatusUnauthorized, Message: "Unauthorized"}
}

// Forbidden means the session identity lacks the role or ownership required.
func Forbidden(message string) *AppError {
	return &AppError{Status: http.StatusForbidden, Message: message}
}

// BadRequest covers empty bodies, no-op updates and malformed input.
func BadRequest(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message}
}

// InvalidID means a path parameter is not a valid ObjectId hex string.
func InvalidID() *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: "Invalid ID format"}
}

// NotFound embeds the entity name and the missing id in the message.
func NotFound(entity, id string) *AppError {
	return &AppError{
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("%s with ID %s not found.", entity, id),
	}
}

// Validation carries the aggregated, comma-joined field error messages.
func Validation(message string) *AppError {
	return &AppError{Status: http.StatusUnprocessableEntity, Message: message}
}

// Internal wraps an unexpected failure. The cause is kept for logging but the
// public message stays generic.
func Internal(err error) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Message: "Unexpected error", Err: err}
}

// From converts any error into an *AppError, defaulting untagged errors to 500.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
