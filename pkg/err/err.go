package errprocess

import (
	"fmt"
	"net/http"

	"video_platform_service/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// APIError is the single error shape every handler failure is funnelled into
type APIError struct {
	StatusCode int
	Message    string
	Errors     []string
	Data       interface{}

	cause error
}

// New create an APIError carrying a stack trace
func New(statusCode int, message string, errs ...string) *APIError {
	if message == "" {
		message = "Something went wrong"
	}
	if errs == nil {
		errs = []string{}
	}
	return &APIError{
		StatusCode: statusCode,
		Message:    message,
		Errors:     errs,
		cause:      errors.New(message),
	}
}

// Error implements error
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap expose the wrapped cause
func (e *APIError) Unwrap() error {
	return errors.Cause(e.cause)
}

// Stack render the stack trace recorded when the error was created
func (e *APIError) Stack() string {
	if e.cause == nil {
		return ""
	}
	return fmt.Sprintf("%+v", e.cause)
}

// Wrap turn any error into an APIError, keeping the original message.
// Errors not already in APIError shape default to status 500, fiber errors keep their code.
func Wrap(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	statusCode := http.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		statusCode = fiberErr.Code
	}

	message := err.Error()
	if message == "" {
		message = "Something went wrong"
	}

	return &APIError{
		StatusCode: statusCode,
		Message:    message,
		Errors:     []string{},
		cause:      errors.WithStack(err),
	}
}

// WithCause attach the underlying error, message stays user facing
func (e *APIError) WithCause(err error) *APIError {
	if err != nil {
		e.cause = errors.Wrap(err, e.Message)
	}
	return e
}

// BadRequest 400
func BadRequest(message string, errs ...string) *APIError {
	return New(http.StatusBadRequest, message, errs...)
}

// Unauthorized 401
func Unauthorized(message string) *APIError {
	return New(http.StatusUnauthorized, message)
}

// NotFound 404
func NotFound(message string) *APIError {
	return New(http.StatusNotFound, message)
}

// Conflict 409
func Conflict(message string) *APIError {
	return New(http.StatusConflict, message)
}

// Internal 500, the cause is logged but not shown to the caller
func Internal(message string, cause error) *APIError {
	if cause != nil {
		logger.Log.Error(message, zap.Error(cause))
	}
	return New(http.StatusInternalServerError, message).WithCause(cause)
}
