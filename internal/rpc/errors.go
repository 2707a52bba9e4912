package rpc

import (
	"context"
	"errors"
	"net/http"

	"github.com/mrlokans/bookmarks/internal/apperrors"
)

type ErrorCode string

const (
	CodeBadRequest      ErrorCode = "BadRequest"
	CodeNotFound        ErrorCode = "NotFound"
	CodeTooManyRequests ErrorCode = "TooManyRequests"
	CodeInternalServer  ErrorCode = "InternalServerError"
)

// Error is the structured error returned to callers of a procedure.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

// HTTPStatus maps the code to the status used by the HTTP transport.
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func BadRequest(message string) *Error {
	return &Error{Code: CodeBadRequest, Message: message}
}

// TooManyRequests is returned when a caller exceeds its call budget.
func TooManyRequests(message string) *Error {
	return &Error{Code: CodeTooManyRequests, Message: message}
}

// FromError classifies a service error into a procedure error code.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	var rpcErr *Error
	if errors.As(err, &rpcErr) {
		return rpcErr
	}

	switch {
	case apperrors.IsValidation(err):
		return &Error{Code: CodeBadRequest, Message: err.Error()}
	case apperrors.IsNotFound(err):
		return &Error{Code: CodeNotFound, Message: err.Error()}
	case errors.Is(err, context.DeadlineExceeded):
		return &Error{Code: CodeInternalServer, Message: "procedure timed out"}
	default:
		return &Error{Code: CodeInternalServer, Message: err.Error()}
	}
}
