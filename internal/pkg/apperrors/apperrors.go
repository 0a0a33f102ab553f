package apperrors

import (
	"errors"
	"net/http"
)

type Kind string

const (
	Unauthorized Kind = "UNAUTHORIZED"
	BadRequest   Kind = "BAD_REQUEST"
	ServerError  Kind = "SERVER_ERROR"
)

// AppError carries a Kind that handlers translate into an HTTP status.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func NewUnauthorized(message string, err error) *AppError {
	return New(Unauthorized, message, err)
}

func NewBadRequest(message string, err error) *AppError {
	return New(BadRequest, message, err)
}

func NewServerError(message string, err error) *AppError {
	return New(ServerError, message, err)
}

// KindOf returns the Kind of the first AppError in err's chain, ServerError otherwise.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ServerError
}

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case Unauthorized:
		return http.StatusUnauthorized
	case BadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the user-facing message of an AppError, or fallback.
func Message(err error, fallback string) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
