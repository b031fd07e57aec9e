package apperror

import (
	"fmt"
	"net/http"
)

type AppError struct {
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
	Err     error               `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}

// Unprocessable reports a validation failure with every offending field at once.
func Unprocessable(message string, fields map[string][]string) *AppError {
	e := New(http.StatusUnprocessableEntity, message, nil)
	e.Fields = fields
	return e
}

// MalformedDate is a validation failure carrying the raw input that could not
// be parsed as a date.
func MalformedDate(field, raw string) *AppError {
	return Unprocessable(
		fmt.Sprintf("Invalid date format: %s", raw),
		map[string][]string{field: {fmt.Sprintf("Invalid date format: %s", raw)}},
	)
}
