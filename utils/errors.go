package utils

import (
	"errors"
	"net/http"
)

// CustomError carries an HTTP status alongside a client-safe message
type CustomError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *CustomError) Error() string {
	return e.Message
}

// NewCustomError is a helper for building a CustomError
func NewCustomError(statusCode int, message string) *CustomError {
	return &CustomError{StatusCode: statusCode, Message: message}
}

// AsCustomError unwraps err into a CustomError, falling back to a 500.
func AsCustomError(err error) *CustomError {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr
	}
	return NewCustomError(http.StatusInternalServerError, "Internal Server Error")
}
