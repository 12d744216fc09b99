package clienterr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a client-side failure.
type Code string

const (
	CodeNetworkFailure     Code = "network_failure"
	CodeAuthExpired        Code = "auth_expired"
	CodeValidationConflict Code = "validation_conflict"
	CodeNotFound           Code = "not_found"
	CodeUnexpectedStatus   Code = "unexpected_status"
)

type ClientError struct {
	Code    Code
	Message string
	Status  int // HTTP status when the error came from a response
	cause   error
}

func (e *ClientError) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ClientError) Unwrap() error {
	return e.cause
}

func New(code Code, message string) *ClientError {
	return &ClientError{Code: code, Message: message}
}

func Wrap(code Code, message string, err error) *ClientError {
	return &ClientError{Code: code, Message: message, cause: err}
}

// FromStatus maps a non-2xx response onto the taxonomy. The remote service
// answers expired or invalid credentials with 403.
func FromStatus(status int, message string) *ClientError {
	code := CodeUnexpectedStatus
	switch status {
	case http.StatusForbidden, http.StatusUnauthorized:
		code = CodeAuthExpired
	case http.StatusNotFound:
		code = CodeNotFound
	case http.StatusBadRequest, http.StatusConflict:
		code = CodeValidationConflict
	}
	return &ClientError{Code: code, Message: message, Status: status}
}

func Is(err error, code Code) bool {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce.Code == code
	}
	return false
}

func IsNetworkFailure(err error) bool     { return Is(err, CodeNetworkFailure) }
func IsAuthExpired(err error) bool        { return Is(err, CodeAuthExpired) }
func IsValidationConflict(err error) bool { return Is(err, CodeValidationConflict) }
func IsNotFound(err error) bool           { return Is(err, CodeNotFound) }
