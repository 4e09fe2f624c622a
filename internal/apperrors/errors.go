// Package apperrors defines the error code taxonomy for the intake API.
package apperrors

import "net/http"

// Code identifies a class of request failure.
type Code string

// Error codes surfaced to API clients.
const (
	// Input validation errors (400)
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeMissingInput    Code = "MISSING_INPUT"
	CodeInvalidFileType Code = "INVALID_FILE_TYPE"
	CodeFileTooLarge    Code = "FILE_TOO_LARGE"
	CodeTextTooLong     Code = "TEXT_TOO_LONG"
	CodeMaliciousInput  Code = "MALICIOUS_INPUT"

	// Processing errors (422)
	CodeOCRFailed      Code = "OCR_FAILED"
	CodeAmbiguousInput Code = "AMBIGUOUS_INPUT"

	// Server errors (500)
	CodeInternal Code = "INTERNAL_ERROR"

	// Rate limiting (429)
	CodeRateLimited Code = "RATE_LIMIT_EXCEEDED"
)

// Error is a request failure with a client-facing code and HTTP status.
type Error struct {
	Code       Code   `json:"errorCode"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

// Validation builds a 400 error with the given code.
func Validation(code Code, message string) *Error {
	return &Error{Code: code, Message: message, HTTPStatus: http.StatusBadRequest}
}

// Processing builds a 422 error with the given code.
func Processing(code Code, message string) *Error {
	return &Error{Code: code, Message: message, HTTPStatus: http.StatusUnprocessableEntity}
}

// Internal builds a 500 error with a generic client-facing message.
func Internal() *Error {
	return &Error{
		Code:       CodeInternal,
		Message:    "An unexpected error occurred. Please try again later.",
		HTTPStatus: http.StatusInternalServerError,
	}
}

// RateLimited builds a 429 error.
func RateLimited(message string) *Error {
	return &Error{Code: CodeRateLimited, Message: message, HTTPStatus: http.StatusTooManyRequests}
}
