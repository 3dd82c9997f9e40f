// Package errors provides unified error handling for the transcriber service.
// It implements structured error types with error codes, HTTP status mapping,
// and retryable detection.
package errors

import (
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Retryable:  IsRetryableCode(code),
	}
}

// --- Common Error Constructors ---

// Validation creates a new AppError for invalid request input.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		HTTPStatus: http.StatusBadRequest, Retryable: false,
	}
}

// UnsupportedMedia creates a new AppError for a request with the wrong content type.
func UnsupportedMedia(message string) *AppError {
	return &AppError{
		Code: ErrCodeUnsupportedMedia, Message: message,
		HTTPStatus: http.StatusUnsupportedMediaType, Retryable: false,
	}
}

// NotFound creates a new AppError for a request to an unknown endpoint.
func NotFound(message string) *AppError {
	return &AppError{
		Code: ErrCodeNotFound, Message: message,
		HTTPStatus: http.StatusNotFound, Retryable: false,
	}
}

// MethodNotAllowed creates a new AppError for a known endpoint called with
// the wrong HTTP method.
func MethodNotAllowed(message string) *AppError {
	return &AppError{
		Code: ErrCodeMethodNotAllowed, Message: message,
		HTTPStatus: http.StatusMethodNotAllowed, Retryable: false,
	}
}

// Download creates a new AppError for a failed audio download.
func Download(message string) *AppError {
	return &AppError{
		Code: ErrCodeDownloadFailed, Message: message,
		HTTPStatus: http.StatusInternalServerError, Retryable: true,
	}
}

// DownloadTimeout creates a new AppError for a download that exceeded its
// wall-clock limit.
func DownloadTimeout() *AppError {
	return &AppError{
		Code: ErrCodeDownloadFailed, Message: "Download timed out",
		HTTPStatus: http.StatusInternalServerError, Retryable: true,
		Details: map[string]any{"timeout": true},
	}
}

// NotConfigured creates a new AppError for a missing required configuration,
// such as an absent API credential.
func NotConfigured(message string) *AppError {
	return &AppError{
		Code: ErrCodeNotConfigured, Message: message,
		HTTPStatus: http.StatusInternalServerError, Retryable: false,
	}
}

// Transcription creates a new AppError for a failed transcription.
func Transcription(message string) *AppError {
	return &AppError{
		Code: ErrCodeTranscriptionFailed, Message: message,
		HTTPStatus: http.StatusInternalServerError, Retryable: true,
	}
}

// Internal creates a new AppError for an internal server error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred. Please try again or contact support.",
		HTTPStatus: http.StatusInternalServerError, Retryable: false, Cause: cause,
	}
}
