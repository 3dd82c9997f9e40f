package errors

import (
	stderrors "errors"
)

// Response is the JSON envelope returned to clients for every request,
// success and failure alike.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ToResponse converts an AppError to the failure envelope.
func (e *AppError) ToResponse() Response {
	return Response{
		Success: false,
		Message: e.Message,
		Data:    nil,
	}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// From coerces any error into an AppError, wrapping unknown errors as internal.
func From(err error) *AppError {
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	return Internal(err)
}
