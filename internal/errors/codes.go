package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Request errors
const (
	// ErrCodeInvalidInput indicates the request body is invalid or incomplete.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeUnsupportedMedia indicates the request content type is not JSON.
	ErrCodeUnsupportedMedia ErrorCode = "UNSUPPORTED_MEDIA_TYPE"
	// ErrCodeNotFound indicates the requested endpoint does not exist.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeMethodNotAllowed indicates the endpoint exists but not for this method.
	ErrCodeMethodNotAllowed ErrorCode = "METHOD_NOT_ALLOWED"
)

// Pipeline errors
const (
	// ErrCodeDownloadFailed indicates the audio download failed (nonzero exit,
	// timeout, or missing artifact).
	ErrCodeDownloadFailed ErrorCode = "DOWNLOAD_FAILED"
	// ErrCodeNotConfigured indicates a required credential or setting is absent.
	ErrCodeNotConfigured ErrorCode = "NOT_CONFIGURED"
	// ErrCodeTranscriptionFailed indicates the transcription backend failed.
	ErrCodeTranscriptionFailed ErrorCode = "TRANSCRIPTION_FAILED"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeDownloadFailed:      true,
	ErrCodeTranscriptionFailed: true,
	ErrCodeNotConfigured:       false,
	ErrCodeInvalidInput:        false,
	ErrCodeUnsupportedMedia:    false,
	ErrCodeNotFound:            false,
	ErrCodeMethodNotAllowed:    false,
	ErrCodeInternal:            false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
