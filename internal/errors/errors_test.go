package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad request", http.StatusBadRequest)
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidInput, err.Code)
	}
	if err.Message != "bad request" {
		t.Errorf("expected message 'bad request', got %q", err.Message)
	}
	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, err.HTTPStatus)
	}
	if err.Retryable {
		t.Error("INVALID_INPUT should not be retryable")
	}
}

func TestAppError_New_Retryable(t *testing.T) {
	err := New(ErrCodeDownloadFailed, "yt-dlp error: network unreachable", http.StatusInternalServerError)
	if !err.Retryable {
		t.Error("DOWNLOAD_FAILED should be retryable")
	}
}

func TestAppError_Validation_Success(t *testing.T) {
	err := Validation("Missing youtube_url")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", err.HTTPStatus)
	}
	if err.Message != "Missing youtube_url" {
		t.Errorf("expected message to pass through verbatim, got %q", err.Message)
	}
	if err.Retryable {
		t.Error("Validation should not be retryable")
	}
}

func TestAppError_UnsupportedMedia_Success(t *testing.T) {
	err := UnsupportedMedia("Content-Type must be application/json")
	if err.Code != ErrCodeUnsupportedMedia {
		t.Errorf("expected UNSUPPORTED_MEDIA_TYPE, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", err.HTTPStatus)
	}
}

func TestAppError_Download_Success(t *testing.T) {
	err := Download("yt-dlp error: ERROR: Video unavailable")
	if err.Code != ErrCodeDownloadFailed {
		t.Errorf("expected DOWNLOAD_FAILED, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", err.HTTPStatus)
	}
	if !err.Retryable {
		t.Error("Download should be retryable")
	}
}

func TestAppError_DownloadTimeout_Success(t *testing.T) {
	err := DownloadTimeout()
	if err.Code != ErrCodeDownloadFailed {
		t.Errorf("expected DOWNLOAD_FAILED, got %s", err.Code)
	}
	if err.Message != "Download timed out" {
		t.Errorf("expected 'Download timed out', got %q", err.Message)
	}
	if err.Details["timeout"] != true {
		t.Errorf("expected timeout detail, got %v", err.Details["timeout"])
	}
}

func TestAppError_NotConfigured_Success(t *testing.T) {
	err := NotConfigured("OpenAI API key not configured")
	if err.Code != ErrCodeNotConfigured {
		t.Errorf("expected NOT_CONFIGURED, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", err.HTTPStatus)
	}
	if err.Retryable {
		t.Error("NotConfigured should not be retryable")
	}
}

func TestAppError_Transcription_Success(t *testing.T) {
	err := Transcription("OpenAI Whisper API error: rate limit exceeded")
	if err.Code != ErrCodeTranscriptionFailed {
		t.Errorf("expected TRANSCRIPTION_FAILED, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", err.HTTPStatus)
	}
}

func TestAppError_Internal_Success(t *testing.T) {
	cause := fmt.Errorf("connection lost")
	err := Internal(cause)
	if err.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", err.HTTPStatus)
	}
	if err.Cause != cause {
		t.Error("expected cause to be set")
	}
	if err.Retryable {
		t.Error("Internal should NOT be retryable by default")
	}
}

func TestAppError_Error_WithCause(t *testing.T) {
	cause := fmt.Errorf("socket closed")
	err := Download("yt-dlp error: timeout").WithCause(cause)
	msg := err.Error()
	want := "DOWNLOAD_FAILED: yt-dlp error: timeout (cause: socket closed)"
	if msg != want {
		t.Errorf("expected %q, got %q", want, msg)
	}
}

func TestAppError_Error_WithoutCause(t *testing.T) {
	err := Validation("Missing youtube_url")
	want := "INVALID_INPUT: Missing youtube_url"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Internal(cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause through Unwrap")
	}
}

func TestAppError_WithDetails_Merges(t *testing.T) {
	err := Download("yt-dlp error: exit 1").
		WithDetail("exit_code", 1).
		WithDetails(map[string]any{"stderr": "ERROR: blocked"})
	if err.Details["exit_code"] != 1 {
		t.Errorf("expected exit_code=1, got %v", err.Details["exit_code"])
	}
	if err.Details["stderr"] != "ERROR: blocked" {
		t.Errorf("expected stderr detail, got %v", err.Details["stderr"])
	}
}

func TestAppError_ToResponse_Shape(t *testing.T) {
	err := NotConfigured("OpenAI API key not configured")
	resp := err.ToResponse()
	if resp.Success {
		t.Error("expected success=false")
	}
	if resp.Message != "OpenAI API key not configured" {
		t.Errorf("expected error message in envelope, got %q", resp.Message)
	}
	if resp.Data != nil {
		t.Errorf("expected data=nil, got %v", resp.Data)
	}
}

func TestIsAppError(t *testing.T) {
	if !IsAppError(Validation("bad")) {
		t.Error("expected true for AppError")
	}
	if IsAppError(fmt.Errorf("plain")) {
		t.Error("expected false for plain error")
	}
	wrapped := fmt.Errorf("wrapped: %w", Download("yt-dlp error: x"))
	if !IsAppError(wrapped) {
		t.Error("expected true for wrapped AppError")
	}
}

func TestAsAppError(t *testing.T) {
	orig := Transcription("model failed")
	wrapped := fmt.Errorf("pipeline: %w", orig)
	got, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to succeed on wrapped error")
	}
	if got != orig {
		t.Error("expected the original AppError back")
	}
}

func TestFrom_PassesThroughAppError(t *testing.T) {
	orig := Download("yt-dlp error: x")
	got := From(orig)
	if got != orig {
		t.Error("expected From to return the same AppError")
	}
}

func TestFrom_WrapsUnknownError(t *testing.T) {
	cause := fmt.Errorf("surprise")
	got := From(cause)
	if got.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", got.Code)
	}
	if got.Cause != cause {
		t.Error("expected cause to be preserved")
	}
}

func TestIsRetryableCode(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want bool
	}{
		{ErrCodeDownloadFailed, true},
		{ErrCodeTranscriptionFailed, true},
		{ErrCodeNotConfigured, false},
		{ErrCodeInvalidInput, false},
		{ErrCodeUnsupportedMedia, false},
		{ErrCodeInternal, false},
	}
	for _, tc := range tests {
		if got := IsRetryableCode(tc.code); got != tc.want {
			t.Errorf("IsRetryableCode(%s) = %v, expected %v", tc.code, got, tc.want)
		}
	}
}
