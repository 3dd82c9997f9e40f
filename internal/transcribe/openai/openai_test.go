package openai

import (
	"context"
	"strings"
	"testing"
	"time"

	apperrors "github.com/skillsenselab/yt-transcriber/internal/errors"
	"github.com/skillsenselab/yt-transcriber/internal/logger"
	"github.com/skillsenselab/yt-transcriber/internal/transcribe"
)

func testLogger() *logger.Logger {
	return logger.NewDefault("test")
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.Model != "whisper-1" {
		t.Errorf("Model = %q, want whisper-1", cfg.Model)
	}
	if cfg.Timeout != 300*time.Second {
		t.Errorf("Timeout = %v, want 300s", cfg.Timeout)
	}
}

func TestConfigDefaultsPreserveExplicitValues(t *testing.T) {
	cfg := Config{Model: "whisper-large", Timeout: time.Minute}
	cfg.ApplyDefaults()

	if cfg.Model != "whisper-large" {
		t.Errorf("Model = %q, want whisper-large", cfg.Model)
	}
	if cfg.Timeout != time.Minute {
		t.Errorf("Timeout = %v, want 1m", cfg.Timeout)
	}
}

func TestName(t *testing.T) {
	tr := New(Config{}, testLogger())
	if tr.Name() != "openai" {
		t.Errorf("Name() = %q, want openai", tr.Name())
	}
}

func TestAvailable(t *testing.T) {
	ctx := context.Background()

	if New(Config{}, testLogger()).Available(ctx) {
		t.Error("backend without API key reports available")
	}
	if !New(Config{APIKey: "sk-test"}, testLogger()).Available(ctx) {
		t.Error("backend with API key reports unavailable")
	}
}

func TestTranscribeWithoutAPIKey(t *testing.T) {
	tr := New(Config{}, testLogger())

	_, err := tr.Transcribe(context.Background(), transcribe.Request{AudioPath: "audio.m4a"})
	if err == nil {
		t.Fatal("expected error for missing API key")
	}

	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		t.Fatalf("error is not an AppError: %v", err)
	}
	if appErr.Code != apperrors.ErrCodeNotConfigured {
		t.Errorf("Code = %s, want %s", appErr.Code, apperrors.ErrCodeNotConfigured)
	}
	if appErr.Message != "OpenAI API key not configured" {
		t.Errorf("Message = %q, want %q", appErr.Message, "OpenAI API key not configured")
	}
}

func TestTranscribeMissingFile(t *testing.T) {
	// The SDK opens the audio file before any network activity, so a
	// missing file exercises error wrapping without reaching the API.
	tr := New(Config{APIKey: "sk-test"}, testLogger())

	_, err := tr.Transcribe(context.Background(), transcribe.Request{
		AudioPath: "/nonexistent/audio.m4a",
	})
	if err == nil {
		t.Fatal("expected error for missing audio file")
	}

	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		t.Fatalf("error is not an AppError: %v", err)
	}
	if appErr.Code != apperrors.ErrCodeTranscriptionFailed {
		t.Errorf("Code = %s, want %s", appErr.Code, apperrors.ErrCodeTranscriptionFailed)
	}
	if !strings.HasPrefix(appErr.Message, "OpenAI Whisper API error: ") {
		t.Errorf("Message = %q, want OpenAI Whisper API error prefix", appErr.Message)
	}
	if appErr.Cause == nil {
		t.Error("expected wrapped cause")
	}
}
