package validation

import (
	"strings"
	"testing"

	"github.com/skillsenselab/yt-transcriber/internal/errors"
)

func TestValidatorRequired(t *testing.T) {
	v := New()
	v.Required("binary", "yt-dlp")
	if v.HasErrors() {
		t.Error("expected no errors for valid input")
	}

	v2 := New()
	v2.Required("binary", "")
	if !v2.HasErrors() {
		t.Error("expected error for empty required field")
	}

	v3 := New()
	v3.Required("binary", "   ")
	if !v3.HasErrors() {
		t.Error("expected error for whitespace-only required field")
	}
}

func TestValidatorRange(t *testing.T) {
	v := New()
	v.Range("port", 8080, 1, 65535)
	if v.HasErrors() {
		t.Error("expected no error for value in range")
	}

	v2 := New()
	v2.Range("port", 0, 1, 65535)
	if !v2.HasErrors() {
		t.Error("expected error for value below range")
	}

	v3 := New()
	v3.Range("port", 70000, 1, 65535)
	if !v3.HasErrors() {
		t.Error("expected error for value above range")
	}
}

func TestValidatorMin(t *testing.T) {
	v := New()
	v.Min("retries", 10, 0)
	if v.HasErrors() {
		t.Error("expected no error for value meeting minimum")
	}

	v2 := New()
	v2.Min("retries", -1, 0)
	if !v2.HasErrors() {
		t.Error("expected error for value below minimum")
	}
}

func TestValidatorOneOf(t *testing.T) {
	allowed := []string{"json", "console"}

	v := New()
	v.OneOf("format", "json", allowed)
	if v.HasErrors() {
		t.Error("expected no error for allowed value")
	}

	v2 := New()
	v2.OneOf("format", "xml", allowed)
	if !v2.HasErrors() {
		t.Error("expected error for disallowed value")
	}

	// Empty values pass: OneOf is for optional fields.
	v3 := New()
	v3.OneOf("format", "", allowed)
	if v3.HasErrors() {
		t.Error("expected no error for empty value")
	}
}

func TestValidatorCustom(t *testing.T) {
	v := New()
	v.Custom(true, "field", "should not appear")
	if v.HasErrors() {
		t.Error("expected no error when condition holds")
	}

	v2 := New()
	v2.Custom(false, "timeout", "must not exceed the process timeout")
	if !v2.HasErrors() {
		t.Error("expected error when condition fails")
	}
}

func TestValidatorValidate_CollectsAllErrors(t *testing.T) {
	v := New().
		Required("binary", "").
		Range("port", 0, 1, 65535)

	appErr := v.Validate()
	if appErr == nil {
		t.Fatal("expected AppError for invalid input")
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
	}
	if !strings.Contains(appErr.Message, "binary") || !strings.Contains(appErr.Message, "port") {
		t.Errorf("expected both fields in message, got %q", appErr.Message)
	}
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok {
		t.Fatalf("expected []FieldError in details, got %T", appErr.Details["fields"])
	}
	if len(fields) != 2 {
		t.Errorf("expected 2 field errors, got %d", len(fields))
	}
}

func TestValidatorValidate_NilWhenClean(t *testing.T) {
	v := New().Required("binary", "yt-dlp")
	if appErr := v.Validate(); appErr != nil {
		t.Errorf("expected nil for valid input, got %v", appErr)
	}
}

func TestRequiredHelper(t *testing.T) {
	if err := Required("name", "value"); err != nil {
		t.Errorf("expected nil for non-empty value, got %v", err)
	}
	if err := Required("name", ""); err == nil {
		t.Error("expected error for empty value")
	}
}

func TestStructValidate(t *testing.T) {
	type serverCfg struct {
		Host string `json:"host" validate:"required"`
		Port int    `json:"port" validate:"min=1,max=65535"`
	}

	if err := Validate(serverCfg{Host: "0.0.0.0", Port: 8080}); err != nil {
		t.Errorf("expected nil for valid struct, got %v", err)
	}

	err := Validate(serverCfg{Host: "", Port: 0})
	if err == nil {
		t.Fatal("expected error for invalid struct")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if !strings.Contains(appErr.Message, "host: is required") {
		t.Errorf("expected host error in message, got %q", appErr.Message)
	}
	if !strings.Contains(appErr.Message, "port: must be at least 1") {
		t.Errorf("expected port error in message, got %q", appErr.Message)
	}
}

func TestStructValidate_UsesJSONTagNames(t *testing.T) {
	type cfg struct {
		TempAudioDir string `json:"temp_audio_dir" validate:"required"`
	}

	err := Validate(cfg{})
	if err == nil {
		t.Fatal("expected error for missing field")
	}
	if !strings.Contains(err.Error(), "temp_audio_dir") {
		t.Errorf("expected json tag name in error, got %q", err.Error())
	}
}
