package whisper

import (
	"context"
	"strings"
	"testing"

	"github.com/skillsenselab/yt-transcriber/internal/logger"
)

func TestIsValidModelSize(t *testing.T) {
	valid := []string{
		"tiny.en", "tiny", "base.en", "base", "small.en", "small",
		"medium.en", "medium", "large-v1", "large-v2", "large-v3", "large",
		"large-v3-turbo", "turbo",
	}
	for _, size := range valid {
		if !IsValidModelSize(size) {
			t.Errorf("expected %q to be a valid model size", size)
		}
	}

	invalid := []string{"", "huge", "Base", "base.en.bin", "large-v4"}
	for _, size := range invalid {
		if IsValidModelSize(size) {
			t.Errorf("expected %q to be invalid", size)
		}
	}
}

func TestModelFileName(t *testing.T) {
	tests := []struct {
		size string
		want string
	}{
		{"base", "ggml-base.bin"},
		{"tiny.en", "ggml-tiny.en.bin"},
		{"medium", "ggml-medium.bin"},
		{"large-v3", "ggml-large-v3.bin"},
		{"large", "ggml-large-v3.bin"},
		{"turbo", "ggml-large-v3-turbo.bin"},
	}
	for _, tc := range tests {
		if got := ModelFileName(tc.size); got != tc.want {
			t.Errorf("ModelFileName(%q) = %q, expected %q", tc.size, got, tc.want)
		}
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.ModelSize != "base" {
		t.Errorf("expected model size 'base', got %q", cfg.ModelSize)
	}
	if cfg.ModelsDir != "models" {
		t.Errorf("expected models dir 'models', got %q", cfg.ModelsDir)
	}
	if cfg.FFmpegPath != "ffmpeg" {
		t.Errorf("expected ffmpeg path 'ffmpeg', got %q", cfg.FFmpegPath)
	}
}

func TestLanguageOrAuto(t *testing.T) {
	if got := languageOrAuto(""); got != "auto" {
		t.Errorf("expected 'auto' for empty language, got %q", got)
	}
	if got := languageOrAuto("en"); got != "en" {
		t.Errorf("expected 'en' to pass through, got %q", got)
	}
}

func TestInt16ToFloat32(t *testing.T) {
	samples := []int16{0, 16384, -16384, 32767, -32768}
	out := int16ToFloat32(samples)

	if len(out) != len(samples) {
		t.Fatalf("expected %d samples, got %d", len(samples), len(out))
	}
	if out[0] != 0 {
		t.Errorf("expected 0, got %f", out[0])
	}
	if out[1] != 0.5 {
		t.Errorf("expected 0.5, got %f", out[1])
	}
	if out[2] != -0.5 {
		t.Errorf("expected -0.5, got %f", out[2])
	}
	if out[4] != -1.0 {
		t.Errorf("expected -1.0, got %f", out[4])
	}
	if out[3] >= 1.0 || out[3] < 0.99 {
		t.Errorf("expected max positive just under 1.0, got %f", out[3])
	}
}

func TestToMono(t *testing.T) {
	stereo := []int16{100, 200, -100, -200, 0, 50}
	mono := toMono(stereo, 2)

	want := []int16{150, -150, 25}
	if len(mono) != len(want) {
		t.Fatalf("expected %d samples, got %d", len(want), len(mono))
	}
	for i := range want {
		if mono[i] != want[i] {
			t.Errorf("mono[%d] = %d, expected %d", i, mono[i], want[i])
		}
	}
}

func TestToMono_SingleChannelPassthrough(t *testing.T) {
	samples := []int16{1, 2, 3}
	mono := toMono(samples, 1)
	if len(mono) != 3 || mono[0] != 1 {
		t.Errorf("expected passthrough for mono input, got %v", mono)
	}
}

func TestBytesToInt16(t *testing.T) {
	// Little-endian: 0x0001, 0x00FF, then zero tail.
	buf := []byte{0x01, 0x00, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x00}
	samples := bytesToInt16(buf, 1)

	if len(samples) < 2 {
		t.Fatalf("expected at least 2 samples, got %d", len(samples))
	}
	if samples[0] != 1 {
		t.Errorf("expected 1, got %d", samples[0])
	}
	if samples[1] != 255 {
		t.Errorf("expected 255, got %d", samples[1])
	}
	// The zero tail is trimmed.
	for _, s := range samples[2:] {
		if s != 0 {
			t.Errorf("expected only zeros after payload, got %d", s)
		}
	}
}

func TestResampleInt16_SameRate(t *testing.T) {
	samples := []int16{1, 2, 3}
	out := resampleInt16(samples, 16000, 16000)
	if len(out) != 3 {
		t.Errorf("expected passthrough for equal rates, got %d samples", len(out))
	}
}

func TestDecode_UnsupportedFormatWithoutFFmpeg(t *testing.T) {
	dec := newPCMDecoder("definitely-not-a-real-binary", logger.NewDefault("test"))
	_, err := dec.Decode(context.Background(), "audio.m4a")
	if err == nil {
		t.Fatal("expected error for unsupported format without ffmpeg")
	}
	if !strings.Contains(err.Error(), "unsupported audio format") {
		t.Errorf("expected unsupported-format error, got %v", err)
	}
}

func TestDecode_MissingOggFileWithoutFFmpeg(t *testing.T) {
	dec := newPCMDecoder("definitely-not-a-real-binary", logger.NewDefault("test"))
	_, err := dec.Decode(context.Background(), "missing.opus")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
