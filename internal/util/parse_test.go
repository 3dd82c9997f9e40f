package util

import "testing"

func TestParseSize(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"10MB", 10 * 1024 * 1024},
		{"512KB", 512 * 1024},
		{"1GB", 1024 * 1024 * 1024},
		{"2048", 2048},
		{"1mb", 1024 * 1024},
		{" 5MB ", 5 * 1024 * 1024},
		{"", 42},
		{"not-a-size", 42},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			if got := ParseSize(tc.input, 42); got != tc.want {
				t.Errorf("ParseSize(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		visiblePrefix int
		want          string
	}{
		{"long key", "sk-abcdef123456", 5, "sk-ab***"},
		{"short key fully masked", "abc", 5, "***"},
		{"empty", "", 3, "***"},
		{"exact length fully masked", "abcde", 5, "***"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MaskSecret(tc.input, tc.visiblePrefix); got != tc.want {
				t.Errorf("MaskSecret(%q, %d) = %q, want %q", tc.input, tc.visiblePrefix, got, tc.want)
			}
		})
	}
}
