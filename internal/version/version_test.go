package version

import (
	"strings"
	"testing"
)

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	if info == nil {
		t.Fatal("expected non-nil version info")
	}
	if info.Version == "" {
		t.Error("expected a version string")
	}
}

func TestGetShortVersion(t *testing.T) {
	short := GetShortVersion()
	if short == "" {
		t.Fatal("expected non-empty short version")
	}
	if !strings.HasPrefix(short, Version) {
		t.Errorf("short version %q should start with %q", short, Version)
	}
}

func TestInfoString(t *testing.T) {
	info := &Info{Version: "1.2.0", GitCommit: "abc1234", BuildTime: "2026-01-02T15:04:05Z"}
	s := info.String()
	if !strings.Contains(s, "1.2.0") || !strings.Contains(s, "abc1234") {
		t.Errorf("String() = %q, want version and commit included", s)
	}
}
