package log

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(LevelInfo)
	})
	return &buf
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t)
	SetLevel(LevelError)

	Info("hidden")
	Debug("hidden too")
	Error("visible", errors.New("boom"))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info/debug lines should be filtered, got %q", out)
	}
	if !strings.Contains(out, "[ERROR] visible err=boom") {
		t.Fatalf("missing error line, got %q", out)
	}
}

func TestKeyValueFormatting(t *testing.T) {
	buf := capture(t)
	SetLevel(LevelDebug)

	Debug("request", "path", "/events", "note", "two words", "dangling")

	out := buf.String()
	if !strings.Contains(out, "path=/events") {
		t.Errorf("plain value not rendered: %q", out)
	}
	if !strings.Contains(out, `note="two words"`) {
		t.Errorf("spaced value not quoted: %q", out)
	}
	if strings.Contains(out, "dangling") {
		t.Errorf("odd trailing key should be dropped: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":  LevelDebug,
		" ERROR": LevelError,
		"info":   LevelInfo,
		"":       LevelInfo,
		"trace":  LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}
