package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestCLIModeWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelInfo, &buf)

	Info("Parser", "parsed %d records", 3)
	Error("Viewer", errors.New("boom"), "render failed")

	out := buf.String()
	if !strings.Contains(out, "parsed 3 records") {
		t.Errorf("Expected info line in output, got %q", out)
	}
	if !strings.Contains(out, "render failed") || !strings.Contains(out, "boom") {
		t.Errorf("Expected error line with error attr, got %q", out)
	}
}

func TestCLIModeFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	InitForCLI(LevelWarn, &buf)

	Debug("Parser", "noise")
	Info("Parser", "still noise")
	Warn("Parser", "kept")

	out := buf.String()
	if strings.Contains(out, "noise") {
		t.Errorf("Expected debug/info filtered, got %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("Expected warning kept, got %q", out)
	}
}

func TestTUIModeDeliversToChannel(t *testing.T) {
	ch := InitForTUI(LevelDebug)
	defer CloseTUIChannel()

	Warn("KeyHandler", "copy failed")

	select {
	case entry := <-ch:
		if entry.Level != LevelWarn || entry.Subsystem != "KeyHandler" {
			t.Errorf("Unexpected entry: %+v", entry)
		}
		if entry.Message != "copy failed" {
			t.Errorf("Unexpected message: %q", entry.Message)
		}
	default:
		t.Fatal("Expected an entry on the TUI channel")
	}
}

func TestLogLevelString(t *testing.T) {
	cases := map[LogLevel]string{
		LevelDebug:   "DEBUG",
		LevelInfo:    "INFO",
		LevelWarn:    "WARN",
		LevelError:   "ERROR",
		LogLevel(42): "UNKNOWN",
	}
	for level, want := range cases {
		if level.String() != want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", level, level.String(), want)
		}
	}
}
