package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"Warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewWithWriterWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, Options{Level: "info"})

	l.Info("task added", "index", 1)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if rec["msg"] != "task added" {
		t.Errorf("msg = %v, want %q", rec["msg"], "task added")
	}
	if rec["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", rec["level"])
	}
	if rec["index"] != float64(1) {
		t.Errorf("index = %v, want 1", rec["index"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, Options{Level: "warn"})

	l.Debug("hidden")
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected nothing below WARN, got %q", buf.String())
	}

	l.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected warn record, got %q", buf.String())
	}
}

func TestConsoleReceivesRecordsAtItsOwnLevel(t *testing.T) {
	var file, console bytes.Buffer
	l := NewWithWriter(&file, Options{Level: "debug", Console: &console, ConsoleLevel: "warn"})

	l.Info("file only")
	l.Warn("both sinks")

	if !strings.Contains(file.String(), "file only") || !strings.Contains(file.String(), "both sinks") {
		t.Errorf("file sink missed records: %q", file.String())
	}
	if strings.Contains(console.String(), "file only") {
		t.Errorf("console sink got an info record: %q", console.String())
	}
	if !strings.Contains(console.String(), "level=WARN") || !strings.Contains(console.String(), "both sinks") {
		t.Errorf("console sink missed warn record: %q", console.String())
	}
}

func TestHoldSilencesConsoleOnly(t *testing.T) {
	var file, console bytes.Buffer
	l := NewWithWriter(&file, Options{Console: &console, ConsoleLevel: "warn"})

	l.Hold()
	l.Error("while held")
	if console.Len() != 0 {
		t.Errorf("console written while held: %q", console.String())
	}
	if !strings.Contains(file.String(), "while held") {
		t.Errorf("file sink should keep writing while held: %q", file.String())
	}

	l.Release()
	l.Error("after release")
	if !strings.Contains(console.String(), "after release") {
		t.Errorf("console missed record after release: %q", console.String())
	}
}

func TestConsoleWithoutFile(t *testing.T) {
	var console bytes.Buffer
	l, err := New(Options{Console: &console, ConsoleLevel: "info"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer l.Close()

	l.Info("exiting", "tasks", 2)
	if !strings.Contains(console.String(), "tasks=2") {
		t.Errorf("console = %q, want tasks=2", console.String())
	}
}

func TestNewCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tasks.log")

	l, err := New(Options{File: path, Level: "info"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	l.Info("hello")
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file missing record: %q", data)
	}

	// Second close is a no-op.
	if err := l.Close(); err != nil {
		t.Errorf("second Close returned %v", err)
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Info("discarded")
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("Nop logger should not be enabled at any level")
	}
	if err := l.Close(); err != nil {
		t.Errorf("Close on Nop returned %v", err)
	}
}
