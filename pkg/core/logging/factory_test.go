package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"

	nllog "github.com/msto63/numlab/foundation/core/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected nllog.Level
	}{
		{"trace", nllog.LevelTrace},
		{"debug", nllog.LevelDebug},
		{"info", nllog.LevelInfo},
		{"warning", nllog.LevelWarn},
		{"ERROR", nllog.LevelError},
		{"", nllog.LevelInfo},
		{"chatty", nllog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected nllog.Format
	}{
		{"", nllog.FormatText},
		{"json", nllog.FormatJSON},
		{"logfmt", nllog.FormatLogfmt},
		{"console", nllog.FormatConsole},
		{"yaml", nllog.FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseFormat(tt.input); got != tt.expected {
				t.Errorf("parseFormat(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Name:          "numlab",
		Level:         "debug",
		Format:        "text",
		Output:        &buf,
		CorrelationID: "fixed-id",
	})

	logger.Debug("collected", nllog.Field("count", 2))
	out := buf.String()
	for _, want := range []string{"[DBG]", "{numlab}", "(fixed-id)", "collected", "count=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestNewLoggerGeneratesSessionID(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(LoggerConfig{Name: "numlab", Format: "logfmt", Output: &buf}).Info("start")

	out := buf.String()
	idx := strings.Index(out, "correlation_id=")
	if idx < 0 {
		t.Fatalf("correlation id missing: %q", out)
	}
	id := strings.Fields(out[idx+len("correlation_id="):])[0]
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("correlation id %q is not a UUID: %v", id, err)
	}
}

func TestNewSessionIDUnique(t *testing.T) {
	if NewSessionID() == NewSessionID() {
		t.Error("NewSessionID() returned the same id twice")
	}
}

func TestNewLoggerDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Output: &buf})

	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug should be filtered by default, got %q", buf.String())
	}
	logger.Info("shown")
	if !strings.Contains(buf.String(), "[INF] ") {
		t.Errorf("text format expected by default, got %q", buf.String())
	}
}
