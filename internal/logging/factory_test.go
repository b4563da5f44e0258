package logging

import (
	"bytes"
	"strings"
	"testing"

	mdwlog "github.com/msto63/ppinterpreter/foundation/core/log"
)

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("ppi")

	if cfg.Name != "ppi" {
		t.Errorf("Name = %v, want ppi", cfg.Name)
	}
	if cfg.Level != "warn" {
		t.Errorf("Level = %v, want warn", cfg.Level)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
}

func TestNewLogger_Level(t *testing.T) {
	tests := []struct {
		level string
		want  mdwlog.Level
	}{
		{"trace", mdwlog.LevelTrace},
		{"debug", mdwlog.LevelDebug},
		{"info", mdwlog.LevelInfo},
		{"warning", mdwlog.LevelWarn},
		{"error", mdwlog.LevelError},
		{"bogus", mdwlog.LevelWarn},
		{"", mdwlog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := NewLogger(LoggerConfig{Level: tt.level, Output: &bytes.Buffer{}})
			if got := logger.GetLevel(); got != tt.want {
				t.Errorf("GetLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewLogger_Output(t *testing.T) {
	primary := &bytes.Buffer{}

	logger := NewLogger(LoggerConfig{
		Name:   "ppi",
		Level:  "info",
		Format: "json",
		Output: primary,
		RunID:  "0123456789abcdef",
	})
	logger.Info("hello")

	out := primary.String()
	for _, want := range []string{`"message":"hello"`, `"logger":"ppi"`, `"run_id":"0123456789abcdef"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s: %s", want, out)
		}
	}
}

func TestNewLogger_AdditionalOutputs(t *testing.T) {
	primary := &bytes.Buffer{}
	extra := &bytes.Buffer{}

	cfg := DefaultLoggerConfig("ppi")
	cfg.Output = primary
	cfg.AdditionalOutputs = append(cfg.AdditionalOutputs, extra)
	NewLogger(cfg).Warn("twice")

	if !strings.Contains(primary.String(), "twice") || !strings.Contains(extra.String(), "twice") {
		t.Errorf("primary = %q, extra = %q", primary.String(), extra.String())
	}
}

func TestNewLogger_RunID(t *testing.T) {
	a := NewLogger(LoggerConfig{Output: &bytes.Buffer{}})
	b := NewLogger(LoggerConfig{Output: &bytes.Buffer{}})

	if a.RunID() == "" || a.RunID() == b.RunID() {
		t.Errorf("RunID() = %q and %q, want two distinct IDs", a.RunID(), b.RunID())
	}
}

func TestNewLogger_NoColor(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewLogger(LoggerConfig{Level: "info", Format: "console", Output: buf, NoColor: true})
	logger.Info("plain")

	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("output contains color codes: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "[INF]") {
		t.Errorf("output = %q, want a text entry", buf.String())
	}
}
