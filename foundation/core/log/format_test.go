// File: format_test.go
// Title: Formatter Tests
// Description: Tests for level and format parsing and for the text,
//              console and JSON formatters.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Sorted text fields and run ID output

package log

import (
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"fatal", LevelFatal, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"json", "text", "console"} {
		f, err := ParseFormat(name)
		if err != nil {
			t.Fatalf("ParseFormat(%q) error = %v", name, err)
		}
		if f.String() != name {
			t.Errorf("ParseFormat(%q).String() = %q", name, f.String())
		}
	}

	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	} else if err.Error() != "invalid format: xml" {
		t.Errorf("error = %q, want %q", err.Error(), "invalid format: xml")
	}
}

func testEntry() *Entry {
	e := NewEntry(LevelWarn, "function redefined")
	e.Timestamp = time.Date(2026, 10, 19, 12, 30, 0, 0, time.UTC)
	e.Logger = "ppi"
	e.RunID = "0123456789abcdef"
	e.Fields["name"] = "f"
	e.Fields["line"] = 7
	return e
}

func TestTextFormatter(t *testing.T) {
	out, err := NewTextFormatter().Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "12:30:00 [WRN] {ppi} (run=01234567) function redefined [line=7 name=f]\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestConsoleFormatter(t *testing.T) {
	f := NewConsoleFormatter()
	out, _ := f.Format(testEntry())
	if !strings.HasPrefix(string(out), LevelWarn.Color()) {
		t.Errorf("console output should start with the level color: %q", out)
	}

	f.DisableColors = true
	out, _ = f.Format(testEntry())
	if strings.Contains(string(out), "\033[") {
		t.Errorf("console output with colors disabled contains escapes: %q", out)
	}
}

func TestJSONFormatter(t *testing.T) {
	out, err := NewJSONFormatter().Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	s := string(out)
	for _, want := range []string{`"level":"warn"`, `"run_id":"0123456789abcdef"`, `"name":"f"`, `"logger":"ppi"`} {
		if !strings.Contains(s, want) {
			t.Errorf("Format() missing %s in %s", want, s)
		}
	}
	if !strings.HasSuffix(s, "\n") {
		t.Error("JSON output should end with a newline")
	}
}
