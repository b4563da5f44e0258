// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and the
//              structured representations used by the logger.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-19 v0.2.0: Adapted to front-end codes

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap coded error",
			err:      New("unexpected token").WithCode(CodeSyntax),
			message:  "parse failed",
			wantMsg:  "parse failed: unexpected token",
			wantCode: CodeSyntax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("errors.Is() should find the wrapped error")
			}
		})
	}
}

type lineError struct{ line int }

func (e *lineError) Error() string { return fmt.Sprintf("line %d", e.line) }

func TestWrap_KeepsTypedCause(t *testing.T) {
	cause := &lineError{line: 7}
	err := Wrap(cause, "parse failed").WithCode(CodeSyntax).WithDetail("line", 7)

	var target *lineError
	if !errors.As(err, &target) {
		t.Fatal("errors.As() should find the typed cause")
	}
	if target.line != 7 {
		t.Errorf("line = %d, want 7", target.line)
	}
	if err.RootCause() != cause {
		t.Errorf("RootCause() = %v, want %v", err.RootCause(), cause)
	}
}

func TestWithCode_Severity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeSyntax, SeverityLow},
		{CodeLexical, SeverityLow},
		{CodeFileNotFound, SeverityLow},
		{CodeConfig, SeverityHigh},
		{CodeFileRead, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityHigh).WithCode(CodeSyntax)
	if explicit.Severity() != SeverityHigh {
		t.Errorf("explicit severity overwritten: got %v", explicit.Severity())
	}
}

func TestCode_Category(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeSyntax, "source"},
		{CodeDuplicateFunction, "source"},
		{CodeFileNotFound, "input"},
		{CodeInvalidConfig, "configuration"},
		{CodeInternal, "generic"},
	}

	for _, tt := range tests {
		if got := tt.code.Category(); got != tt.want {
			t.Errorf("%s.Category() = %v, want %v", tt.code, got, tt.want)
		}
	}

	if Code("NOPE").IsValid() {
		t.Error("IsValid() should reject unknown codes")
	}
	if !CodeSyntax.IsValid() {
		t.Error("IsValid() should accept CodeSyntax")
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	base := New("bad input").WithCode(CodeSyntax)
	wrapped := fmt.Errorf("outer: %w", base)

	if !HasCode(wrapped, CodeSyntax) {
		t.Error("HasCode() should look through fmt wrapping")
	}
	if GetCode(wrapped) != CodeSyntax {
		t.Errorf("GetCode() = %v, want %v", GetCode(wrapped), CodeSyntax)
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() of a plain error should be CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() of a plain error should be SeverityMedium")
	}
}

func TestDetailsAreCopied(t *testing.T) {
	err := New("x").WithDetails(map[string]interface{}{"line": 3, "expected": "END"})
	details := err.Details()
	details["line"] = 99

	if err.Details()["line"] != 3 {
		t.Error("Details() should return a copy")
	}
}

func TestString(t *testing.T) {
	err := Wrap(errors.New("cause"), "parse failed").
		WithCode(CodeSyntax).
		WithOperation("parser.Parse").
		WithDetail("line", 4).
		WithDetail("actual", "COL")

	s := err.String()
	for _, want := range []string{
		"Error: parse failed",
		"Code: SYNTAX",
		"Severity: low",
		"Operation: parser.Parse",
		"Details: {actual=COL, line=4}",
		"Cause: cause",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("bad").WithCode(CodeLexical).WithOperation("lexer.Tokenize").WithDetail("line", 2)

	data, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("MarshalJSON() error = %v", marshalErr)
	}

	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(data, &decoded); jsonErr != nil {
		t.Fatalf("Unmarshal() error = %v", jsonErr)
	}

	if decoded["code"] != "LEXICAL" {
		t.Errorf("code = %v, want LEXICAL", decoded["code"])
	}
	if decoded["operation"] != "lexer.Tokenize" {
		t.Errorf("operation = %v, want lexer.Tokenize", decoded["operation"])
	}
	if decoded["severity"] != "low" {
		t.Errorf("severity = %v, want low", decoded["severity"])
	}
}
