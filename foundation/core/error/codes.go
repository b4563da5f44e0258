// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify front-end failures so
//              the CLI can map them to exit statuses and the logger can tag
//              them consistently.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Replaced platform codes with front-end codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Source input
	CodeFileNotFound  Code = "FILE_NOT_FOUND"
	CodeFileRead      Code = "FILE_READ"
	CodeInputTooLarge Code = "INPUT_TOO_LARGE"

	// Language front end
	CodeLexical           Code = "LEXICAL"
	CodeSyntax            Code = "SYNTAX"
	CodeDuplicateFunction Code = "DUPLICATE_FUNCTION"

	// Configuration
	CodeConfig        Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeFileNotFound, CodeFileRead, CodeInputTooLarge,
		CodeLexical, CodeSyntax, CodeDuplicateFunction,
		CodeConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeFileNotFound, CodeFileRead, CodeInputTooLarge:
		return "input"
	case CodeLexical, CodeSyntax, CodeDuplicateFunction:
		return "source"
	case CodeConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}
