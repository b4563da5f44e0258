// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger picks its level
//              from the severity when logging a coded error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.2.0: Severity mapping for front-end codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow is a problem in the user's input, e.g. a syntax error
	SeverityLow Severity = iota

	// SeverityMedium is the default for uncoded errors
	SeverityMedium

	// SeverityHigh prevents the tool from doing its work, e.g. a broken config
	SeverityHigh

	// SeverityCritical indicates a bug in the front end itself
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfig, CodeInvalidConfig, CodeFileRead:
		return SeverityHigh
	case CodeLexical, CodeSyntax, CodeDuplicateFunction,
		CodeFileNotFound, CodeInputTooLarge, CodeInvalidInput:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
