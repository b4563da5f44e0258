// Package error provides structured, coded errors for the ppi front end.
//
// Package: error
// Title: Coded Error Handling
// Description: Implements an error type that carries a code, a severity, the
//              failing operation and key-value details next to the usual
//              message and cause chain. The logger understands these errors and
//              emits their metadata as structured fields.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Narrowed codes to lexing, parsing, file and config failures
//
// Usage:
//
//	err := mdwerror.Wrap(parseErr, "parse failed").
//		WithCode(mdwerror.CodeSyntax).
//		WithOperation("lang.ParseFile").
//		WithDetail("line", 3)
//
//	if mdwerror.HasCode(err, mdwerror.CodeSyntax) {
//		// exit with the syntax error status
//	}
package error
