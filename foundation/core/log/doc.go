// Package log provides structured logging for the ppi front end.
//
// Package: log
// Title: Structured Logging
// Description: Implements a small structured logger with levels, key-value
//              fields, JSON/text/console formatters, a per-run identifier for
//              correlating the log lines of one parse, and integration with
//              the coded errors of the error package.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Removed async buffering and request/user context, added run IDs
//
// Usage:
//
//	logger := mdwlog.New().
//		WithLevel(mdwlog.LevelDebug).
//		WithFormat(mdwlog.FormatText).
//		WithField("component", "ppi-parser")
//
//	timer := logger.StartTimer("parse")
//	// ... parse
//	timer.StopWithResult(true, mdwlog.Fields{"instructions": 12})
package log
