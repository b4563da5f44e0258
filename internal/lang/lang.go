// ============================================================================
// ppi - PP language front end
// ============================================================================
//
// Package:     lang
// Description: Entry points that read PP source from files or readers, run
//              the lexer and parser, and classify failures with the
//              foundation error codes
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package lang

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	mdwerror "github.com/msto63/ppinterpreter/foundation/core/error"
	"github.com/msto63/ppinterpreter/internal/lang/ast"
	"github.com/msto63/ppinterpreter/internal/lang/lexer"
	"github.com/msto63/ppinterpreter/internal/lang/parser"
	"github.com/msto63/ppinterpreter/internal/lang/token"
)

// FileError reports a source file that could not be opened or read
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	cause := e.Err
	var pathErr *fs.PathError
	if errors.As(cause, &pathErr) {
		cause = pathErr.Err
	}
	return fmt.Sprintf("cannot read %s: %v", e.Path, cause)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// ParseFile parses the program stored at path
func ParseFile(path string, opts parser.Options) (*ast.ProgramContext, error) {
	f, size, err := open(path)
	if err != nil {
		return nil, Classify(err, path, "parse")
	}
	defer f.Close()

	if limit := opts.MaxInputLength; limit > 0 && size > limit {
		return nil, Classify(&parser.InputTooLargeError{Limit: limit}, path, "parse")
	}

	ctx, err := parser.New(opts).Parse(f)
	if err != nil {
		return nil, Classify(readFailure(path, err), path, "parse")
	}
	return ctx, nil
}

// ParseString parses src, using name in error messages
func ParseString(name, src string, opts parser.Options) (*ast.ProgramContext, error) {
	ctx, err := parser.New(opts).ParseString(src)
	if err != nil {
		return nil, Classify(err, name, "parse")
	}
	return ctx, nil
}

// Parse parses everything r yields, using name in error messages
func Parse(name string, r io.Reader, opts parser.Options) (*ast.ProgramContext, error) {
	ctx, err := parser.New(opts).Parse(r)
	if err != nil {
		return nil, Classify(readFailure(name, err), name, "parse")
	}
	return ctx, nil
}

// TokenizeFile returns the tokens of the file at path up to and including
// EOF. It stops at the first invalid token.
func TokenizeFile(path string) ([]token.Token, error) {
	f, _, err := open(path)
	if err != nil {
		return nil, Classify(err, path, "tokenize")
	}
	defer f.Close()

	tokens, err := lexer.Tokenize(f)
	if err != nil {
		return tokens, Classify(readFailure(path, err), path, "tokenize")
	}
	return tokens, nil
}

func open(path string) (*os.File, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, &FileError{Path: path, Err: err}
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, &FileError{Path: path, Err: err}
	}
	if info.IsDir() {
		f.Close()
		return nil, 0, &FileError{Path: path, Err: &fs.PathError{Op: "read", Path: path, Err: errors.New("is a directory")}}
	}
	return f, info.Size(), nil
}

// readFailure turns an error of the underlying reader into a *FileError.
// Errors of the front end itself pass through.
func readFailure(name string, err error) error {
	var (
		parseErr *parser.ParseError
		redefErr *parser.RedefinitionError
		sizeErr  *parser.InputTooLargeError
		lexErr   *lexer.LexError
	)
	switch {
	case errors.As(err, &parseErr), errors.As(err, &redefErr),
		errors.As(err, &sizeErr), errors.As(err, &lexErr):
		return err
	}
	return &FileError{Path: name, Err: err}
}

// Classify wraps err in a coded foundation error. The message is the source
// name, so Error() reads "name: <cause>". The typed cause stays reachable
// through errors.As.
func Classify(err error, name, operation string) error {
	if err == nil {
		return nil
	}

	var coded *mdwerror.Error
	if errors.As(err, &coded) {
		return err
	}

	wrapped := mdwerror.Wrap(err, name).WithOperation(operation)

	var (
		parseErr *parser.ParseError
		redefErr *parser.RedefinitionError
		sizeErr  *parser.InputTooLargeError
		lexErr   *lexer.LexError
		fileErr  *FileError
	)

	switch {
	case errors.As(err, &parseErr):
		code := mdwerror.CodeSyntax
		if parseErr.Actual.Kind == token.Invalid {
			code = mdwerror.CodeLexical
		}
		wrapped.WithCode(code).
			WithDetail("line", parseErr.Line).
			WithDetail("actual", parseErr.Actual.Describe())
		if len(parseErr.Expected) > 0 {
			wrapped.WithDetail("expected", kindNames(parseErr.Expected))
		}

	case errors.As(err, &lexErr):
		wrapped.WithCode(mdwerror.CodeLexical).
			WithDetail("line", lexErr.Line).
			WithDetail("actual", lexErr.Char)

	case errors.As(err, &redefErr):
		wrapped.WithCode(mdwerror.CodeDuplicateFunction).
			WithDetail("line", redefErr.Line).
			WithDetail("function", redefErr.Name).
			WithDetail("previous_line", redefErr.PreviousLine)

	case errors.As(err, &sizeErr):
		wrapped.WithCode(mdwerror.CodeInputTooLarge).
			WithDetail("limit", sizeErr.Limit)

	case errors.As(err, &fileErr):
		code := mdwerror.CodeFileRead
		if errors.Is(fileErr.Err, fs.ErrNotExist) {
			code = mdwerror.CodeFileNotFound
		}
		wrapped.WithCode(code).WithDetail("path", fileErr.Path)

	default:
		wrapped.WithCode(mdwerror.CodeInternal)
	}

	return wrapped
}

func kindNames(kinds []token.Kind) []string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}
