package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/msto63/ppinterpreter/internal/lang/token"
)

// ParseError reports the first token the grammar could not accept
type ParseError struct {
	Line     int
	Expected []token.Kind
	Actual   token.Token
}

func (e *ParseError) Error() string {
	if e.Actual.Kind == token.Invalid || len(e.Expected) == 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Actual.Describe())
	}
	return fmt.Sprintf("line %d: expected %s, got %s", e.Line, describeKinds(e.Expected), e.Actual.Describe())
}

// RedefinitionError reports a function defined more than once when
// duplicates are rejected
type RedefinitionError struct {
	Name         string
	Line         int
	PreviousLine int
}

func (e *RedefinitionError) Error() string {
	return fmt.Sprintf("line %d: function %q already defined at line %d", e.Line, e.Name, e.PreviousLine)
}

// InputTooLargeError reports source longer than Options.MaxInputLength
type InputTooLargeError struct {
	Limit int64
}

func (e *InputTooLargeError) Error() string {
	return fmt.Sprintf("input exceeds maximum length of %d bytes", e.Limit)
}

func describeKind(k token.Kind) string {
	switch k {
	case token.Ident, token.Num, token.Newline, token.EOF:
		return k.Symbol()
	}
	return "'" + k.Symbol() + "'"
}

func describeKinds(kinds []token.Kind) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = describeKind(k)
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
}

// limitedReader fails with *InputTooLargeError once more than limit bytes
// would be read
type limitedReader struct {
	r         io.Reader
	remaining int64
	limit     int64
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.remaining <= 0 {
		var probe [1]byte
		n, err := l.r.Read(probe[:])
		if n > 0 {
			return 0, &InputTooLargeError{Limit: l.limit}
		}
		return 0, err
	}
	if int64(len(p)) > l.remaining {
		p = p[:l.remaining]
	}
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	return n, err
}
