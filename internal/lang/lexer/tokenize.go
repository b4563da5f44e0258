package lexer

import (
	"fmt"
	"io"

	"github.com/msto63/ppinterpreter/internal/lang/token"
)

// LexError reports input that no token recognizer accepts
type LexError struct {
	Line int
	Char string
}

func (e *LexError) Error() string {
	if len(e.Char) == 1 {
		return fmt.Sprintf("line %d: invalid character '%s'", e.Line, e.Char)
	}
	return fmt.Sprintf("line %d: invalid token %q", e.Line, e.Char)
}

// Tokenize drains the lexer up to and including EOF. It stops at the first
// Invalid token and returns the tokens read so far together with a
// *LexError. A failing reader ends the stream and its error is returned.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var tokens []token.Token
	for {
		tok := l.NextToken()
		if tok.Kind == token.Invalid {
			return tokens, &LexError{Line: tok.Line, Char: tok.Text}
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, l.Err()
		}
	}
}

// Tokenize reads all tokens from r
func Tokenize(r io.Reader) ([]token.Token, error) {
	return New(r).Tokenize()
}

// TokenizeString reads all tokens from src
func TokenizeString(src string) ([]token.Token, error) {
	return NewString(src).Tokenize()
}
