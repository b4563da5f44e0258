// ============================================================================
// ppi - PP language front end
// ============================================================================
//
// Package:     lexer
// Description: Converts a PP source stream into tokens on demand, with a
//              buffered lookahead queue for non-consuming peeks
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package lexer

import (
	"bufio"
	"io"
	"math"
	"strings"

	"github.com/msto63/ppinterpreter/internal/lang/token"
)

// Lexer produces tokens from a byte stream. Tokens that were peeked but
// not yet consumed wait in a queue, so peeking never changes what
// NextToken returns.
type Lexer struct {
	r     *bufio.Reader
	line  int
	queue []token.Token
	done  bool
	err   error
}

// New creates a lexer reading from r
func New(r io.Reader) *Lexer {
	return &Lexer{
		r:    bufio.NewReader(r),
		line: 1,
	}
}

// NewString creates a lexer over src
func NewString(src string) *Lexer {
	return New(strings.NewReader(src))
}

// NextToken consumes and returns the next token. Once the input is
// exhausted it keeps returning EOF.
func (l *Lexer) NextToken() token.Token {
	if len(l.queue) > 0 {
		tok := l.queue[0]
		l.queue = l.queue[1:]
		return tok
	}
	return l.scan()
}

// Peek returns the token lookahead positions ahead without consuming it.
// Peek(1) is the token the next NextToken call returns. A lookahead below
// one is treated as one.
func (l *Lexer) Peek(lookahead int) token.Token {
	if lookahead < 1 {
		lookahead = 1
	}
	for len(l.queue) < lookahead {
		l.queue = append(l.queue, l.scan())
	}
	return l.queue[lookahead-1]
}

// CheckToken reports whether the token lookahead positions ahead has the
// given kind. It does not consume anything.
func (l *Lexer) CheckToken(kind token.Kind, lookahead int) bool {
	return l.Peek(lookahead).Kind == kind
}

// Line returns the line of the input cursor. Because of the lookahead
// queue this can be ahead of the last consumed token; use Token.Line for
// diagnostics.
func (l *Lexer) Line() int {
	return l.line
}

// Err returns the first error from the underlying reader other than
// io.EOF. The lexer reports such an error as end of input.
func (l *Lexer) Err() error {
	return l.err
}

func (l *Lexer) readByte() (byte, error) {
	c, err := l.r.ReadByte()
	if err != nil && err != io.EOF && l.err == nil {
		l.err = err
	}
	return c, err
}

func (l *Lexer) scan() token.Token {
	if l.done {
		return token.Token{Kind: token.EOF, Line: l.line}
	}

	c, ok := l.skipBlank()
	if !ok {
		l.done = true
		return token.Token{Kind: token.EOF, Line: l.line}
	}

	line := l.line
	switch {
	case c == '\n':
		l.line++
		return token.Token{Kind: token.Newline, Line: line}
	case isDigit(c):
		return l.scanNumber(c, line)
	case isLetter(c):
		return l.scanIdent(c, line)
	}
	return l.scanSymbol(c, line)
}

// skipBlank skips whitespace other than newline and comments. It returns
// the first significant byte, or false at end of input.
func (l *Lexer) skipBlank() (byte, bool) {
	for {
		c, err := l.readByte()
		if err != nil {
			return 0, false
		}
		switch {
		case c == '#':
			if !l.skipComment() {
				return 0, false
			}
		case c == '\n':
			return c, true
		case isSpace(c):
		default:
			return c, true
		}
	}
}

// skipComment discards up to, not including, the next newline
func (l *Lexer) skipComment() bool {
	for {
		c, err := l.readByte()
		if err != nil {
			return false
		}
		if c == '\n' {
			_ = l.r.UnreadByte()
			return true
		}
	}
}

func (l *Lexer) scanSymbol(c byte, line int) token.Token {
	tok := token.Token{Line: line}

	switch c {
	case '(':
		tok.Kind = token.LParen
	case ')':
		tok.Kind = token.RParen
	case ':':
		tok.Kind = token.Colon
	case ',':
		tok.Kind = token.Comma
	case '+':
		tok.Kind = token.Plus
	case '-':
		tok.Kind = token.Minus
	case '*':
		tok.Kind = token.Mult
	case '/':
		tok.Kind = token.Div
	case '=':
		tok.Kind = l.pair('=', token.Eq, token.Assign)
	case '>':
		tok.Kind = l.pair('=', token.Ge, token.Gt)
	case '<':
		tok.Kind = l.pair('=', token.Le, token.Lt)
	case '!':
		tok.Kind = l.pair('=', token.Ne, token.Invalid)
		if tok.Kind == token.Invalid {
			tok.Text = "!"
		}
	default:
		tok.Kind = token.Invalid
		tok.Text = string(c)
	}
	return tok
}

// pair reads one byte ahead. If it is next the two-character kind is
// returned, otherwise the byte is pushed back and single is returned.
func (l *Lexer) pair(next byte, double, single token.Kind) token.Kind {
	c, err := l.readByte()
	if err != nil {
		return single
	}
	if c == next {
		return double
	}
	_ = l.r.UnreadByte()
	return single
}

func (l *Lexer) scanNumber(first byte, line int) token.Token {
	var digits strings.Builder
	digits.WriteByte(first)
	value := int(first - '0')
	overflow := false

	for {
		c, err := l.readByte()
		if err != nil {
			break
		}
		if !isDigit(c) {
			_ = l.r.UnreadByte()
			break
		}
		digits.WriteByte(c)
		d := int(c - '0')
		if overflow || value > (math.MaxInt-d)/10 {
			overflow = true
			continue
		}
		value = value*10 + d
	}

	if overflow {
		return token.Token{Kind: token.Invalid, Text: digits.String(), Line: line}
	}
	return token.Token{Kind: token.Num, Value: value, Line: line}
}

func (l *Lexer) scanIdent(first byte, line int) token.Token {
	var sb strings.Builder
	sb.WriteByte(first)

	for {
		c, err := l.readByte()
		if err != nil {
			break
		}
		if !isLetter(c) && !isDigit(c) && c != '_' {
			_ = l.r.UnreadByte()
			break
		}
		sb.WriteByte(c)
	}

	text := sb.String()
	kind := token.Lookup(text)
	if kind != token.Ident {
		return token.Token{Kind: kind, Line: line}
	}
	return token.Token{Kind: token.Ident, Text: text, Line: line}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
