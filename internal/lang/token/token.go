// ============================================================================
// ppi - PP language front end
// ============================================================================
//
// Package:     token
// Description: Lexical token kinds and the token value produced by the lexer
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package token

import (
	"fmt"
	"strconv"
)

// Kind identifies the lexical class of a token
type Kind int

const (
	// Punctuation
	LParen Kind = iota // (
	RParen             // )
	Colon              // :
	Comma              // ,

	// Relational
	Assign // =
	Eq     // ==
	Ne     // !=
	Ge     // >=
	Le     // <=
	Gt     // >
	Lt     // <

	// Arithmetic
	Plus  // +
	Minus // -
	Mult  // *
	Div   // /

	// Keywords
	Def
	Return
	End
	While
	If
	Print
	Read

	Ident
	Num
	Newline
	EOF
	Invalid
)

var kindNames = [...]string{
	LParen:  "LP",
	RParen:  "RP",
	Colon:   "COL",
	Comma:   "COM",
	Assign:  "ASGN",
	Eq:      "EQ",
	Ne:      "NE",
	Ge:      "GE",
	Le:      "LE",
	Gt:      "GT",
	Lt:      "LT",
	Plus:    "PLUS",
	Minus:   "MINUS",
	Mult:    "MULT",
	Div:     "DIV",
	Def:     "DEF",
	Return:  "RET",
	End:     "END",
	While:   "WHILE",
	If:      "IF",
	Print:   "PRINT",
	Read:    "READ",
	Ident:   "VAR",
	Num:     "NUM",
	Newline: "NEWLINE",
	EOF:     "EOF",
	Invalid: "INVALID",
}

var kindSymbols = [...]string{
	LParen:  "(",
	RParen:  ")",
	Colon:   ":",
	Comma:   ",",
	Assign:  "=",
	Eq:      "==",
	Ne:      "!=",
	Ge:      ">=",
	Le:      "<=",
	Gt:      ">",
	Lt:      "<",
	Plus:    "+",
	Minus:   "-",
	Mult:    "*",
	Div:     "/",
	Def:     "def",
	Return:  "return",
	End:     "end",
	While:   "while",
	If:      "if",
	Print:   "print",
	Read:    "read",
	Ident:   "identifier",
	Num:     "number",
	Newline: "newline",
	EOF:     "end of input",
	Invalid: "invalid character",
}

var keywords = map[string]Kind{
	"def":    Def,
	"return": Return,
	"end":    End,
	"while":  While,
	"if":     If,
	"print":  Print,
	"read":   Read,
}

// String returns the upper-case tag of the kind, e.g. IF, VAR, NUM
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Symbol returns how the kind is spelled in source. Kinds without a fixed
// spelling return a description.
func (k Kind) Symbol() string {
	if k >= 0 && int(k) < len(kindSymbols) {
		return kindSymbols[k]
	}
	return k.String()
}

// IsRelational reports whether k compares two expressions in a condition
func (k Kind) IsRelational() bool {
	switch k {
	case Eq, Ne, Ge, Le, Gt, Lt:
		return true
	}
	return false
}

// IsKeyword reports whether k is a reserved word
func (k Kind) IsKeyword() bool {
	return k >= Def && k <= Read
}

// Lookup maps an identifier to its keyword kind, or Ident
func Lookup(text string) Kind {
	if k, ok := keywords[text]; ok {
		return k
	}
	return Ident
}

// Token is one lexical unit. Ident carries Text, Num carries Value and
// Invalid carries the offending input in Text: a single character, or the
// digits of a number literal that does not fit an int.
type Token struct {
	Kind  Kind
	Text  string
	Value int
	Line  int
}

// String renders the token with its payload, e.g. VAR(a) or NUM(42)
func (t Token) String() string {
	switch t.Kind {
	case Ident:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
	case Num:
		return fmt.Sprintf("%s(%d)", t.Kind, t.Value)
	case Invalid:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	default:
		return t.Kind.String()
	}
}

// Describe renders the token the way diagnostics quote it
func (t Token) Describe() string {
	switch t.Kind {
	case Ident:
		return fmt.Sprintf("identifier %q", t.Text)
	case Num:
		return fmt.Sprintf("number %d", t.Value)
	case Invalid:
		if len(t.Text) == 1 {
			return fmt.Sprintf("invalid character '%s'", t.Text)
		}
		return fmt.Sprintf("invalid token %q", t.Text)
	case Newline, EOF:
		return t.Kind.Symbol()
	default:
		return fmt.Sprintf("'%s'", t.Kind.Symbol())
	}
}
