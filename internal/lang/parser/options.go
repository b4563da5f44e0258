package parser

import (
	"fmt"
	"strings"

	mdwlog "github.com/msto63/ppinterpreter/foundation/core/log"
)

// Associativity selects how chains of + - or * / group
type Associativity string

const (
	// LeftAssociative groups a - b - c as (a - b) - c
	LeftAssociative Associativity = "left"

	// RightAssociative groups a - b - c as a - (b - c), like the
	// right-recursive grammar the language was first written with
	RightAssociative Associativity = "right"
)

// LineMode selects which source line a node is stamped with
type LineMode string

const (
	// LineStart stamps the line where the construct begins
	LineStart LineMode = "start"

	// LineEnd stamps the line of the last token of the construct
	LineEnd LineMode = "end"
)

// DuplicatePolicy decides what happens when a function is defined twice
type DuplicatePolicy string

const (
	// DuplicateOverwrite keeps the later definition and logs a warning
	DuplicateOverwrite DuplicatePolicy = "overwrite"

	// DuplicateReject fails the parse with a *RedefinitionError
	DuplicateReject DuplicatePolicy = "reject"
)

// Options configures a Parser. Zero values select the defaults.
type Options struct {
	Associativity Associativity
	LineMode      LineMode
	Duplicates    DuplicatePolicy

	// MaxInputLength limits the source size in bytes, 0 means unlimited
	MaxInputLength int64

	Logger *mdwlog.Logger
}

// DefaultOptions returns the default parser configuration
func DefaultOptions() Options {
	return Options{
		Associativity: LeftAssociative,
		LineMode:      LineStart,
		Duplicates:    DuplicateOverwrite,
	}
}

// withDefaults fills empty values and canonicalizes the rest. Unknown values
// are kept as given so Validate can report them.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Associativity == "" {
		o.Associativity = d.Associativity
	} else if a, err := ParseAssociativity(string(o.Associativity)); err == nil {
		o.Associativity = a
	}
	if o.LineMode == "" {
		o.LineMode = d.LineMode
	} else if m, err := ParseLineMode(string(o.LineMode)); err == nil {
		o.LineMode = m
	}
	if o.Duplicates == "" {
		o.Duplicates = d.Duplicates
	} else if p, err := ParseDuplicatePolicy(string(o.Duplicates)); err == nil {
		o.Duplicates = p
	}
	return o
}

// Validate rejects unknown option values. Empty values are valid and
// select the defaults.
func (o Options) Validate() error {
	o = o.withDefaults()
	if _, err := ParseAssociativity(string(o.Associativity)); err != nil {
		return err
	}
	if _, err := ParseLineMode(string(o.LineMode)); err != nil {
		return err
	}
	if _, err := ParseDuplicatePolicy(string(o.Duplicates)); err != nil {
		return err
	}
	if o.MaxInputLength < 0 {
		return fmt.Errorf("max input length must not be negative: %d", o.MaxInputLength)
	}
	return nil
}

// ParseAssociativity parses "left" or "right"
func ParseAssociativity(s string) (Associativity, error) {
	switch Associativity(strings.ToLower(strings.TrimSpace(s))) {
	case LeftAssociative:
		return LeftAssociative, nil
	case RightAssociative:
		return RightAssociative, nil
	}
	return "", fmt.Errorf("invalid associativity %q (want left or right)", s)
}

// ParseLineMode parses "start" or "end"
func ParseLineMode(s string) (LineMode, error) {
	switch LineMode(strings.ToLower(strings.TrimSpace(s))) {
	case LineStart:
		return LineStart, nil
	case LineEnd:
		return LineEnd, nil
	}
	return "", fmt.Errorf("invalid line mode %q (want start or end)", s)
}

// ParseDuplicatePolicy parses "overwrite" or "reject"
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch DuplicatePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case DuplicateOverwrite:
		return DuplicateOverwrite, nil
	case DuplicateReject:
		return DuplicateReject, nil
	}
	return "", fmt.Errorf("invalid duplicate policy %q (want overwrite or reject)", s)
}
