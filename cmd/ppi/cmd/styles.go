package cmd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/msto63/ppinterpreter/internal/lang/token"
)

// Color Palette
var (
	colorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	colorSecondary = lipgloss.Color("#06B6D4") // Cyan
	colorAccent    = lipgloss.Color("#F59E0B") // Amber
	colorSuccess   = lipgloss.Color("#10B981") // Emerald
	colorError     = lipgloss.Color("#EF4444") // Red
	colorMuted     = lipgloss.Color("#6B7280") // Gray
)

// styles are bound to one output so color detection follows that stream
type styles struct {
	header  lipgloss.Style
	keyword lipgloss.Style
	literal lipgloss.Style
	symbol  lipgloss.Style
	invalid lipgloss.Style
	ok      lipgloss.Style
	err     lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer, noColor bool) styles {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		header:  r.NewStyle().Foreground(colorPrimary).Bold(true),
		keyword: r.NewStyle().Foreground(colorPrimary).Bold(true),
		literal: r.NewStyle().Foreground(colorSecondary),
		symbol:  r.NewStyle().Foreground(colorAccent),
		invalid: r.NewStyle().Foreground(colorError).Bold(true),
		ok:      r.NewStyle().Foreground(colorSuccess).Bold(true),
		err:     r.NewStyle().Foreground(colorError).Bold(true),
		muted:   r.NewStyle().Foreground(colorMuted),
	}
}

// token returns the style for a token kind
func (s styles) token(k token.Kind) lipgloss.Style {
	switch {
	case k.IsKeyword():
		return s.keyword
	case k == token.Ident || k == token.Num:
		return s.literal
	case k == token.Invalid:
		return s.invalid
	case k == token.Newline || k == token.EOF:
		return s.muted
	default:
		return s.symbol
	}
}
