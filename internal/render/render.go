// Package render turns scored guesses into terminal text.
//
// Rendering sits outside the engine: it only reads the guess letters and the
// marks of a game.Result.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/game"
)

// Color modes accepted by New.
const (
	ModeAuto   = "auto"
	ModeAlways = "always"
	ModeNever  = "never"
)

// ErrUnknownMode is returned by New for an unrecognized color mode.
var ErrUnknownMode = errors.New("render: unknown color mode")

const (
	absentGlyph    = '*'
	misplacedGlyph = '_'
)

// Renderer formats one scored guess.
type Renderer interface {
	// Render returns one display cell per position of guess.
	Render(guess string, r game.Result) string
	// Colored reports whether misplaced letters are visible in Render output.
	Colored() bool
}

// Palette for the colored renderer.
var (
	ColorExact     = lipgloss.Color("2") // green
	ColorMisplaced = lipgloss.Color("3") // yellow
)

// Color renders exact letters green and reversed, misplaced letters yellow
// and absent letters as '*'.
type Color struct {
	exact     lipgloss.Style
	misplaced lipgloss.Style
}

// NewColor builds a Color renderer on top of a lipgloss renderer.
func NewColor(lr *lipgloss.Renderer) *Color {
	return &Color{
		exact:     lr.NewStyle().Foreground(ColorExact).Reverse(true),
		misplaced: lr.NewStyle().Foreground(ColorMisplaced),
	}
}

// Render implements Renderer.
func (c *Color) Render(guess string, r game.Result) string {
	var b strings.Builder
	for i, m := range r.Marks {
		if i >= len(guess) {
			break
		}
		switch m {
		case game.MarkExact:
			b.WriteString(c.exact.Render(guess[i : i+1]))
		case game.MarkMisplaced:
			b.WriteString(c.misplaced.Render(guess[i : i+1]))
		default:
			b.WriteByte(absentGlyph)
		}
	}
	return b.String()
}

// Colored implements Renderer.
func (c *Color) Colored() bool { return true }

// Plain renders exact letters as-is, misplaced as '_' and absent as '*'.
// Misplaced letters are reported separately by MisplacedLine.
type Plain struct{}

// Render implements Renderer.
func (Plain) Render(guess string, r game.Result) string {
	b := make([]byte, 0, len(r.Marks))
	for i, m := range r.Marks {
		if i >= len(guess) {
			break
		}
		switch m {
		case game.MarkExact:
			b = append(b, guess[i])
		case game.MarkMisplaced:
			b = append(b, misplacedGlyph)
		default:
			b = append(b, absentGlyph)
		}
	}
	return string(b)
}

// Colored implements Renderer.
func (Plain) Colored() bool { return false }

// MisplacedLine returns the misplaced letters at their positions, or "" if
// the guess has none.
func MisplacedLine(guess string, r game.Result) string {
	if r.Cows == 0 {
		return ""
	}
	return r.Misplaced(guess)
}

// Mask returns the hidden-word placeholder shown before the first guess.
func Mask(n int) string { return strings.Repeat(string(absentGlyph), n) }

// New picks a renderer for out. ModeAuto colors only when out is a terminal.
func New(mode string, out io.Writer) (Renderer, error) {
	switch strings.ToLower(mode) {
	case ModeNever:
		return Plain{}, nil
	case ModeAlways:
		lr := lipgloss.NewRenderer(out)
		lr.SetColorProfile(termenv.ANSI)
		return NewColor(lr), nil
	case ModeAuto, "":
		if isTerminal(out) {
			return NewColor(lipgloss.NewRenderer(out)), nil
		}
		return Plain{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
