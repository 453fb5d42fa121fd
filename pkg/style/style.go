// ABOUTME: Unresolved style specs parsed from config strings
// ABOUTME: Resolve maps prev_fg/prev_bg against the previous segment's style

package style

import (
	"github.com/mauromedda/promptline-go/pkg/ansi"
)

type colorRef uint8

const (
	refUnset colorRef = iota
	refFixed
	refPrevFG
	refPrevBG
)

// ColorSpec is a possibly context-sensitive color reference: unset, a
// fixed color, or a reference to the previous segment's foreground or
// background.
type ColorSpec struct {
	ref   colorRef
	color ansi.Color
}

// Fixed returns a ColorSpec holding a concrete color.
func Fixed(c ansi.Color) ColorSpec {
	return ColorSpec{ref: refFixed, color: c}
}

// PrevFG refers to the previous segment's resolved foreground.
func PrevFG() ColorSpec { return ColorSpec{ref: refPrevFG} }

// PrevBG refers to the previous segment's resolved background.
func PrevBG() ColorSpec { return ColorSpec{ref: refPrevBG} }

// resolve turns the spec into a concrete color given the previous style.
func (cs ColorSpec) resolve(prev *ansi.Style) ansi.Color {
	switch cs.ref {
	case refFixed:
		return cs.color
	case refPrevFG:
		if prev != nil {
			return prev.Foreground
		}
	case refPrevBG:
		if prev != nil {
			return prev.Background
		}
	}
	return ansi.Color{}
}

// Style is an unresolved style: the form segments and modules carry
// before rendering. A nil *Style means "inherit from the enclosing
// context".
type Style struct {
	Foreground ColorSpec
	Background ColorSpec

	Bold          bool
	Dimmed        bool
	Italic        bool
	Underline     bool
	Blink         bool
	Reverse       bool
	Hidden        bool
	Strikethrough bool
}

// Resolve produces concrete terminal attributes, consulting prev for
// the prev_fg/prev_bg references. prev may be nil, in which case those
// references resolve to the default color.
func (s *Style) Resolve(prev *ansi.Style) ansi.Style {
	if s == nil {
		return ansi.Style{}
	}
	return ansi.Style{
		Foreground:    s.Foreground.resolve(prev),
		Background:    s.Background.resolve(prev),
		Bold:          s.Bold,
		Dimmed:        s.Dimmed,
		Italic:        s.Italic,
		Underline:     s.Underline,
		Blink:         s.Blink,
		Reverse:       s.Reverse,
		Hidden:        s.Hidden,
		Strikethrough: s.Strikethrough,
	}
}
