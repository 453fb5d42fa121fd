// ABOUTME: Resolved terminal style: colors plus text attributes
// ABOUTME: Paint wraps text in one SGR sequence and a trailing reset

package ansi

import "strings"

const reset = "\x1b[0m"

// Style is a fully resolved set of terminal attributes. The zero value is
// the default style and paints text unchanged.
type Style struct {
	Foreground Color
	Background Color

	Bold          bool
	Dimmed        bool
	Italic        bool
	Underline     bool
	Blink         bool
	Reverse       bool
	Hidden        bool
	Strikethrough bool
}

// IsPlain reports whether s carries no colors and no attributes.
func (s Style) IsPlain() bool {
	return s == Style{}
}

// Paint wraps text with s's SGR sequence and a reset suffix. A plain
// style returns text unchanged; empty text stays empty so styled blanks
// never leak escape codes into the output.
func (s Style) Paint(text string) string {
	if text == "" || s.IsPlain() {
		return text
	}
	var params []string
	if s.Bold {
		params = append(params, "1")
	}
	if s.Dimmed {
		params = append(params, "2")
	}
	if s.Italic {
		params = append(params, "3")
	}
	if s.Underline {
		params = append(params, "4")
	}
	if s.Blink {
		params = append(params, "5")
	}
	if s.Reverse {
		params = append(params, "7")
	}
	if s.Hidden {
		params = append(params, "8")
	}
	if s.Strikethrough {
		params = append(params, "9")
	}
	params = append(params, s.Foreground.fgParams()...)
	params = append(params, s.Background.bgParams()...)
	return "\x1b[" + strings.Join(params, ";") + "m" + text + reset
}
