// ABOUTME: Directional separator glyphs with neighbor-derived colors
// ABOUTME: Direction parsed from a trailing 'l'/'r' marker on the raw value

package segment

import (
	"strings"

	"github.com/mauromedda/promptline-go/pkg/ansi"
	"github.com/mauromedda/promptline-go/pkg/style"
	"github.com/mauromedda/promptline-go/pkg/width"
)

// Separator is a directional glyph whose color is usually derived from
// its neighbors' backgrounds so adjacent prompt blocks flow into each
// other (the powerline wedge effect).
type Separator struct {
	style *style.Style
	value string
	left  bool

	// override, when set, wins over the normal style resolution path.
	// Callers store a derived style here via SetStyle.
	override *ansi.Style
}

// NewSeparator parses raw into a separator. A trailing 'l' makes it
// left-facing; a trailing 'r' or no marker at all means right-facing.
// Any run of trailing 'l'/'r' characters is stripped from the glyph.
func NewSeparator(st *style.Style, raw string) *Separator {
	return &Separator{
		style: st,
		value: strings.TrimRight(raw, "lr"),
		left:  strings.HasSuffix(raw, "l"),
	}
}

// IsLeft reports the separator's facing direction.
func (s *Separator) IsLeft() bool { return s.left }

// DeriveStyle computes the bridging style from the resolved styles of
// the neighboring segments: the glyph is drawn with the next segment's
// background as foreground and the previous segment's background as
// background. With a single neighbor only the foreground is set, from
// that neighbor's background; with none the style is fully default.
func (s *Separator) DeriveStyle(prev, next *ansi.Style) ansi.Style {
	var derived ansi.Style
	switch {
	case prev != nil && next != nil:
		derived.Foreground = next.Background
		derived.Background = prev.Background
	case prev != nil:
		derived.Foreground = prev.Background
	case next != nil:
		derived.Foreground = next.Background
	}
	return derived
}

// SetStyle stores a pre-resolved style, typically one produced by
// DeriveStyle, to be used by Render instead of resolving s.style.
func (s *Separator) SetStyle(st *ansi.Style) {
	s.override = st
}

func (s *Separator) Kind() Kind { return KindSeparator }

func (s *Separator) Style() *style.Style { return s.style }

func (s *Separator) Value() string { return s.value }

func (s *Separator) Width() int { return width.String(s.value) }

func (s *Separator) IsLineBreak() bool { return false }

func (s *Separator) SetStyleIfEmpty(st *style.Style) {
	if s.style == nil {
		s.style = st
	}
}

// Render applies the override style when present, otherwise falls back
// to the ordinary text rendering path.
func (s *Separator) Render(prev *ansi.Style) string {
	if s.override != nil {
		return s.override.Paint(s.value)
	}
	return paint(s.style, s.value, prev)
}

func (s *Separator) segment() {}
