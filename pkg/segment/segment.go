// ABOUTME: Segment model: styled text chunks ready for prompt rendering
// ABOUTME: Closed set of kinds: Text, Fill, Separator, LineBreak

package segment

import (
	"strings"

	"github.com/mauromedda/promptline-go/pkg/ansi"
	"github.com/mauromedda/promptline-go/pkg/style"
	"github.com/mauromedda/promptline-go/pkg/width"
)

const lineTerminator = "\n"

// Kind discriminates the segment variants.
type Kind uint8

const (
	KindText Kind = iota
	KindFill
	KindSeparator
	KindLineBreak
)

// Segment is one styled, independently measurable chunk of prompt
// output. The set of implementations is closed: Text, Fill, Separator,
// and LineBreak.
type Segment interface {
	// Kind returns the variant discriminant.
	Kind() Kind
	// Style returns the segment's unresolved style; nil means inherit.
	Style() *style.Style
	// Value returns the literal or pattern text; "\n" for a LineBreak.
	Value() string
	// Width returns the display width of Value in terminal columns,
	// counted per grapheme cluster. Always 0 for LineBreak.
	Width() int
	// IsLineBreak reports whether the segment is a line terminator.
	IsLineBreak() bool
	// SetStyleIfEmpty backfills the style once if none is set.
	// No-op when a style is already present and for LineBreak.
	SetStyleIfEmpty(*style.Style)
	// Render resolves the segment's style against the previous
	// segment's resolved style and applies it to the value.
	Render(prev *ansi.Style) string

	segment() // closed interface marker
}

// FromText splits raw on line terminators and returns the resulting
// segments: one Text per line, with a LineBreak strictly between
// consecutive lines. A raw value without terminators yields a single
// Text segment.
func FromText(st *style.Style, raw string) []Segment {
	var segs []Segment
	for _, piece := range strings.Split(raw, lineTerminator) {
		if len(segs) > 0 {
			segs = append(segs, &LineBreak{})
		}
		segs = append(segs, &Text{style: st, value: piece})
	}
	return segs
}

// Text is an unmodified text chunk with an optional style. The value
// never contains a line terminator; FromText splits those out.
type Text struct {
	style *style.Style
	value string
}

// NewText returns a single text segment. The caller must not pass text
// containing line terminators; use FromText for that.
func NewText(st *style.Style, value string) *Text {
	return &Text{style: st, value: value}
}

func (t *Text) Kind() Kind { return KindText }

func (t *Text) Style() *style.Style { return t.style }

func (t *Text) Value() string { return t.value }

func (t *Text) Width() int { return width.String(t.value) }

func (t *Text) IsLineBreak() bool { return false }

func (t *Text) SetStyleIfEmpty(st *style.Style) {
	if t.style == nil {
		t.style = st
	}
}

func (t *Text) Render(prev *ansi.Style) string {
	return paint(t.style, t.value, prev)
}

func (t *Text) segment() {}

// LineBreak marks a single line terminator. It carries no style and
// occupies no columns.
type LineBreak struct{}

func (l *LineBreak) Kind() Kind { return KindLineBreak }

func (l *LineBreak) Style() *style.Style { return nil }

func (l *LineBreak) Value() string { return lineTerminator }

func (l *LineBreak) Width() int { return 0 }

func (l *LineBreak) IsLineBreak() bool { return true }

func (l *LineBreak) SetStyleIfEmpty(_ *style.Style) {}

func (l *LineBreak) Render(_ *ansi.Style) string { return lineTerminator }

func (l *LineBreak) segment() {}

// paint renders value with st resolved against prev; an absent style
// leaves the value unstyled.
func paint(st *style.Style, value string, prev *ansi.Style) string {
	if st == nil {
		return value
	}
	return st.Resolve(prev).Paint(value)
}
