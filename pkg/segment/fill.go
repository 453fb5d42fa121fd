// ABOUTME: Fill segments: a pattern cycled to occupy a target column width
// ABOUTME: Greedy whole-cluster packing; never splits a cluster, never pads

package segment

import (
	"strings"

	"github.com/mauromedda/promptline-go/pkg/ansi"
	"github.com/mauromedda/promptline-go/pkg/style"
	"github.com/mauromedda/promptline-go/pkg/width"
)

// Fill is a repeating pattern truncated to a caller-supplied display
// width at render time, used for rulers and gap fillers between prompt
// halves.
type Fill struct {
	style *style.Style
	value string
}

// NewFill returns a fill segment with the given repeating pattern.
func NewFill(st *style.Style, pattern string) *Fill {
	return &Fill{style: st, value: pattern}
}

func (f *Fill) Kind() Kind { return KindFill }

func (f *Fill) Style() *style.Style { return f.style }

func (f *Fill) Value() string { return f.value }

func (f *Fill) Width() int { return width.String(f.value) }

func (f *Fill) IsLineBreak() bool { return false }

func (f *Fill) SetStyleIfEmpty(st *style.Style) {
	if f.style == nil {
		f.style = st
	}
}

// Render emits the pattern verbatim, styled like a text segment.
func (f *Fill) Render(prev *ansi.Style) string {
	return paint(f.style, f.value, prev)
}

// RenderWidth cycles the pattern's grapheme clusters and keeps the
// longest prefix whose cumulative display width fits in w columns.
// Clusters are never split and the remainder is never padded, so the
// result can fall short of w when the pattern width does not divide it.
// An empty pattern, a pattern of only zero-width clusters, or w <= 0
// produce an empty string.
func (f *Fill) RenderWidth(w int, prev *ansi.Style) string {
	s := cycle(f.value, w)
	if s == "" {
		return ""
	}
	return paint(f.style, s, prev)
}

func (f *Fill) segment() {}

// cycle packs whole grapheme clusters from the infinite repetition of
// pattern up to a cumulative width of w columns.
func cycle(pattern string, w int) string {
	if pattern == "" || w <= 0 {
		return ""
	}
	clusters := width.Clusters(pattern)
	widths := make([]int, len(clusters))
	total := 0
	for i, c := range clusters {
		widths[i] = width.Cluster(c)
		total += widths[i]
	}
	// A pattern of only zero-width clusters would cycle forever.
	if total == 0 {
		return ""
	}

	var b strings.Builder
	used := 0
	for {
		for i, c := range clusters {
			if used+widths[i] > w {
				return b.String()
			}
			b.WriteString(c)
			used += widths[i]
		}
	}
}
