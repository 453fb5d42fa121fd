// ABOUTME: Assembles module outputs into one rendered prompt line
// ABOUTME: Powerline separators, style threading, and width-fitted fill

package compose

import (
	"fmt"
	"strings"

	"github.com/mauromedda/promptline-go/internal/config"
	"github.com/mauromedda/promptline-go/internal/modules"
	"github.com/mauromedda/promptline-go/pkg/ansi"
	"github.com/mauromedda/promptline-go/pkg/segment"
	"github.com/mauromedda/promptline-go/pkg/style"
	"github.com/mauromedda/promptline-go/pkg/width"
)

// Composer renders prompt lines for a fixed terminal width.
type Composer struct {
	cfg       *config.Config
	termWidth int
	fillStyle *style.Style
}

// New returns a composer. termWidth <= 0 disables the fill gap.
func New(cfg *config.Config, termWidth int) (*Composer, error) {
	fillStyle, err := style.Parse(cfg.Fill.Style)
	if err != nil {
		return nil, fmt.Errorf("fill style: %w", err)
	}
	return &Composer{cfg: cfg, termWidth: termWidth, fillStyle: fillStyle}, nil
}

// Prompt renders the full prompt from the two halves' module outputs.
// The right half is pushed to the terminal edge by a fill segment when
// both halves are visible and room remains.
func (c *Composer) Prompt(left, right []modules.Output) string {
	leftStr, leftEnd := c.renderChain(left, c.cfg.Separator, false)
	rightStr, _ := c.renderChain(right, c.cfg.RightSeparator, true)

	var line strings.Builder
	if c.cfg.NewlineBeforePrompt() {
		line.WriteString("\n")
	}
	line.WriteString(leftStr)

	if rightStr != "" {
		gap := c.termWidth - width.String(leftStr) - width.String(rightStr)
		if gap > 0 && c.cfg.Fill.Pattern != "" {
			fill := segment.NewFill(c.fillStyle, c.cfg.Fill.Pattern)
			line.WriteString(fill.RenderWidth(gap, leftEnd))
		}
		line.WriteString(rightStr)
	}
	return line.String()
}

// renderChain renders one half: module texts joined by derived-style
// separators. Left chains get a trailing wedge out of the last block;
// right chains get a leading wedge into the first. Returns the rendered
// text and the last resolved style for fill inheritance.
func (c *Composer) renderChain(outs []modules.Output, sepRaw string, leading bool) (string, *ansi.Style) {
	visible := outs[:0:0]
	for _, o := range outs {
		if o.Visible() {
			visible = append(visible, o)
		}
	}
	if len(visible) == 0 {
		return "", nil
	}

	var segs []segment.Segment
	if leading {
		segs = append(segs, derivedSeparator(sepRaw, nil, visible[0].Style))
	}
	for i, out := range visible {
		if i > 0 && !leading {
			segs = append(segs, derivedSeparator(sepRaw, visible[i-1].Style, out.Style))
		}
		moduleSegs := segment.FromText(nil, out.Text)
		for _, s := range moduleSegs {
			s.SetStyleIfEmpty(out.Style)
		}
		segs = append(segs, moduleSegs...)
		if i < len(visible)-1 && leading {
			segs = append(segs, derivedSeparator(sepRaw, out.Style, visible[i+1].Style))
		}
	}
	if !leading {
		segs = append(segs, derivedSeparator(sepRaw, visible[len(visible)-1].Style, nil))
	}

	return renderSegments(segs)
}

// derivedSeparator builds a separator whose style bridges the two
// neighboring module styles.
func derivedSeparator(raw string, prev, next *style.Style) *segment.Separator {
	sep := segment.NewSeparator(nil, raw)
	derived := sep.DeriveStyle(resolved(prev), resolved(next))
	sep.SetStyle(&derived)
	return sep
}

// renderSegments renders segments left to right, threading the
// previously resolved style into each one.
func renderSegments(segs []segment.Segment) (string, *ansi.Style) {
	var b strings.Builder
	var prev *ansi.Style
	for _, seg := range segs {
		b.WriteString(seg.Render(prev))
		if seg.IsLineBreak() {
			prev = nil
			continue
		}
		if st := seg.Style(); st != nil {
			r := st.Resolve(prev)
			prev = &r
		}
	}
	return b.String(), prev
}

// resolved turns an optional unresolved style into an optional resolved
// one, with no previous context.
func resolved(st *style.Style) *ansi.Style {
	if st == nil {
		return nil
	}
	r := st.Resolve(nil)
	return &r
}
