// ABOUTME: Terminal color values: basic 16, 256-palette, and 24-bit RGB
// ABOUTME: Emits SGR parameter fragments for foreground and background use

package ansi

import "strconv"

type colorKind uint8

const (
	colorNone colorKind = iota
	colorBasic
	color256
	colorRGB
)

// Color is a terminal color. The zero value is "no color", which leaves
// the terminal's default in place.
type Color struct {
	kind    colorKind
	index   uint8
	r, g, b uint8
}

// Basic 16-color palette. The bright variants are index 8-15.
var (
	Black   = Basic(0)
	Red     = Basic(1)
	Green   = Basic(2)
	Yellow  = Basic(3)
	Blue    = Basic(4)
	Magenta = Basic(5)
	Cyan    = Basic(6)
	White   = Basic(7)
)

// Basic returns one of the 16 basic terminal colors (0-15).
func Basic(n uint8) Color {
	return Color{kind: colorBasic, index: n & 0x0f}
}

// Bright returns the bright variant of a basic color.
func (c Color) Bright() Color {
	if c.kind != colorBasic || c.index >= 8 {
		return c
	}
	return Basic(c.index + 8)
}

// ANSI256 returns a color from the 256-color palette.
func ANSI256(n uint8) Color {
	return Color{kind: color256, index: n}
}

// RGB returns a 24-bit truecolor value.
func RGB(r, g, b uint8) Color {
	return Color{kind: colorRGB, r: r, g: g, b: b}
}

// IsSet reports whether c carries an actual color.
func (c Color) IsSet() bool {
	return c.kind != colorNone
}

// fgParams returns the SGR parameters selecting c as foreground.
func (c Color) fgParams() []string {
	switch c.kind {
	case colorBasic:
		if c.index < 8 {
			return []string{strconv.Itoa(30 + int(c.index))}
		}
		return []string{strconv.Itoa(90 + int(c.index-8))}
	case color256:
		return []string{"38", "5", strconv.Itoa(int(c.index))}
	case colorRGB:
		return []string{"38", "2", strconv.Itoa(int(c.r)), strconv.Itoa(int(c.g)), strconv.Itoa(int(c.b))}
	default:
		return nil
	}
}

// bgParams returns the SGR parameters selecting c as background.
func (c Color) bgParams() []string {
	switch c.kind {
	case colorBasic:
		if c.index < 8 {
			return []string{strconv.Itoa(40 + int(c.index))}
		}
		return []string{strconv.Itoa(100 + int(c.index-8))}
	case color256:
		return []string{"48", "5", strconv.Itoa(int(c.index))}
	case colorRGB:
		return []string{"48", "2", strconv.Itoa(int(c.r)), strconv.Itoa(int(c.g)), strconv.Itoa(int(c.b))}
	default:
		return nil
	}
}
