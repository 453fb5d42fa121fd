// ABOUTME: Parser for style spec strings like "bold fg:green bg:#a3c4f0"
// ABOUTME: Unknown color names get a fuzzy "did you mean" suggestion

package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/mauromedda/promptline-go/pkg/ansi"
)

// namedColors maps color words to their basic palette values. "purple"
// is an alias for magenta, matching common prompt configs.
var namedColors = map[string]ansi.Color{
	"black":   ansi.Black,
	"red":     ansi.Red,
	"green":   ansi.Green,
	"yellow":  ansi.Yellow,
	"blue":    ansi.Blue,
	"magenta": ansi.Magenta,
	"purple":  ansi.Magenta,
	"cyan":    ansi.Cyan,
	"white":   ansi.White,

	"bright-black":   ansi.Black.Bright(),
	"bright-red":     ansi.Red.Bright(),
	"bright-green":   ansi.Green.Bright(),
	"bright-yellow":  ansi.Yellow.Bright(),
	"bright-blue":    ansi.Blue.Bright(),
	"bright-magenta": ansi.Magenta.Bright(),
	"bright-purple":  ansi.Magenta.Bright(),
	"bright-cyan":    ansi.Cyan.Bright(),
	"bright-white":   ansi.White.Bright(),
}

// colorNames is the suggestion corpus for fuzzy matching, built once.
var colorNames = func() []string {
	names := make([]string, 0, len(namedColors))
	for name := range namedColors {
		names = append(names, name)
	}
	return names
}()

// Parse reads a whitespace-separated style spec. Recognized tokens:
// attribute words (bold, dimmed, italic, underline, blink, inverted,
// hidden, strikethrough), color words (named, bright-*, 0-255, #rrggbb,
// prev_fg, prev_bg), and fg:/bg: prefixed colors. A bare color token
// sets the foreground. "none" must appear alone and yields the empty
// style.
func Parse(spec string) (*Style, error) {
	tokens := strings.Fields(spec)
	s := &Style{}

	for _, tok := range tokens {
		switch tok {
		case "none":
			if len(tokens) != 1 {
				return nil, fmt.Errorf("style %q: \"none\" cannot be combined with other tokens", spec)
			}
			return &Style{}, nil
		case "bold":
			s.Bold = true
		case "dimmed":
			s.Dimmed = true
		case "italic":
			s.Italic = true
		case "underline":
			s.Underline = true
		case "blink":
			s.Blink = true
		case "inverted":
			s.Reverse = true
		case "hidden":
			s.Hidden = true
		case "strikethrough":
			s.Strikethrough = true
		default:
			target := &s.Foreground
			name := tok
			if rest, ok := strings.CutPrefix(tok, "fg:"); ok {
				name = rest
			} else if rest, ok := strings.CutPrefix(tok, "bg:"); ok {
				name = rest
				target = &s.Background
			}
			cs, err := parseColor(name)
			if err != nil {
				return nil, fmt.Errorf("style %q: %w", spec, err)
			}
			*target = cs
		}
	}
	return s, nil
}

// parseColor interprets a single color token.
func parseColor(name string) (ColorSpec, error) {
	switch name {
	case "prev_fg":
		return PrevFG(), nil
	case "prev_bg":
		return PrevBG(), nil
	}
	if c, ok := namedColors[name]; ok {
		return Fixed(c), nil
	}
	if strings.HasPrefix(name, "#") {
		c, err := parseHex(name)
		if err != nil {
			return ColorSpec{}, err
		}
		return Fixed(c), nil
	}
	if n, err := strconv.Atoi(name); err == nil {
		if n < 0 || n > 255 {
			return ColorSpec{}, fmt.Errorf("color index %d out of range 0-255", n)
		}
		return Fixed(ansi.ANSI256(uint8(n))), nil
	}

	msg := fmt.Sprintf("unknown color %q", name)
	if matches := fuzzy.Find(name, colorNames); len(matches) > 0 {
		msg += fmt.Sprintf(" (did you mean %q?)", matches[0].Str)
	}
	return ColorSpec{}, fmt.Errorf("%s", msg)
}

// parseHex reads a #rrggbb color.
func parseHex(name string) (ansi.Color, error) {
	hex := name[1:]
	if len(hex) != 6 {
		return ansi.Color{}, fmt.Errorf("hex color %q must be #rrggbb", name)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return ansi.Color{}, fmt.Errorf("hex color %q: %w", name, err)
	}
	return ansi.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
