// ABOUTME: Tests for style spec parsing and context-sensitive resolution
// ABOUTME: Covers named/numeric/hex colors, prev_fg/prev_bg, and error text

package style

import (
	"strings"
	"testing"

	"github.com/mauromedda/promptline-go/pkg/ansi"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec string
		want ansi.Style // expected after Resolve(nil)
	}{
		{name: "empty spec", spec: "", want: ansi.Style{}},
		{name: "none", spec: "none", want: ansi.Style{}},
		{name: "bold", spec: "bold", want: ansi.Style{Bold: true}},
		{name: "bare color is foreground", spec: "green", want: ansi.Style{Foreground: ansi.Green}},
		{name: "purple alias", spec: "purple", want: ansi.Style{Foreground: ansi.Magenta}},
		{name: "bright named", spec: "bright-blue", want: ansi.Style{Foreground: ansi.Blue.Bright()}},
		{
			name: "fg and bg",
			spec: "fg:white bg:red",
			want: ansi.Style{Foreground: ansi.White, Background: ansi.Red},
		},
		{
			name: "numeric 256",
			spec: "bg:208",
			want: ansi.Style{Background: ansi.ANSI256(208)},
		},
		{
			name: "hex rgb",
			spec: "fg:#a1b2c3",
			want: ansi.Style{Foreground: ansi.RGB(0xa1, 0xb2, 0xc3)},
		},
		{
			name: "attributes with colors",
			spec: "bold underline fg:cyan bg:black",
			want: ansi.Style{Bold: true, Underline: true, Foreground: ansi.Cyan, Background: ansi.Black},
		},
		{
			name: "inverted maps to reverse",
			spec: "inverted",
			want: ansi.Style{Reverse: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.spec, err)
			}
			if got := s.Resolve(nil); got != tt.want {
				t.Errorf("Parse(%q).Resolve(nil) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		spec    string
		wantSub string
	}{
		{name: "unknown color", spec: "fg:gren", wantSub: `did you mean "green"`},
		{name: "unknown color no match", spec: "fg:zzz", wantSub: "unknown color"},
		{name: "index out of range", spec: "fg:300", wantSub: "out of range"},
		{name: "short hex", spec: "bg:#fff", wantSub: "#rrggbb"},
		{name: "none combined", spec: "none bold", wantSub: "cannot be combined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tt.spec)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.spec)
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("Parse(%q) error %q does not contain %q", tt.spec, err, tt.wantSub)
			}
		})
	}
}

func TestResolvePrevReferences(t *testing.T) {
	t.Parallel()

	prev := &ansi.Style{Foreground: ansi.Yellow, Background: ansi.Blue}

	s, err := Parse("fg:prev_bg bg:prev_fg")
	if err != nil {
		t.Fatal(err)
	}

	got := s.Resolve(prev)
	if got.Foreground != ansi.Blue {
		t.Errorf("prev_bg foreground = %+v, want blue", got.Foreground)
	}
	if got.Background != ansi.Yellow {
		t.Errorf("prev_fg background = %+v, want yellow", got.Background)
	}

	// Without a previous style the references fall back to default.
	if got := s.Resolve(nil); !got.IsPlain() {
		t.Errorf("Resolve(nil) = %+v, want plain", got)
	}
}

func TestResolveNilStyle(t *testing.T) {
	t.Parallel()

	var s *Style
	if got := s.Resolve(&ansi.Style{Foreground: ansi.Red}); !got.IsPlain() {
		t.Errorf("nil style Resolve = %+v, want plain", got)
	}
}
