// ABOUTME: Tests for String, Clusters, Cluster, and ANSI stripping
// ABOUTME: Covers ASCII, CJK, emoji, combining marks, and escape sequences

package width

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty", input: "", want: 0},
		{name: "ascii", input: "hello", want: 5},
		{name: "ansi colored", input: "\x1b[31mred\x1b[0m", want: 3},
		{name: "cjk", input: "你好", want: 4},
		{name: "emoji", input: "🟦", want: 2},
		{name: "mixed", input: "hi\x1b[1m!\x1b[0m", want: 3},
		{name: "only ansi", input: "\x1b[31m\x1b[0m", want: 0},
		{name: "combining mark", input: "é", want: 1},
		{name: "osc sequence", input: "\x1b]0;title\x07abc", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := String(tt.input); got != tt.want {
				t.Errorf("String(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestClusters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "ascii", input: "ab", want: []string{"a", "b"}},
		{name: "combining mark stays joined", input: "éx", want: []string{"é", "x"}},
		{name: "emoji", input: "🟢🔵", want: []string{"🟢", "🔵"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Clusters(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Clusters(%q) = %q, want %q", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Clusters(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCluster(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty", input: "", want: 0},
		{name: "ascii", input: "a", want: 1},
		{name: "wide", input: "你", want: 2},
		{name: "emoji", input: "🟦", want: 2},
		{name: "zero width joiner alone", input: "‍", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Cluster(tt.input); got != tt.want {
				t.Errorf("Cluster(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripANSI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no sequences", input: "plain", want: "plain"},
		{name: "sgr", input: "\x1b[1;31mbold red\x1b[0m", want: "bold red"},
		{name: "osc with bel", input: "\x1b]0;t\x07rest", want: "rest"},
		{name: "osc with st", input: "\x1b]8;;url\x1b\\link", want: "link"},
		{name: "truncated escape", input: "abc\x1b", want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStringCacheLargeInput(t *testing.T) {
	t.Parallel()

	// Repeated measurement of the same non-ASCII string exercises the cache.
	s := strings.Repeat("你好", 50)
	want := 200
	for i := 0; i < 3; i++ {
		if got := String(s); got != want {
			t.Fatalf("String() pass %d = %d, want %d", i, got, want)
		}
	}
}
