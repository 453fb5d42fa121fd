// ABOUTME: Directory module: cwd with home contraction and truncation
// ABOUTME: Keeps the last N path components, prefixing … when shortened

package modules

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/mauromedda/promptline-go/pkg/style"
)

const defaultTruncation = 3

// Directory shows the working directory.
type Directory struct {
	cwd        string
	truncation int
	style      *style.Style
}

// NewDirectory returns a directory module. truncation <= 0 uses the
// default of three components.
func NewDirectory(cwd string, truncation int, st *style.Style) *Directory {
	if truncation <= 0 {
		truncation = defaultTruncation
	}
	return &Directory{cwd: cwd, truncation: truncation, style: st}
}

func (d *Directory) Name() string { return "directory" }

func (d *Directory) Collect(_ context.Context) (Output, error) {
	return Output{Text: d.display(), Style: d.style}, nil
}

// display contracts the home prefix to ~ and keeps the trailing
// truncation components.
func (d *Directory) display() string {
	p := filepath.ToSlash(d.cwd)
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		h := filepath.ToSlash(home)
		if p == h {
			return "~"
		}
		if rest, ok := strings.CutPrefix(p, h+"/"); ok {
			p = "~/" + rest
		}
	}

	parts := strings.Split(strings.TrimSuffix(p, "/"), "/")
	if len(parts) <= d.truncation {
		return p
	}
	return "…/" + strings.Join(parts[len(parts)-d.truncation:], "/")
}
