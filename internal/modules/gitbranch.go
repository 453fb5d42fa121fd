// ABOUTME: Git branch module: current branch via the git CLI
// ABOUTME: Short timeout, silent skip outside repositories

package modules

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/mauromedda/promptline-go/pkg/style"
)

// gitTimeout bounds the git call; a prompt must never hang on a slow
// filesystem.
const gitTimeout = 2 * time.Second

// GitBranch shows the checked-out branch.
type GitBranch struct {
	cwd    string
	symbol string
	style  *style.Style
}

// NewGitBranch returns a git branch module. symbol is prepended to the
// branch name when non-empty.
func NewGitBranch(cwd, symbol string, st *style.Style) *GitBranch {
	return &GitBranch{cwd: cwd, symbol: symbol, style: st}
}

func (g *GitBranch) Name() string { return "git_branch" }

func (g *GitBranch) Collect(ctx context.Context) (Output, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, gitTimeout)
		defer cancel()
	}

	out, err := gitCmd(ctx, g.cwd, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		// Not a git repo (or git missing): hide the module.
		return Output{}, nil
	}
	branch := strings.TrimSpace(out)
	if branch == "" {
		return Output{}, nil
	}
	if branch == "HEAD" {
		// Detached head: show the short commit hash instead.
		hash, err := gitCmd(ctx, g.cwd, "rev-parse", "--short", "HEAD")
		if err != nil {
			return Output{}, nil
		}
		branch = "@" + strings.TrimSpace(hash)
	}
	return Output{Text: g.symbol + branch, Style: g.style}, nil
}

// gitCmd runs git with the given arguments in dir and returns stdout.
func gitCmd(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	return string(out), err
}
