// ABOUTME: Prompt module interface, factory, and concurrent collection
// ABOUTME: Modules produce styled text; empty text hides the module

package modules

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/promptline-go/internal/config"
	"github.com/mauromedda/promptline-go/internal/log"
	"github.com/mauromedda/promptline-go/pkg/style"
)

// Output is one module's contribution to the prompt.
type Output struct {
	Text  string
	Style *style.Style
}

// Visible reports whether the module produced anything to show.
func (o Output) Visible() bool {
	return o.Text != ""
}

// Module produces one piece of the prompt.
type Module interface {
	Name() string
	Collect(ctx context.Context) (Output, error)
}

// Inputs carries the per-invocation facts modules read.
type Inputs struct {
	CWD    string
	Status int              // exit code of the last command
	Now    func() time.Time // injectable clock
}

// FromConfig builds the modules named in order, skipping disabled ones.
// Unknown names are logged and skipped so a stale config never breaks
// the prompt.
func FromConfig(cfg *config.Config, names []string, in Inputs) ([]Module, error) {
	var mods []Module
	for _, name := range names {
		mc := cfg.Module(name)
		if mc.Disabled {
			continue
		}
		m, err := build(name, mc, in)
		if err != nil {
			return nil, fmt.Errorf("module %s: %w", name, err)
		}
		if m == nil {
			log.Warn("unknown module %q in config, skipping", name)
			continue
		}
		mods = append(mods, m)
	}
	return mods, nil
}

// build constructs a single module; nil for unknown names.
func build(name string, mc config.ModuleConfig, in Inputs) (Module, error) {
	st, err := style.Parse(mc.Style)
	if err != nil {
		return nil, err
	}
	switch name {
	case "directory":
		return NewDirectory(in.CWD, mc.TruncationLength, st), nil
	case "git_branch":
		return NewGitBranch(in.CWD, mc.Symbol, st), nil
	case "status":
		return NewStatus(in.Status, mc.Symbol, st), nil
	case "character":
		errStyle, err := style.Parse(mc.ErrorStyle)
		if err != nil {
			return nil, err
		}
		return NewCharacter(in.Status, mc.Symbol, mc.ErrorSymbol, st, errStyle), nil
	case "time":
		return NewClock(mc.TimeFormat, st, in.Now), nil
	default:
		return nil, nil
	}
}

// CollectAll runs every module concurrently and returns their outputs
// in module order. A failing module is logged and hidden; one slow or
// broken module must not take the whole prompt down with it.
func CollectAll(ctx context.Context, mods []Module) []Output {
	outs := make([]Output, len(mods))
	g, gCtx := errgroup.WithContext(ctx)
	for i, m := range mods {
		g.Go(func() error {
			out, err := m.Collect(gCtx)
			if err != nil {
				log.Warn("module %s: %v", m.Name(), err)
				return nil
			}
			outs[i] = out
			return nil
		})
	}
	_ = g.Wait()
	return outs
}
