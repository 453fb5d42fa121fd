// ABOUTME: CLI entry point: renders the shell prompt to stdout
// ABOUTME: Parses flags, loads config, collects modules, composes the line

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/mauromedda/promptline-go/internal/compose"
	"github.com/mauromedda/promptline-go/internal/config"
	"github.com/mauromedda/promptline-go/internal/log"
	"github.com/mauromedda/promptline-go/internal/modules"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// collectTimeout bounds one full render; a prompt that stalls the shell
// is worse than a prompt missing a module.
const collectTimeout = 3 * time.Second

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("promptline %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	log.SetLevel(log.ParseLevel(args.logLevel))

	if args.config != "" {
		os.Setenv("PROMPTLINE_CONFIG", args.config)
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "promptline: %v\n", err)
		os.Exit(1)
	}

	in := modules.Inputs{CWD: cwd, Status: args.status}

	left, err := modules.FromConfig(cfg, cfg.Left, in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "promptline: %v\n", err)
		os.Exit(1)
	}
	right, err := modules.FromConfig(cfg, cfg.Right, in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "promptline: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
	defer cancel()

	leftOut := modules.CollectAll(ctx, left)
	rightOut := modules.CollectAll(ctx, right)

	if args.explain {
		explain(os.Stdout, cfg, left, leftOut, right, rightOut)
		return
	}

	composer, err := compose.New(cfg, terminalWidth(args.width))
	if err != nil {
		fmt.Fprintf(os.Stderr, "promptline: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(composer.Prompt(leftOut, rightOut))
}

// terminalWidth prefers the flag, then the real terminal, then COLUMNS.
func terminalWidth(flagWidth int) int {
	if flagWidth > 0 {
		return flagWidth
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			return w
		}
	}
	var w int
	if _, err := fmt.Sscanf(os.Getenv("COLUMNS"), "%d", &w); err == nil && w > 0 {
		return w
	}
	return 80
}
