// ABOUTME: -explain view: lists configured modules with styles and output
// ABOUTME: Rendered with lipgloss; module names title-cased via x/text

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mauromedda/promptline-go/internal/config"
	"github.com/mauromedda/promptline-go/internal/modules"
)

var (
	explainHeader = lipgloss.NewStyle().Bold(true).Underline(true)
	explainName   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	explainSpec   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	explainHidden = lipgloss.NewStyle().Faint(true)
)

var titleCaser = cases.Title(language.English)

// explain writes a human-readable breakdown of the configured modules.
func explain(w io.Writer, cfg *config.Config, left []modules.Module, leftOut []modules.Output, right []modules.Module, rightOut []modules.Output) {
	fmt.Fprintln(w, explainHeader.Render("Left prompt"))
	explainHalf(w, cfg, left, leftOut)
	fmt.Fprintln(w)
	fmt.Fprintln(w, explainHeader.Render("Right prompt"))
	explainHalf(w, cfg, right, rightOut)
}

func explainHalf(w io.Writer, cfg *config.Config, mods []modules.Module, outs []modules.Output) {
	if len(mods) == 0 {
		fmt.Fprintln(w, explainHidden.Render("  (empty)"))
		return
	}
	for i, m := range mods {
		title := titleCaser.String(strings.ReplaceAll(m.Name(), "_", " "))
		spec := cfg.Module(m.Name()).Style

		line := "  " + explainName.Render(title)
		if spec != "" {
			line += "  " + explainSpec.Render(spec)
		}
		if i < len(outs) && outs[i].Visible() {
			line += "  " + outs[i].Text
		} else {
			line += "  " + explainHidden.Render("(hidden)")
		}
		fmt.Fprintln(w, line)
	}
}
