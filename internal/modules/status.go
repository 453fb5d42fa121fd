// ABOUTME: Status module: last command's exit code, hidden on success
// ABOUTME: Character module: prompt glyph switching style on failure

package modules

import (
	"context"
	"strconv"

	"github.com/mauromedda/promptline-go/pkg/style"
)

// Status shows a non-zero exit code.
type Status struct {
	code   int
	symbol string
	style  *style.Style
}

// NewStatus returns a status module for the given exit code.
func NewStatus(code int, symbol string, st *style.Style) *Status {
	return &Status{code: code, symbol: symbol, style: st}
}

func (s *Status) Name() string { return "status" }

func (s *Status) Collect(_ context.Context) (Output, error) {
	if s.code == 0 {
		return Output{}, nil
	}
	return Output{Text: s.symbol + strconv.Itoa(s.code), Style: s.style}, nil
}

// Character is the prompt glyph typed commands follow.
type Character struct {
	code      int
	symbol    string
	errSymbol string
	okStyle   *style.Style
	errStyle  *style.Style
}

// NewCharacter returns a character module. Empty symbols fall back to
// "❯"; the error symbol falls back to the success symbol.
func NewCharacter(code int, symbol, errSymbol string, okStyle, errStyle *style.Style) *Character {
	if symbol == "" {
		symbol = "❯"
	}
	if errSymbol == "" {
		errSymbol = symbol
	}
	return &Character{
		code:      code,
		symbol:    symbol,
		errSymbol: errSymbol,
		okStyle:   okStyle,
		errStyle:  errStyle,
	}
}

func (c *Character) Name() string { return "character" }

func (c *Character) Collect(_ context.Context) (Output, error) {
	if c.code != 0 {
		return Output{Text: c.errSymbol + " ", Style: c.errStyle}, nil
	}
	return Output{Text: c.symbol + " ", Style: c.okStyle}, nil
}
