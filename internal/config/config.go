// ABOUTME: Prompt configuration: module layout, separators, fill, styles
// ABOUTME: YAML-based with defaults; style specs validated at load time

package config

import (
	"fmt"

	"github.com/mauromedda/promptline-go/pkg/style"
)

// Config holds the merged prompt configuration.
type Config struct {
	// AddNewline prints a blank line before the prompt. Pointer so a
	// project file can explicitly disable what a global file enabled.
	AddNewline *bool `yaml:"add_newline,omitempty"`

	// Left and Right are ordered module names for each prompt half.
	Left  []string `yaml:"left,omitempty"`
	Right []string `yaml:"right,omitempty"`

	// Separator glyphs carry a trailing direction marker ('l'/'r'),
	// e.g. "r" for the right-facing powerline wedge.
	Separator      string `yaml:"separator,omitempty"`
	RightSeparator string `yaml:"right_separator,omitempty"`

	Fill FillConfig `yaml:"fill,omitempty"`

	Modules map[string]ModuleConfig `yaml:"modules,omitempty"`
}

// FillConfig describes the pattern repeated between the prompt halves.
type FillConfig struct {
	Pattern string `yaml:"pattern,omitempty"`
	Style   string `yaml:"style,omitempty"`
}

// ModuleConfig holds per-module settings. Only the fields a module
// reads have any effect; unknown fields are simply ignored by it.
type ModuleConfig struct {
	Disabled    bool   `yaml:"disabled,omitempty"`
	Style       string `yaml:"style,omitempty"`
	Symbol      string `yaml:"symbol,omitempty"`
	ErrorSymbol string `yaml:"error_symbol,omitempty"`
	ErrorStyle  string `yaml:"error_style,omitempty"`

	// directory
	TruncationLength int `yaml:"truncation_length,omitempty"`

	// time
	TimeFormat string `yaml:"time_format,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	yes := true
	return &Config{
		AddNewline:     &yes,
		Left:           []string{"directory", "git_branch", "character"},
		Right:          []string{"status", "time"},
		Separator:      "r",
		RightSeparator: "l",
		Fill: FillConfig{
			Pattern: "·",
			Style:   "dimmed",
		},
		Modules: map[string]ModuleConfig{
			"directory": {
				Style:            "bold fg:white bg:blue",
				TruncationLength: 3,
			},
			"git_branch": {
				Style:  "fg:black bg:green",
				Symbol: " ",
			},
			"character": {
				Style:       "bold fg:green",
				ErrorStyle:  "bold fg:red",
				Symbol:      "❯",
				ErrorSymbol: "❯",
			},
			"status": {
				Style: "fg:white bg:red",
			},
			"time": {
				Style:      "fg:black bg:white",
				TimeFormat: "15:04:05",
			},
		},
	}
}

// Validate resolves every style spec so color typos surface once at
// load time rather than on every render.
func (c *Config) Validate() error {
	if _, err := style.Parse(c.Fill.Style); err != nil {
		return fmt.Errorf("fill: %w", err)
	}
	for name, mc := range c.Modules {
		if _, err := style.Parse(mc.Style); err != nil {
			return fmt.Errorf("module %s: %w", name, err)
		}
		if _, err := style.Parse(mc.ErrorStyle); err != nil {
			return fmt.Errorf("module %s: %w", name, err)
		}
	}
	return nil
}

// Module returns the settings for name, falling back to the zero value.
func (c *Config) Module(name string) ModuleConfig {
	return c.Modules[name]
}

// NewlineBeforePrompt reports whether a blank line precedes the prompt.
func (c *Config) NewlineBeforePrompt() bool {
	return c.AddNewline == nil || *c.AddNewline
}
