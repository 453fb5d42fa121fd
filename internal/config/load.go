// ABOUTME: Configuration loading with global + project deep merge
// ABOUTME: YAML files; project settings override global, both override defaults

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	globalDirName   = "promptline"
	globalFileName  = "promptline.yaml"
	projectFileName = ".promptline.yaml"
)

// GlobalConfigFile returns the path of the per-user config file.
func GlobalConfigFile() string {
	if dir := os.Getenv("PROMPTLINE_CONFIG"); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, globalDirName, globalFileName)
}

// ProjectConfigFile returns the path of the per-directory config file.
func ProjectConfigFile(dir string) string {
	return filepath.Join(dir, projectFileName)
}

// Load reads and merges defaults, the global file, and the project
// file for cwd, then validates the result. Missing files are fine.
func Load(cwd string) (*Config, error) {
	cfg := Default()

	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}
	merge(cfg, global)

	project, err := loadFile(ProjectConfigFile(cwd))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}
	merge(cfg, project)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile reads a Config from a YAML file. Returns the os error
// unchanged so callers can test for non-existence.
func loadFile(path string) (*Config, error) {
	if path == "" {
		return nil, os.ErrNotExist
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &c, nil
}

// merge overlays set values from over onto base.
func merge(base, over *Config) {
	if over == nil {
		return
	}
	if over.AddNewline != nil {
		base.AddNewline = over.AddNewline
	}
	if over.Left != nil {
		base.Left = over.Left
	}
	if over.Right != nil {
		base.Right = over.Right
	}
	if over.Separator != "" {
		base.Separator = over.Separator
	}
	if over.RightSeparator != "" {
		base.RightSeparator = over.RightSeparator
	}
	if over.Fill.Pattern != "" {
		base.Fill.Pattern = over.Fill.Pattern
	}
	if over.Fill.Style != "" {
		base.Fill.Style = over.Fill.Style
	}
	for name, mc := range over.Modules {
		if base.Modules == nil {
			base.Modules = make(map[string]ModuleConfig)
		}
		base.Modules[name] = mergeModule(base.Modules[name], mc)
	}
}

// mergeModule overlays set fields from over onto base.
func mergeModule(base, over ModuleConfig) ModuleConfig {
	if over.Disabled {
		base.Disabled = true
	}
	if over.Style != "" {
		base.Style = over.Style
	}
	if over.Symbol != "" {
		base.Symbol = over.Symbol
	}
	if over.ErrorSymbol != "" {
		base.ErrorSymbol = over.ErrorSymbol
	}
	if over.ErrorStyle != "" {
		base.ErrorStyle = over.ErrorStyle
	}
	if over.TruncationLength != 0 {
		base.TruncationLength = over.TruncationLength
	}
	if over.TimeFormat != "" {
		base.TimeFormat = over.TimeFormat
	}
	return base
}
