// ABOUTME: Tests for configuration defaults, merging, and validation
// ABOUTME: Uses temp dirs for project files and env override for global

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDefaultValidates(t *testing.T) {
	t.Parallel()

	if err := Default().Validate(); err != nil {
		t.Fatalf("default config does not validate: %v", err)
	}
}

func TestLoadNoFiles(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PROMPTLINE_CONFIG", filepath.Join(dir, "missing.yaml"))

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Left) == 0 || cfg.Separator == "" {
		t.Error("defaults not applied when no files exist")
	}
	if !cfg.NewlineBeforePrompt() {
		t.Error("add_newline should default to true")
	}
}

func TestLoadProjectOverridesGlobal(t *testing.T) {
	dir := t.TempDir()
	globalPath := filepath.Join(dir, "global.yaml")
	t.Setenv("PROMPTLINE_CONFIG", globalPath)

	writeFile(t, globalPath, `
separator: ">r"
modules:
  directory:
    style: "fg:blue"
    truncation_length: 5
`)
	writeFile(t, ProjectConfigFile(dir), `
add_newline: false
modules:
  directory:
    style: "fg:green"
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Separator != ">r" {
		t.Errorf("separator = %q, want global override", cfg.Separator)
	}
	dirMod := cfg.Module("directory")
	if dirMod.Style != "fg:green" {
		t.Errorf("directory style = %q, want project override", dirMod.Style)
	}
	if dirMod.TruncationLength != 5 {
		t.Errorf("truncation_length = %d, want global value kept", dirMod.TruncationLength)
	}
	if cfg.NewlineBeforePrompt() {
		t.Error("project add_newline: false not honored")
	}
}

func TestLoadRejectsBadStyle(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PROMPTLINE_CONFIG", filepath.Join(dir, "missing.yaml"))

	writeFile(t, ProjectConfigFile(dir), `
modules:
  git_branch:
    style: "fg:greeen"
`)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("Load accepted an invalid color name")
	}
	if !strings.Contains(err.Error(), "git_branch") {
		t.Errorf("error %q does not name the offending module", err)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PROMPTLINE_CONFIG", filepath.Join(dir, "missing.yaml"))

	writeFile(t, ProjectConfigFile(dir), "modules: [not a map\n")

	if _, err := Load(dir); err == nil {
		t.Fatal("Load accepted malformed YAML")
	}
}

func TestMergeDisabled(t *testing.T) {
	t.Parallel()

	base := Default()
	no := false
	merge(base, &Config{
		AddNewline: &no,
		Modules: map[string]ModuleConfig{
			"time": {Disabled: true},
		},
	})
	if !base.Module("time").Disabled {
		t.Error("disabled flag lost in merge")
	}
	if base.Module("time").TimeFormat == "" {
		t.Error("merge dropped unrelated default fields")
	}
}
