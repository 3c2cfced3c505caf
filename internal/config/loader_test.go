package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadThemeWithoutPathSucceeds(t *testing.T) {
	theme, err := LoadTheme("")
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}

	// A user theme file on the machine running the tests could shadow the
	// embedded default, so only assert the fields every source fills.
	if theme.Flyer.Level == "" {
		t.Error("loaded theme has empty flyer.level glyph")
	}
	if theme.Pipe.Body == "" {
		t.Error("loaded theme has empty pipe.body glyph")
	}
	if theme.Colors.Pipe == "" {
		t.Error("loaded theme has empty colors.pipe")
	}
}

func TestDefaultThemeComplete(t *testing.T) {
	theme := DefaultTheme()

	if theme.Flyer.Climb == "" || theme.Flyer.Level == "" || theme.Flyer.Dive == "" {
		t.Error("default theme has empty flyer glyphs")
	}
	if theme.Pipe.Body == "" || theme.Pipe.CapTop == "" || theme.Pipe.CapBottom == "" {
		t.Error("default theme has empty pipe glyphs")
	}
	if !theme.HUD.Enabled {
		t.Error("default theme should enable the HUD")
	}
}

func TestLoadThemeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")

	data := []byte("flyer:\n  climb: \"^\"\n  level: \">\"\n  dive: \"v\"\ncolors:\n  pipe: \"2\"\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write theme: %v", err)
	}

	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if theme.Flyer.Level != ">" {
		t.Errorf("flyer.level = %q, expected \">\"", theme.Flyer.Level)
	}
	if theme.Colors.Pipe != "2" {
		t.Errorf("colors.pipe = %q, expected \"2\"", theme.Colors.Pipe)
	}
}

func TestLoadThemeMissingCustomPath(t *testing.T) {
	if _, err := LoadTheme(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit theme path")
	}
}

func TestLoadThemeMalformedCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("flyer: [not a mapping"), 0o600); err != nil {
		t.Fatalf("write theme: %v", err)
	}

	if _, err := LoadTheme(path); err == nil {
		t.Error("expected error for malformed explicit theme")
	}
}

func TestGetDefaultYAMLParses(t *testing.T) {
	data := GetDefaultYAML()
	if len(data) == 0 {
		t.Fatal("embedded default theme is empty")
	}

	var theme Theme
	if err := yaml.Unmarshal(data, &theme); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if theme != DefaultTheme() {
		t.Errorf("embedded default = %+v, expected to match DefaultTheme()", theme)
	}
}
