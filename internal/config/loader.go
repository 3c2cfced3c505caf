package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/theme.yaml
var defaultThemeYAML []byte

// GetDefaultYAML returns the embedded default theme YAML, for users who
// want a starting point to customize.
func GetDefaultYAML() []byte {
	return defaultThemeYAML
}

// LoadTheme loads the appearance theme.
// Search order: customPath -> ~/.flappy/theme.yaml -> ./theme.yaml -> embedded default.
// An explicit customPath that fails to read or parse is an error; the
// fallback locations are tried silently.
func LoadTheme(customPath string) (Theme, error) {
	var theme Theme

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return theme, fmt.Errorf("failed to read theme %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &theme); err != nil {
			return theme, fmt.Errorf("failed to parse theme %s: %w", customPath, err)
		}
		return theme, nil
	}

	if userPath := userThemePath(); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &theme); err == nil {
				return theme, nil
			}
		}
	}

	if data, err := os.ReadFile("theme.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &theme); err == nil {
			return theme, nil
		}
	}

	if err := yaml.Unmarshal(defaultThemeYAML, &theme); err != nil {
		return DefaultTheme(), nil // Fallback to hardcoded if embed fails
	}
	return theme, nil
}

// userThemePath returns the per-user theme location, or "" if the home
// directory cannot be resolved.
func userThemePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "theme.yaml")
}
