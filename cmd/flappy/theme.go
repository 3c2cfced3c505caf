package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Print the default theme YAML",
	Long: `Print the built-in theme YAML to stdout as a starting point for
customization. The game looks for a theme at ~/.flappy/theme.yaml, then
./theme.yaml, unless --theme points somewhere else.

Example:
  mkdir -p ~/.flappy && flappy theme > ~/.flappy/theme.yaml`,
	Run: func(_ *cobra.Command, _ []string) {
		os.Stdout.Write(config.GetDefaultYAML())
	},
}
