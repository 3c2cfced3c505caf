package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/game"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var flagTheme string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the game in the current terminal.

Controls:
  Space/Up/W - Flap
  Q/Ctrl+C   - Quit

There is no game-over screen: hitting a pipe or falling out of the field
resets the run instantly and play continues.

Examples:
  flappy play
  flappy play --seed 42
  flappy play --theme ./my-theme.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Path to custom theme YAML")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "flappy"})

	theme, err := config.LoadTheme(flagTheme)
	if err != nil {
		logger.Warn("could not load theme, using default", "error", err)
		theme = config.DefaultTheme()
	}

	// Terminal size for the initial screen; resizes follow live.
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	world, err := game.NewWorld(tui.LogicalWidth, tui.LogicalHeight, game.NewOffsetSource(seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating world: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(world, theme, width, height, flagFPS); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
