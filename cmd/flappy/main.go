// flappy is a terminal rendition of a minimal flappy-bird style arcade
// simulation.
//
// Usage:
//
//	flappy play              - Play in the current terminal
//	flappy serve             - Start SSH server for remote play
//	flappy theme             - Print the default theme YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible obstacle layouts
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - a falling-and-flapping arcade game for your terminal",
	Long: `Flappy runs a minimal flappy-bird style simulation in the terminal:
a flyer falls under gravity, flaps upward on input, and a recycled field
of pipe pairs scrolls toward it. Touching a pipe or the bottom of the
field resets the run instantly.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  theme    - Print the default theme YAML for customization

Examples:
  flappy play
  flappy play --seed 42
  flappy serve --ssh :2222
  flappy theme > ~/.flappy/theme.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(themeCmd)
}
