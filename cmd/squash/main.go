// squash is a single-player ball-and-paddle game for the terminal.
//
// Usage:
//
//	squash play [variant]    - Play (default variant from config)
//	squash sim               - Run the engine headless with an autopilot
//	squash list              - List available variants
//	squash menu              - Pick a variant interactively
//	squash config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible bounces
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - Preset: easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "squash",
	Short: "Squash - keep the ball in play against the far wall",
	Long: `Squash is a terminal ball-and-paddle game. Deflect the ball back to the
far wall; every bounce off the wall scores a round and speeds the ball up.
Missing it returns the game to idle.

Available commands:
  play     - Play in the terminal
  sim      - Headless run driven by an autopilot
  list     - Show available variants
  config   - Print the effective configuration
  menu     - Interactive variant picker

Examples:
  squash play
  squash play classic --difficulty easy
  squash sim --ticks 36000 --seed 7
  squash config --difficulty hard`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(menuCmd)
}
