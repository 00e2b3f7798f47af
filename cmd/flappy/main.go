// flappy is a one-button arcade game for the terminal.
//
// Usage:
//
//	flappy play              - Play the game
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log-file <path>    - Write debug logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - Keep the bird in the air",
	Long: `Flappy is a one-button arcade game played in the terminal.
Flap through the gaps between obstacles; every pair you pass scores a point.

Available commands:
  play     - Play the game
  config   - Print the effective configuration

Examples:
  flappy play
  flappy play --difficulty hard
  flappy play --seed 42 --log-file flappy.log
  flappy config --config ./my-flappy.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
