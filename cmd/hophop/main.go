// hophop is a side-scrolling arcade game: hop a bunny through the gaps in
// an endless row of pipes.
//
// Usage:
//
//	hophop play              - Play in the terminal
//	hophop menu              - Launcher with difficulty picker and high scores
//	hophop window            - Play in a desktop window
//	hophop serve             - Start SSH server for remote play
//	hophop scores            - Show recorded runs
//	hophop config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.hophop/runs.db)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--mute                - Disable sound
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
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagMute       bool
	flagAssets     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hophop",
	Short: "Hop Hop Bunny - flap through the gaps",
	Long: `Hop Hop Bunny is a side-scrolling arcade game. Tap to hop, fall with
gravity, and pass through as many gaps as you can.

It runs in your terminal, in a desktop window, or over SSH.

Available commands:
  play     - Play in the terminal
  menu     - Launcher with difficulty picker and high scores
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - Show recorded runs
  config   - Print the effective configuration

Examples:
  hophop play
  hophop play --difficulty hard
  hophop window --seed 42
  hophop serve --ssh :2222
  hophop scores --frontend tui`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hophop/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Directory of PNG texture overrides (<id>.png)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
