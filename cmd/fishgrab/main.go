// fishgrab is a terminal maze game: steer the grabber through a fixed maze
// and collect every fish.
//
// Usage:
//
//	fishgrab play            - Play in this terminal
//	fishgrab serve           - Start SSH server for remote play
//	fishgrab scores          - Show the best finished runs
//	fishgrab maze            - Print the maze layout
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible fish placement
//	--db <path>          - Set database path (default: ~/.fishgrab/runs.db)
//	--config <path>      - Load settings from a YAML file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fishgrab",
	Short: "Fish Grab - collect every fish in the maze",
	Long: `Fish Grab is a terminal maze game. Fifteen fish are hidden around a
fixed 20x20 maze; walk the grabber over each of them to win.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View the best finished runs
  maze     - Print the maze layout

Examples:
  fishgrab play
  fishgrab play --seed 42
  fishgrab serve --ssh :2222
  fishgrab scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to runs database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(mazeCmd)
}
