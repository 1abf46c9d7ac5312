package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fishgrab/internal/maze"
)

var mazeCmd = &cobra.Command{
	Use:   "maze",
	Short: "Print the maze layout",
	Long: `Print the built-in maze, one row per line: # is a wall, . is floor.

Fish and the grabber are placed at random when a game starts, so they do
not appear here.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		m := maze.Default()
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, m.String())
		fmt.Fprintf(out, "\n%dx%d, %d floor cells\n", m.Width(), m.Height(), m.Count(maze.Floor))
	},
}
