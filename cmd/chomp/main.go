// chomp is a terminal maze-chase game: eat every pellet while dodging the
// ghosts, over SSH or locally.
//
// Usage:
//
//	chomp play               - Play in the current terminal
//	chomp levels             - List installed boards
//	chomp serve              - Start SSH server for remote play
//	chomp scores             - Show high scores and run history
//
// Global flags:
//
//	--fps <rate>    - Render frame rate (default: 60); simulation speed is fixed
//	--seed <value>  - Set RNG seed for reproducible ghost behavior
//	--db <path>     - Set database path (default: ~/.chomp/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-chomp/internal/games/chase"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

// gameID is the registry ID of the one game this binary ships.
const gameID = "chomp"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chomp",
	Short: "Chomp - a maze chase game in your terminal",
	Long: `Chomp is a terminal maze-chase game. Guide the muncher through the
board, eat every pellet, and stay ahead of the ghosts. The tunnel row
wraps around, and so do the ghosts chasing you through it.

Available commands:
  play     - Play in the current terminal
  levels   - List installed boards
  serve    - Start SSH server for remote play
  scores   - View high scores and run history

Examples:
  chomp play
  chomp play --difficulty hard
  chomp serve --ssh :2222
  chomp scores --interactive`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Render frame rate (simulation speed is fixed)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.chomp/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
