package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-chomp/internal/core"
	"github.com/vovakirdan/tui-chomp/internal/games/chase"
	"github.com/vovakirdan/tui-chomp/internal/platform/tui"
	"github.com/vovakirdan/tui-chomp/internal/registry"
	"github.com/vovakirdan/tui-chomp/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevels     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the game in the current terminal.

Controls:
  Arrows/WASD  - Steer (turns apply at the next junction)
  Enter/Space  - Start from title, restart after game over
  Q/Esc        - Quit mid-game
  Ctrl+C       - Quit anywhere

Difficulty options:
  easy   - 3 lives, ghosts wander more
  normal - 2 lives, standard ghosts
  hard   - 1 life, ghosts hunt hard
  fixed  - Keep whatever the config file says

Examples:
  chomp play
  chomp play --difficulty hard
  chomp play --config ./my-chomp.yaml
  chomp play --levels ./boards --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLevels, "levels", "", "Directory of custom level YAML files")
}

func runPlay(cmd *cobra.Command, args []string) {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		FrameRate: flagFPS,
		Seed:      flagSeed,
	}

	// Apply CLI settings before the game loads its config
	chase.SetConfigPath(flagConfig)
	chase.SetDifficultyPreset(flagDifficulty)
	chase.SetLevelsDir(flagLevels)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
