package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chomp/internal/games/chase/engine"
)

var flagLevelsDir string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List installed boards",
	Long: `Shows the boards the game cycles through, in play order.

With --levels, lists the boards from a custom directory instead of the
built-in ones.`,
	Run: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of custom level YAML files")
}

func runLevels(cmd *cobra.Command, args []string) {
	var (
		lib *engine.Library
		err error
	)
	if flagLevelsDir != "" {
		lib, err = engine.LoadDir(flagLevelsDir)
	} else {
		lib, err = engine.DefaultLibrary()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Installed boards:")
	fmt.Println()
	fmt.Printf("  %-5s  %-20s  %s\n", "Level", "Name", "Size")
	fmt.Printf("  %-5s  %-20s  %s\n", "-----", "----", "----")
	for n := 1; n <= lib.Count(); n++ {
		lvl := lib.Get(n)
		fmt.Printf("  %-5d  %-20s  %dx%d\n", n, lvl.Name, lvl.Width, lvl.Height)
	}
	fmt.Println()
	fmt.Println("Play cycles back to level 1 after the last board.")
}
