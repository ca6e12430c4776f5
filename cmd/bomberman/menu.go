package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomberman/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, then play",
	Long: `Show the difficulty picker before starting a game.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select difficulty
  Esc/Q        - Quit

Examples:
  bomberman menu
  bomberman menu --fps 30`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := runtimeConfig()

	preset, chosen, err := tui.RunDifficultySelector(cfg)
	exitOnError("running menu", err)

	// User pressed back or quit
	if !chosen {
		return
	}

	exitOnError("running game", startGame(preset, cfg))
}
