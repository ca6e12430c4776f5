package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bomberman/internal/config"
	"github.com/vovakirdan/tui-bomberman/internal/games/bomberman"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved game configuration",
	Long: `Resolve the game configuration the way 'play' does and print it as YAML.

Search order:
  --config <path>
  ~/.bomberman/configs/bomberman.yaml
  ./configs/bomberman.yaml
  embedded defaults

The difficulty preset, if any, is applied on top.

Examples:
  bomberman config
  bomberman config --difficulty hard > ~/.bomberman/configs/bomberman.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	preset, err := config.ParsePreset(flagDifficulty)
	exitOnError("parsing difficulty", err)

	bomberman.SetConfigPath(flagConfig)
	bomberman.SetDifficultyPreset(preset)

	cfg, src, err := bomberman.LoadConfig()
	exitOnError("loading config", err)

	data, err := config.MarshalBomberman(cfg)
	exitOnError("encoding config", err)

	fmt.Printf("# source: %s\n", src)
	if preset != "" {
		fmt.Printf("# difficulty: %s\n", preset)
	}
	fmt.Print(string(data))
}
