package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bomberman/internal/config"
	"github.com/vovakirdan/tui-bomberman/internal/core"
	"github.com/vovakirdan/tui-bomberman/internal/games/bomberman"
	"github.com/vovakirdan/tui-bomberman/internal/platform/tui"
	"github.com/vovakirdan/tui-bomberman/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Bomberman",
	Long: `Start a game of Bomberman.

Controls:
  Arrows/WASD  - Move
  Space/X      - Place bomb
  P/Esc        - Pause
  R            - Restart (after game over)
  ?            - Toggle full help
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5 lives
  normal - 3 lives
  hard   - 2 lives, one extra enemy per level

Examples:
  bomberman play
  bomberman play --difficulty easy
  bomberman play --seed 42 --fps 30
  bomberman play --config ./my-bomberman.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	preset, err := config.ParsePreset(flagDifficulty)
	exitOnError("parsing difficulty", err)

	exitOnError("running game", startGame(preset, runtimeConfig()))
}

// runtimeConfig builds the runtime settings from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// startGame resolves the game configuration and runs one TUI session.
func startGame(preset config.DifficultyPreset, cfg core.RuntimeConfig) error {
	if cfg.TickRate <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", cfg.TickRate)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	// Set config path and difficulty before creation
	bomberman.SetConfigPath(flagConfig)
	bomberman.SetDifficultyPreset(preset)

	gameCfg, src, err := bomberman.LoadConfig()
	if err != nil {
		return err
	}
	switch src {
	case config.SourceBuiltin:
		logger.Warn("embedded config unavailable, using built-in defaults")
	case config.SourceEmbedded:
		logger.Debug("no config file found, using embedded defaults")
	default:
		logger.Info("config loaded", "source", src)
	}

	game, err := registry.Create(bomberman.GameID)
	if err != nil {
		return err
	}

	logger.Info("starting", "difficulty", preset, "lives", gameCfg.Player.Lives,
		"grid", fmt.Sprintf("%dx%d", gameCfg.Grid.Cols, gameCfg.Grid.Rows))

	return tui.Run(game, cfg, tui.Options{
		HoldTicks: gameCfg.Input.HoldTicks,
		Logger:    logger,
	})
}
