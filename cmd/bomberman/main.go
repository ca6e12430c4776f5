// bomberman is a terminal Bomberman game: clear each maze of enemies with
// timed bombs and survive as many levels as you can.
//
// Usage:
//
//	bomberman                - Play with the resolved configuration
//	bomberman play           - Same as above
//	bomberman menu           - Pick a difficulty, then play
//	bomberman list           - List available games
//	bomberman config         - Print the resolved configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-file <path>     - Write structured logs to a file
//	--log-level <level>   - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bomberman",
	Short: "Bomberman - blow up walls and enemies in your terminal",
	Long: `Bomberman is a single-player maze game for the terminal.

Place bombs to destroy breakable walls and enemies. Clear every enemy
to reach the next level; each level adds one more enemy.

Available commands:
  play     - Start a game (default)
  menu     - Pick a difficulty interactively, then play
  list     - Show all available games
  config   - Print the resolved game configuration

Examples:
  bomberman
  bomberman play --difficulty hard
  bomberman menu --log-file bomberman.log --log-level debug
  bomberman config --config ./my-bomberman.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the run logger. Without --log-file logs are discarded so
// they cannot corrupt the alternate screen.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "bomberman",
		Level:           level,
	})
	return logger, func() { _ = f.Close() }, nil
}

// exitOnError prints the error to stderr and exits with status 1.
func exitOnError(what string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", what, err)
	os.Exit(1)
}
