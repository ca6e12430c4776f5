// Package bomberman implements the grid-based bomb-laying arcade game:
// maze generation, bombs and explosions, wandering enemies, powerups and
// level progression, advanced one fixed tick at a time.
package bomberman

import (
	"fmt"

	"github.com/vovakirdan/tui-bomberman/internal/config"
	"github.com/vovakirdan/tui-bomberman/internal/core"
	"github.com/vovakirdan/tui-bomberman/internal/registry"
)

// GameID is the registry identifier of the game.
const GameID = "bomberman"

// Phase is the run state machine.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "playing"
}

// Game is the level/run controller. It owns the maze, every entity and the
// run counters, and advances them through Tick.
type Game struct {
	cfg         config.BombermanConfig
	rng         Random
	initialized bool

	grid       *Grid
	player     Player
	bombs      []Bomb
	explosions []Explosion
	enemies    []Enemy
	powerups   []Powerup

	phase      Phase
	tick       uint64
	score      int
	lives      int
	level      int
	background int    // Index into BackgroundPalette, advanced on every kill
	summary    string // Set on the tick the run ends, cleared on the next
}

// Package-level settings applied on Reset, set by the CLI before the game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets an explicit config file path. Empty means search the default locations.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on top of the loaded config.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// LoadConfig resolves the configuration the next Reset will use.
func LoadConfig() (config.BombermanConfig, config.Source, error) {
	cfg, src, err := config.LoadBomberman(configPath)
	if err != nil {
		return cfg, src, err
	}
	config.ApplyBombermanPreset(&cfg, difficultyPreset)
	return cfg, src, nil
}

// New creates an uninitialized game. Reset must be called before the first tick.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game from an explicit configuration and random
// source and starts a fresh run. Panics if the configuration is invalid.
func NewWithConfig(cfg config.BombermanConfig, rnd Random) *Game {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("bomberman: %v", err))
	}
	g := &Game{cfg: cfg, rng: rnd}
	g.Restart()
	return g
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "Bomberman" }

// Reset loads configuration, reseeds the RNG and starts a fresh run. The maze
// does not depend on the screen size.
//
// The CLI loads and validates the same configuration through LoadConfig before
// the game is created and refuses to start on an error. A file that turns
// invalid afterwards makes Reset fall back to the built-in defaults with the
// difficulty preset applied.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, _, err := LoadConfig()
	if err != nil {
		cfg = config.DefaultBombermanConfig()
		config.ApplyBombermanPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.rng = NewRandom(rc.Seed)
	g.Restart()
}

// Restart resets score, lives, level, player stats and every entity
// collection, then generates a fresh first level.
func (g *Game) Restart() {
	g.phase = PhasePlaying
	g.tick = 0
	g.score = 0
	g.lives = g.cfg.Player.Lives
	g.level = 1
	g.background = 0
	g.summary = ""

	g.player = Player{
		Pos:          g.startPos(),
		Color:        core.ColorGold,
		BombCapacity: g.cfg.Player.BombCapacity,
		BombRange:    g.cfg.Player.BombRange,
	}
	g.bombs = nil
	g.explosions = nil
	g.enemies = nil
	g.powerups = nil

	g.initialized = true
	g.loadLevel()
}

// Tick advances the simulation by one frame and returns the resulting state.
// Once the run is over it only returns the current state.
func (g *Game) Tick(in Input) Snapshot {
	if !g.initialized {
		panic("bomberman: Tick called before Reset")
	}

	g.summary = ""
	if g.phase != PhasePlaying {
		return g.Snapshot()
	}

	g.tick++
	g.handleInput(in)
	g.updateBombs()
	g.updateExplosions()
	g.updateEnemies()
	g.checkCollisions()

	// Win check
	if g.phase == PhasePlaying && len(g.enemies) == 0 {
		g.nextLevel()
	}

	return g.Snapshot()
}

// Step advances the game by one tick from a platform input frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	snap := g.Tick(InputFromFrame(in))
	return core.StepResult{State: g.State(), Summary: snap.Summary}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.level,
		GameOver: g.phase == PhaseGameOver,
	}
}

// Running reports whether the run is still in progress.
func (g *Game) Running() bool { return g.phase == PhasePlaying }

func (g *Game) startPos() core.Point {
	return core.Point{X: g.cfg.Player.StartX, Y: g.cfg.Player.StartY}
}

// loadLevel generates the maze for the current level and spawns its enemies.
// Breakable walls rolled under the player, a bomb or a powerup are removed so
// nothing ends up inside a wall.
func (g *Game) loadLevel() {
	if g.cfg.Enemies.MoveEveryTicks <= 0 {
		panic("bomberman: enemy move interval must be positive")
	}

	g.grid = NewGrid(g.cfg.Grid.Rows, g.cfg.Grid.Cols, g.cfg.Map.BreakableChance, g.rng)

	g.grid.DestroyBreakableWall(g.player.Pos.X, g.player.Pos.Y)
	for _, b := range g.bombs {
		g.grid.DestroyBreakableWall(b.Pos.X, b.Pos.Y)
	}
	for _, pu := range g.powerups {
		g.grid.DestroyBreakableWall(pu.Pos.X, pu.Pos.Y)
	}

	g.spawnEnemies()
}

// nextLevel awards the level bonus and builds the next maze. Player position
// and stats, bombs, explosions and powerups carry over.
func (g *Game) nextLevel() {
	g.level++
	g.score += g.cfg.Scoring.Level
	g.loadLevel()
}

// playerHit costs a life. The last life ends the run; otherwise the player
// goes back to the start cell.
func (g *Game) playerHit() {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.phase = PhaseGameOver
		g.summary = fmt.Sprintf("Game Over! Final Score: %d", g.score)
		return
	}
	g.player.Pos = g.startPos()
}
