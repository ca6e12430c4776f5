// Package config provides YAML-based game configuration loading and
// difficulty presets for the bomberman game.
package config

import (
	"errors"
	"fmt"
)

// EnemyStartZone bounds the top-left block, x <= EnemyStartZone && y <= EnemyStartZone,
// where enemies never spawn.
const EnemyStartZone = 3

// Smallest maze dimension, and the smallest explosion lifetime that survives
// the tick it was created on.
const (
	minGridSize       = 5
	minExplosionTicks = 2
)

// BombermanConfig contains all configuration for the Bomberman game.
// Timers are expressed in simulation ticks (60 ticks = 1 second at 60 FPS).
type BombermanConfig struct {
	Grid     GridConfig    `yaml:"grid"`
	Player   PlayerConfig  `yaml:"player"`
	Bombs    BombConfig    `yaml:"bombs"`
	Map      MapConfig     `yaml:"map"`
	Enemies  EnemyConfig   `yaml:"enemies"`
	Powerups PowerupConfig `yaml:"powerups"`
	Scoring  ScoringConfig `yaml:"scoring"`
	Input    InputConfig   `yaml:"input"`
}

// GridConfig defines the maze dimensions in cells.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// PlayerConfig defines the player's starting stats.
type PlayerConfig struct {
	Lives          int `yaml:"lives"`
	BombCapacity   int `yaml:"bomb_capacity"`
	BombRange      int `yaml:"bomb_range"`
	MoveEveryTicks int `yaml:"move_every_ticks"` // Minimum ticks between steps while a key is held
	StartX         int `yaml:"start_x"`
	StartY         int `yaml:"start_y"`
}

// BombConfig defines bomb and explosion timing.
type BombConfig struct {
	FuseTicks      int `yaml:"fuse_ticks"`
	ExplosionTicks int `yaml:"explosion_ticks"`
}

// MapConfig defines level generation parameters.
type MapConfig struct {
	BreakableChance float64 `yaml:"breakable_chance"`
}

// EnemyConfig defines enemy count and wandering behaviour.
type EnemyConfig struct {
	BaseCount      int     `yaml:"base_count"` // Enemies per level = base_count + level
	MoveEveryTicks int     `yaml:"move_every_ticks"`
	TurnChance     float64 `yaml:"turn_chance"` // Chance to re-pick direction after a successful step
}

// PowerupConfig defines powerup drops.
type PowerupConfig struct {
	SpawnChance float64 `yaml:"spawn_chance"` // Chance per destroyed breakable wall
}

// ScoringConfig defines score awards.
type ScoringConfig struct {
	Wall    int `yaml:"wall"`
	Enemy   int `yaml:"enemy"`
	Powerup int `yaml:"powerup"`
	Level   int `yaml:"level"`
}

// InputConfig defines how terminal key repeats are turned into held keys.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"`
}

// Validate checks the configuration for values the simulation cannot run with.
func (c BombermanConfig) Validate() error {
	var errs []error

	if c.Grid.Rows < minGridSize || c.Grid.Cols < minGridSize {
		errs = append(errs, fmt.Errorf("grid must be at least %dx%d, got %dx%d",
			minGridSize, minGridSize, c.Grid.Cols, c.Grid.Rows))
	} else if c.Grid.Rows-2 <= EnemyStartZone && c.Grid.Cols-2 <= EnemyStartZone {
		errs = append(errs, fmt.Errorf("grid %dx%d has no room for enemies outside the start corner",
			c.Grid.Cols, c.Grid.Rows))
	}
	if c.Player.StartX < 1 || c.Player.StartY < 1 ||
		c.Player.StartX >= c.Grid.Cols-1 || c.Player.StartY >= c.Grid.Rows-1 {
		errs = append(errs, fmt.Errorf("player start (%d,%d) must be inside the border", c.Player.StartX, c.Player.StartY))
	}
	if c.Player.Lives < 1 {
		errs = append(errs, errors.New("player.lives must be positive"))
	}
	if c.Player.BombCapacity < 1 || c.Player.BombRange < 1 {
		errs = append(errs, errors.New("player bomb capacity and range must be positive"))
	}
	if c.Player.MoveEveryTicks < 1 {
		errs = append(errs, errors.New("player.move_every_ticks must be positive"))
	}
	if c.Bombs.FuseTicks < 1 {
		errs = append(errs, errors.New("bombs.fuse_ticks must be positive"))
	}
	if c.Bombs.ExplosionTicks < minExplosionTicks {
		errs = append(errs, fmt.Errorf("bombs.explosion_ticks must be at least %d, got %d",
			minExplosionTicks, c.Bombs.ExplosionTicks))
	}
	if c.Enemies.BaseCount < 0 {
		errs = append(errs, errors.New("enemies.base_count must not be negative"))
	}
	if c.Enemies.MoveEveryTicks < 1 {
		errs = append(errs, errors.New("enemies.move_every_ticks must be positive"))
	}
	if c.Input.HoldTicks < 1 {
		errs = append(errs, errors.New("input.hold_ticks must be positive"))
	}

	probabilities := map[string]float64{
		"map.breakable_chance":  c.Map.BreakableChance,
		"enemies.turn_chance":   c.Enemies.TurnChance,
		"powerups.spawn_chance": c.Powerups.SpawnChance,
	}
	for name, p := range probabilities {
		if p < 0 || p > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0, 1], got %v", name, p))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid bomberman config: %w", err)
	}
	return nil
}
