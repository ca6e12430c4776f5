package config

import (
	_ "embed"
)

//go:embed defaults/bomberman.yaml
var defaultBombermanYAML []byte

// DefaultBombermanConfig returns the default Bomberman configuration.
// It mirrors defaults/bomberman.yaml and is used if the embedded file fails to parse.
func DefaultBombermanConfig() BombermanConfig {
	return BombermanConfig{
		Grid: GridConfig{
			Rows: 15,
			Cols: 20,
		},
		Player: PlayerConfig{
			Lives:          3,
			BombCapacity:   1,
			BombRange:      2,
			MoveEveryTicks: 6,
			StartX:         1,
			StartY:         1,
		},
		Bombs: BombConfig{
			FuseTicks:      120, // 2 seconds
			ExplosionTicks: 30,  // 0.5 seconds
		},
		Map: MapConfig{
			BreakableChance: 0.3,
		},
		Enemies: EnemyConfig{
			BaseCount:      3,
			MoveEveryTicks: 30,
			TurnChance:     0.3,
		},
		Powerups: PowerupConfig{
			SpawnChance: 0.3,
		},
		Scoring: ScoringConfig{
			Wall:    10,
			Enemy:   100,
			Powerup: 50,
			Level:   500,
		},
		Input: InputConfig{
			HoldTicks: 4,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "bomberman":
		return defaultBombermanYAML
	default:
		return nil
	}
}
