package bomberman

import "github.com/vovakirdan/tui-bomberman/internal/core"

// PowerupKind identifies the effect a powerup applies when collected.
type PowerupKind uint8

const (
	PowerupBombCapacity PowerupKind = iota // +1 simultaneous bomb
	PowerupBombRange                       // +1 explosion range

	powerupKindCount
)

// String returns the powerup name.
func (k PowerupKind) String() string {
	switch k {
	case PowerupBombCapacity:
		return "bomb_capacity"
	case PowerupBombRange:
		return "bomb_range"
	default:
		return "unknown"
	}
}

// Color returns the display color for the powerup kind.
func (k PowerupKind) Color() core.Color {
	if k == PowerupBombRange {
		return core.ColorBrightBlue
	}
	return core.ColorBrightGreen
}

// Player is the single player-controlled actor.
type Player struct {
	Pos          core.Point
	Color        core.Color
	BombCapacity int // Maximum live bombs
	BombRange    int // Explosion reach of newly placed bombs

	moveCooldown int // Ticks left before a held direction may step again
}

// Bomb is a placed explosive counting down to detonation.
type Bomb struct {
	Pos   core.Point
	Fuse  int // Ticks until detonation
	Range int // Captured from the player at placement
}

// Explosion marks one burning cell for a limited number of ticks.
type Explosion struct {
	Pos   core.Point
	Timer int // Ticks left visible
}

// Enemy wanders the maze and costs the player a life on contact.
type Enemy struct {
	Pos       core.Point
	Dir       core.Direction
	MoveTimer int // Ticks since the last move decision
	Color     core.Color
}

// Powerup is a collectible dropped by a destroyed breakable wall.
type Powerup struct {
	Pos  core.Point
	Kind PowerupKind
}

// Color returns the powerup's display color.
func (p Powerup) Color() core.Color { return p.Kind.Color() }

// apply grants the powerup effect to the player.
func (p Powerup) apply(pl *Player) {
	switch p.Kind {
	case PowerupBombCapacity:
		pl.BombCapacity++
	case PowerupBombRange:
		pl.BombRange++
	}
}
