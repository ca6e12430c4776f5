package bomberman

import "slices"

// Snapshot captures the complete renderable game state. It shares no memory
// with the game, so callers may keep or modify it freely.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	GameOver   bool
	Summary    string // Non-empty only on the tick the run ended
	Score      int
	Lives      int
	Level      int
	Background int // Index into BackgroundPalette

	Grid       [][]Cell // indexed [y][x]
	Player     Player
	Bombs      []Bomb
	Explosions []Explosion
	Enemies    []Enemy
	Powerups   []Powerup
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       g.tick,
		Phase:      g.phase,
		GameOver:   g.phase == PhaseGameOver,
		Summary:    g.summary,
		Score:      g.score,
		Lives:      g.lives,
		Level:      g.level,
		Background: g.background,
		Player:     g.player,
		Bombs:      slices.Clone(g.bombs),
		Explosions: slices.Clone(g.explosions),
		Enemies:    slices.Clone(g.enemies),
		Powerups:   slices.Clone(g.powerups),
	}
	if g.grid != nil {
		snap.Grid = g.grid.Cells()
	}
	return snap
}

// Hash computes a hash of the snapshot for determinism comparison.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)               //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)               //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)               //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)               //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Background)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Player.Pos.X)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Player.Pos.Y)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Player.BombCapacity) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Player.BombRange)    //#nosec G115 -- hash computation

	for _, row := range snap.Grid {
		for _, c := range row {
			h = h*31 + uint64(c)
		}
	}

	for _, b := range snap.Bombs {
		h = h*31 + uint64(b.Pos.X) //#nosec G115 -- hash computation
		h = h*31 + uint64(b.Pos.Y) //#nosec G115 -- hash computation
		h = h*31 + uint64(b.Fuse)  //#nosec G115 -- hash computation
		h = h*31 + uint64(b.Range) //#nosec G115 -- hash computation
	}

	for _, ex := range snap.Explosions {
		h = h*31 + uint64(ex.Pos.X) //#nosec G115 -- hash computation
		h = h*31 + uint64(ex.Pos.Y) //#nosec G115 -- hash computation
		h = h*31 + uint64(ex.Timer) //#nosec G115 -- hash computation
	}

	for _, e := range snap.Enemies {
		h = h*31 + uint64(e.Pos.X)     //#nosec G115 -- hash computation
		h = h*31 + uint64(e.Pos.Y)     //#nosec G115 -- hash computation
		h = h*31 + uint64(e.Dir)       //#nosec G115 -- hash computation
		h = h*31 + uint64(e.MoveTimer) //#nosec G115 -- hash computation
	}

	for _, pu := range snap.Powerups {
		h = h*31 + uint64(pu.Pos.X) //#nosec G115 -- hash computation
		h = h*31 + uint64(pu.Pos.Y) //#nosec G115 -- hash computation
		h = h*31 + uint64(pu.Kind)
	}

	return h
}
