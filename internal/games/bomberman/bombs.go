package bomberman

import "github.com/vovakirdan/tui-bomberman/internal/core"

// PlaceBomb drops a bomb under the player. It does nothing when the player
// already has bombCapacity live bombs or a bomb occupies the cell.
func (g *Game) PlaceBomb() bool {
	if len(g.bombs) >= g.player.BombCapacity || bombAt(g.bombs, g.player.Pos) {
		return false
	}
	g.bombs = append(g.bombs, Bomb{
		Pos:   g.player.Pos,
		Fuse:  g.cfg.Bombs.FuseTicks,
		Range: g.player.BombRange,
	})
	return true
}

// updateBombs advances fuses and detonates the bombs that ran out.
func (g *Game) updateBombs() {
	var expired []Bomb
	live := g.bombs[:0]
	for _, b := range g.bombs {
		b.Fuse--
		if b.Fuse <= 0 {
			expired = append(expired, b)
			continue
		}
		live = append(live, b)
	}
	clear(g.bombs[len(live):])
	g.bombs = live

	for _, b := range expired {
		g.detonate(b)
	}
}

// detonate emits explosions from the bomb center outward in each direction.
// A ray stops at the border or a solid wall, and after destroying the first
// breakable wall it reaches.
func (g *Game) detonate(b Bomb) {
	g.addExplosion(b.Pos)

	for _, dir := range core.Directions {
		step := dir.Delta()
		for i := 1; i <= b.Range; i++ {
			pos := b.Pos.Add(step.Scale(i))
			if !g.grid.InBounds(pos.X, pos.Y) || g.grid.At(pos.X, pos.Y) == SolidWall {
				break
			}

			g.addExplosion(pos)

			if g.grid.DestroyBreakableWall(pos.X, pos.Y) {
				g.score += g.cfg.Scoring.Wall
				g.maybeDropPowerup(pos)
				break
			}
		}
	}
}

func (g *Game) addExplosion(pos core.Point) {
	g.explosions = append(g.explosions, Explosion{Pos: pos, Timer: g.cfg.Bombs.ExplosionTicks})
}

// maybeDropPowerup rolls for a powerup of random kind at a destroyed wall.
func (g *Game) maybeDropPowerup(pos core.Point) {
	if g.rng.Float64() >= g.cfg.Powerups.SpawnChance {
		return
	}
	kind := PowerupKind(g.rng.IntN(int(powerupKindCount))) //#nosec G115 -- bounded by powerupKindCount
	g.powerups = append(g.powerups, Powerup{Pos: pos, Kind: kind})
}

// updateExplosions ages explosions and drops the expired ones.
func (g *Game) updateExplosions() {
	live := g.explosions[:0]
	for _, ex := range g.explosions {
		ex.Timer--
		if ex.Timer <= 0 {
			continue
		}
		live = append(live, ex)
	}
	clear(g.explosions[len(live):])
	g.explosions = live
}
