package bomberman

import "github.com/vovakirdan/tui-bomberman/internal/core"

// CanOccupy reports whether an actor may move into (x, y): the cell must be
// inside the grid, Empty, and free of bombs. Shared by the player and enemies.
func CanOccupy(x, y int, grid *Grid, bombs []Bomb) bool {
	if !grid.InBounds(x, y) || grid.At(x, y) != Empty {
		return false
	}
	return !bombAt(bombs, core.Point{X: x, Y: y})
}

func bombAt(bombs []Bomb, p core.Point) bool {
	for _, b := range bombs {
		if b.Pos == p {
			return true
		}
	}
	return false
}

// checkCollisions resolves contacts in priority order. A player hit ends the
// check for this tick.
func (g *Game) checkCollisions() {
	p := g.player.Pos

	for _, e := range g.enemies {
		if e.Pos == p {
			g.playerHit()
			return
		}
	}
	for _, ex := range g.explosions {
		if ex.Pos == p {
			g.playerHit()
			return
		}
	}

	g.killBurningEnemies()
	g.collectPowerups()
}

// killBurningEnemies removes every enemy standing in an explosion.
func (g *Game) killBurningEnemies() {
	if len(g.explosions) == 0 || len(g.enemies) == 0 {
		return
	}

	burning := make(map[core.Point]bool, len(g.explosions))
	for _, ex := range g.explosions {
		burning[ex.Pos] = true
	}

	alive := g.enemies[:0]
	for _, e := range g.enemies {
		if burning[e.Pos] {
			g.score += g.cfg.Scoring.Enemy
			g.background = (g.background + 1) % len(BackgroundPalette)
			continue
		}
		alive = append(alive, e)
	}
	clear(g.enemies[len(alive):])
	g.enemies = alive
}

// collectPowerups applies and removes every powerup under the player.
func (g *Game) collectPowerups() {
	remaining := g.powerups[:0]
	for _, pu := range g.powerups {
		if pu.Pos == g.player.Pos {
			pu.apply(&g.player)
			g.score += g.cfg.Scoring.Powerup
			continue
		}
		remaining = append(remaining, pu)
	}
	clear(g.powerups[len(remaining):])
	g.powerups = remaining
}
