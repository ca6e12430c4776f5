package bomberman

import (
	"github.com/vovakirdan/tui-bomberman/internal/config"
	"github.com/vovakirdan/tui-bomberman/internal/core"
)

// enemyColor is used for every spawned enemy.
const enemyColor = core.ColorBrightRed

// enemyCount returns how many enemies a level starts with.
func (g *Game) enemyCount() int {
	return g.cfg.Enemies.BaseCount + g.level
}

// spawnEnemies places the level's enemies on random empty interior cells
// outside the start zone, avoiding bombs, burning cells and the player. When
// the maze leaves no such cell, breakable walls are knocked out to make room.
func (g *Game) spawnEnemies() {
	g.enemies = g.enemies[:0]

	candidates := g.spawnCells(Empty)
	if len(candidates) == 0 {
		candidates = g.clearSpawnCells(g.enemyCount())
	}
	if len(candidates) == 0 {
		return
	}

	for range g.enemyCount() {
		g.enemies = append(g.enemies, Enemy{
			Pos:   candidates[g.rng.IntN(len(candidates))],
			Dir:   g.randomDirection(),
			Color: enemyColor,
		})
	}
}

// spawnCells lists interior cells of the given kind outside the start zone
// that hold no bomb, explosion or player.
func (g *Game) spawnCells(kind Cell) []core.Point {
	burning := make(map[core.Point]bool, len(g.explosions))
	for _, ex := range g.explosions {
		burning[ex.Pos] = true
	}

	var cells []core.Point
	for y := 1; y < g.grid.Rows()-1; y++ {
		for x := 1; x < g.grid.Cols()-1; x++ {
			p := core.Point{X: x, Y: y}
			if x <= config.EnemyStartZone && y <= config.EnemyStartZone {
				continue
			}
			if g.grid.At(x, y) != kind || bombAt(g.bombs, p) || burning[p] || p == g.player.Pos {
				continue
			}
			cells = append(cells, p)
		}
	}
	return cells
}

// clearSpawnCells destroys up to n random breakable walls outside the start
// zone and returns the freed cells.
func (g *Game) clearSpawnCells(n int) []core.Point {
	walls := g.spawnCells(BreakableWall)

	var freed []core.Point
	for len(walls) > 0 && len(freed) < n {
		i := g.rng.IntN(len(walls))
		p := walls[i]
		walls[i] = walls[len(walls)-1]
		walls = walls[:len(walls)-1]

		g.grid.DestroyBreakableWall(p.X, p.Y)
		freed = append(freed, p)
	}
	return freed
}

func (g *Game) randomDirection() core.Direction {
	return core.Directions[g.rng.IntN(len(core.Directions))]
}

// updateEnemies advances every enemy's move timer and steps the ones that are due.
func (g *Game) updateEnemies() {
	for i := range g.enemies {
		e := &g.enemies[i]
		e.MoveTimer++
		if e.MoveTimer < g.cfg.Enemies.MoveEveryTicks {
			continue
		}
		e.MoveTimer = 0
		g.stepEnemy(e)
	}
}

// stepEnemy moves the enemy one cell forward if it can. A blocked enemy always
// picks a new direction; a moving one turns with probability turn_chance.
func (g *Game) stepEnemy(e *Enemy) {
	target := e.Pos.Add(e.Dir.Delta())
	moved := false
	if CanOccupy(target.X, target.Y, g.grid, g.bombs) {
		e.Pos = target
		moved = true
	}

	if !moved || g.rng.Float64() < g.cfg.Enemies.TurnChance {
		e.Dir = g.randomDirection()
	}
}
