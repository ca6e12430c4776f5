package bomberman

import (
	"testing"

	"github.com/vovakirdan/tui-bomberman/internal/config"
	"github.com/vovakirdan/tui-bomberman/internal/core"
)

// scriptedRand replays fixed values, then falls back to defaults.
// The default float never passes a probability roll below 0.99.
type scriptedRand struct {
	floats       []float64
	ints         []int
	defaultFloat float64
}

func newScriptedRand() *scriptedRand {
	return &scriptedRand{defaultFloat: 0.99}
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return r.defaultFloat
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func testConfig() config.BombermanConfig {
	cfg := config.DefaultBombermanConfig()
	cfg.Player.MoveEveryTicks = 1
	return cfg
}

// parkedEnemy faces the top border from row 1, so with scripted randomness it
// never leaves its cell.
func parkedEnemy(x int) Enemy {
	return Enemy{Pos: core.Point{X: x, Y: 1}, Dir: core.DirUp, Color: enemyColor}
}

// newTestGameWithConfig returns a game on a 20x15 maze with no breakable walls
// and a single enemy parked far from the player.
func newTestGameWithConfig(t *testing.T, cfg config.BombermanConfig) *Game {
	t.Helper()
	g := NewWithConfig(cfg, newScriptedRand())
	if n := g.grid.Count(BreakableWall); n != 0 {
		t.Fatalf("test maze should have no breakable walls, got %d", n)
	}
	g.enemies = []Enemy{parkedEnemy(17)}
	return g
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return newTestGameWithConfig(t, testConfig())
}

// gridFromLayout builds a grid from rows of '#' (solid), '+' (breakable) and '.' (empty).
func gridFromLayout(layout ...string) *Grid {
	g := &Grid{rows: len(layout), cols: len(layout[0]), cells: make([][]Cell, len(layout))}
	for y, row := range layout {
		g.cells[y] = make([]Cell, len(row))
		for x, ch := range row {
			switch ch {
			case '#':
				g.cells[y][x] = SolidWall
			case '+':
				g.cells[y][x] = BreakableWall
			default:
				g.cells[y][x] = Empty
			}
		}
	}
	return g
}

func explosionSet(exs []Explosion) map[core.Point]bool {
	set := make(map[core.Point]bool, len(exs))
	for _, ex := range exs {
		set[ex.Pos] = true
	}
	return set
}

func pt(x, y int) core.Point { return core.Point{X: x, Y: y} }
