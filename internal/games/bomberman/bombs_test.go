package bomberman

import "testing"

func TestPlaceBombRespectsCapacity(t *testing.T) {
	g := newTestGame(t)

	if !g.PlaceBomb() {
		t.Fatal("first bomb should be placed")
	}
	if g.PlaceBomb() {
		t.Error("second bomb on the same cell should be rejected")
	}

	g.player.Pos = pt(2, 1)
	if g.PlaceBomb() {
		t.Error("bomb beyond capacity should be rejected")
	}

	g.player.BombCapacity = 2
	if !g.PlaceBomb() {
		t.Error("bomb within raised capacity should be placed")
	}

	g.player.Pos = pt(3, 1)
	if g.PlaceBomb() {
		t.Error("bomb beyond raised capacity should be rejected")
	}
	if len(g.bombs) != 2 {
		t.Errorf("live bombs = %d, expected 2", len(g.bombs))
	}
}

func TestPlaceBombCapturesRangeAndFuse(t *testing.T) {
	g := newTestGame(t)
	g.PlaceBomb()
	g.player.BombRange = 5

	b := g.bombs[0]
	if b.Range != 2 {
		t.Errorf("Range = %d, expected the range at placement (2)", b.Range)
	}
	if b.Fuse != g.cfg.Bombs.FuseTicks {
		t.Errorf("Fuse = %d, expected %d", b.Fuse, g.cfg.Bombs.FuseTicks)
	}
	if b.Pos != g.player.Pos {
		t.Errorf("bomb at %+v, expected under the player", b.Pos)
	}
}

func TestBombDestroysNearbyWalls(t *testing.T) {
	g := newTestGame(t)
	g.grid.cells[1][3] = BreakableWall // (3,1)
	g.grid.cells[2][1] = BreakableWall // (1,2)

	g.Tick(Input{PlaceBomb: true})
	for range 118 {
		g.Tick(Input{})
	}
	if len(g.bombs) != 1 || g.bombs[0].Fuse != 1 {
		t.Fatalf("bomb should be one tick from detonation, got %+v", g.bombs)
	}

	g.Tick(Input{})

	if len(g.bombs) != 0 {
		t.Fatalf("bomb should have detonated, got %+v", g.bombs)
	}
	if g.grid.At(3, 1) != Empty || g.grid.At(1, 2) != Empty {
		t.Error("breakable walls within range should be destroyed")
	}
	if g.score != 20 {
		t.Errorf("score = %d, expected 20", g.score)
	}

	want := map[[2]int]bool{{1, 1}: true, {2, 1}: true, {3, 1}: true, {1, 2}: true}
	got := explosionSet(g.explosions)
	if len(got) != len(want) {
		t.Errorf("explosions = %v, expected %d cells", got, len(want))
	}
	for p := range want {
		if !got[pt(p[0], p[1])] {
			t.Errorf("missing explosion at (%d,%d)", p[0], p[1])
		}
	}

	// The player stood on the bomb
	if g.lives != 2 {
		t.Errorf("lives = %d, expected 2", g.lives)
	}
}

func TestDetonationRays(t *testing.T) {
	tests := []struct {
		name   string
		bomb   Bomb
		expect [][2]int
	}{
		{
			name:   "open crossing",
			bomb:   Bomb{Pos: pt(3, 3), Range: 2},
			expect: [][2]int{{3, 3}, {3, 2}, {3, 1}, {3, 4}, {3, 5}, {2, 3}, {1, 3}, {4, 3}, {5, 3}},
		},
		{
			name:   "pillar and border stop rays",
			bomb:   Bomb{Pos: pt(2, 1), Range: 2},
			expect: [][2]int{{2, 1}, {1, 1}, {3, 1}, {4, 1}},
		},
		{
			name:   "range one",
			bomb:   Bomb{Pos: pt(1, 1), Range: 1},
			expect: [][2]int{{1, 1}, {2, 1}, {1, 2}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			g.detonate(tc.bomb)

			got := explosionSet(g.explosions)
			if len(g.explosions) != len(tc.expect) {
				t.Errorf("explosions = %d, expected %d", len(g.explosions), len(tc.expect))
			}
			for _, p := range tc.expect {
				if !got[pt(p[0], p[1])] {
					t.Errorf("missing explosion at (%d,%d)", p[0], p[1])
				}
			}
		})
	}
}

func TestDetonationStopsAtFirstBreakableWall(t *testing.T) {
	g := newTestGame(t)
	g.grid.cells[1][2] = BreakableWall // (2,1)
	g.grid.cells[1][3] = BreakableWall // (3,1)

	g.detonate(Bomb{Pos: pt(1, 1), Range: 3})

	if g.grid.At(2, 1) != Empty {
		t.Error("first breakable wall should be destroyed")
	}
	if g.grid.At(3, 1) != BreakableWall {
		t.Error("wall behind the first breakable wall should survive")
	}
	got := explosionSet(g.explosions)
	if !got[pt(2, 1)] || got[pt(3, 1)] {
		t.Errorf("explosion should cover (2,1) and stop, got %v", got)
	}
	if g.score != 10 {
		t.Errorf("score = %d, expected 10", g.score)
	}
}

func TestDestroyedWallDropsPowerup(t *testing.T) {
	g := newTestGame(t)
	g.grid.cells[1][3] = BreakableWall // (3,1)
	g.grid.cells[3][1] = BreakableWall // (1,3)
	g.rng = &scriptedRand{floats: []float64{0.1, 0.5}, ints: []int{1}}

	g.detonate(Bomb{Pos: pt(1, 1), Range: 2})

	if len(g.powerups) != 1 {
		t.Fatalf("powerups = %d, expected 1", len(g.powerups))
	}
	pu := g.powerups[0]
	if pu.Kind != PowerupBombRange {
		t.Errorf("kind = %s, expected %s", pu.Kind, PowerupBombRange)
	}
	if pu.Pos != pt(1, 3) && pu.Pos != pt(3, 1) {
		t.Errorf("powerup at %+v, expected at a destroyed wall", pu.Pos)
	}
	if pu.Color() != PowerupBombRange.Color() {
		t.Error("powerup color should follow its kind")
	}
}

func TestExplosionsExpire(t *testing.T) {
	g := newTestGame(t)
	g.detonate(Bomb{Pos: pt(1, 1), Range: 1})
	n := len(g.explosions)

	for range g.cfg.Bombs.ExplosionTicks - 1 {
		g.updateExplosions()
	}
	if len(g.explosions) != n {
		t.Fatalf("explosions = %d, expected %d before expiry", len(g.explosions), n)
	}

	g.updateExplosions()
	if len(g.explosions) != 0 {
		t.Errorf("explosions = %d, expected all expired", len(g.explosions))
	}
}

func TestSameTickDetonationsAllResolve(t *testing.T) {
	g := newTestGame(t)
	g.bombs = []Bomb{
		{Pos: pt(3, 3), Fuse: 1, Range: 1},
		{Pos: pt(9, 9), Fuse: 1, Range: 1},
		{Pos: pt(13, 5), Fuse: 1, Range: 1},
	}

	g.updateBombs()

	if len(g.bombs) != 0 {
		t.Errorf("bombs = %d, expected all detonated", len(g.bombs))
	}
	got := explosionSet(g.explosions)
	for _, p := range []struct{ x, y int }{{3, 3}, {9, 9}, {13, 5}} {
		if !got[pt(p.x, p.y)] {
			t.Errorf("missing explosion at bomb (%d,%d)", p.x, p.y)
		}
	}
}

func TestBombsDoNotChainDetonate(t *testing.T) {
	g := newTestGame(t)
	g.bombs = []Bomb{
		{Pos: pt(3, 3), Fuse: 1, Range: 2},
		{Pos: pt(5, 3), Fuse: 50, Range: 2},
	}

	g.updateBombs()

	if len(g.bombs) != 1 {
		t.Fatalf("bombs = %d, expected the second bomb to survive", len(g.bombs))
	}
	if g.bombs[0].Pos != pt(5, 3) || g.bombs[0].Fuse != 49 {
		t.Errorf("surviving bomb = %+v, expected (5,3) with fuse 49", g.bombs[0])
	}
}
