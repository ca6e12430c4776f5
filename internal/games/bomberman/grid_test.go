package bomberman

import "testing"

func TestNewGridStructure(t *testing.T) {
	const rows, cols = 15, 20

	for seed := int64(1); seed <= 20; seed++ {
		g := NewGrid(rows, cols, 0.3, NewRandom(seed))

		if g.Rows() != rows || g.Cols() != cols {
			t.Fatalf("seed %d: size = %dx%d, expected %dx%d", seed, g.Cols(), g.Rows(), cols, rows)
		}

		for y := range rows {
			for x := range cols {
				cell := g.At(x, y)
				border := y == 0 || y == rows-1 || x == 0 || x == cols-1
				pillar := y%2 == 0 && x%2 == 0

				switch {
				case border || pillar:
					if cell != SolidWall {
						t.Errorf("seed %d: (%d,%d) = %s, expected solid", seed, x, y, cell)
					}
				case cell == SolidWall:
					t.Errorf("seed %d: unexpected solid wall at (%d,%d)", seed, x, y)
				case x <= 2 && y <= 2 && cell != Empty:
					t.Errorf("seed %d: start corner (%d,%d) = %s, expected empty", seed, x, y, cell)
				}
			}
		}

		for _, p := range [][2]int{{1, 1}, {2, 1}, {1, 2}} {
			if g.At(p[0], p[1]) != Empty {
				t.Errorf("seed %d: start cell (%d,%d) should be empty", seed, p[0], p[1])
			}
		}
	}
}

func TestNewGridBreakableChance(t *testing.T) {
	none := NewGrid(15, 20, 0, NewRandom(1))
	if n := none.Count(BreakableWall); n != 0 {
		t.Errorf("chance 0 produced %d breakable walls", n)
	}

	full := NewGrid(15, 20, 1, NewRandom(1))
	for y := 1; y < 14; y++ {
		for x := 1; x < 19; x++ {
			if (y%2 == 0 && x%2 == 0) || (x <= 2 && y <= 2) {
				continue
			}
			if full.At(x, y) != BreakableWall {
				t.Errorf("chance 1: (%d,%d) = %s, expected breakable", x, y, full.At(x, y))
			}
		}
	}
}

func TestNewGridPanicsWhenTooSmall(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"too few rows", 4, 20},
		{"too few cols", 15, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			NewGrid(tc.rows, tc.cols, 0.3, NewRandom(1))
		})
	}
}

func TestDestroyBreakableWall(t *testing.T) {
	g := NewGrid(15, 20, 1, NewRandom(7))
	before := g.Cells()

	if !g.DestroyBreakableWall(3, 1) {
		t.Fatal("destroying a breakable wall should report true")
	}

	for y := range g.Rows() {
		for x := range g.Cols() {
			want := before[y][x]
			if x == 3 && y == 1 {
				want = Empty
			}
			if g.At(x, y) != want {
				t.Errorf("(%d,%d) = %s, expected %s", x, y, g.At(x, y), want)
			}
		}
	}

	if g.DestroyBreakableWall(3, 1) {
		t.Error("destroying an empty cell should report false")
	}
	if g.DestroyBreakableWall(0, 0) {
		t.Error("solid walls must not be destroyed")
	}
	if g.DestroyBreakableWall(-1, 40) {
		t.Error("out of bounds should report false")
	}
	if g.At(0, 0) != SolidWall {
		t.Error("solid wall changed")
	}
}

func TestGridAtOutOfBounds(t *testing.T) {
	g := NewGrid(5, 5, 0, NewRandom(1))
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {5, 2}, {2, 5}} {
		if g.InBounds(p[0], p[1]) {
			t.Errorf("(%d,%d) should be out of bounds", p[0], p[1])
		}
		if g.At(p[0], p[1]) != SolidWall {
			t.Errorf("At(%d,%d) should report solid", p[0], p[1])
		}
	}
}

func TestGridCellsIsCopy(t *testing.T) {
	g := NewGrid(5, 5, 0, NewRandom(1))
	cells := g.Cells()
	cells[1][1] = SolidWall

	if g.At(1, 1) != Empty {
		t.Error("modifying Cells() result should not affect the grid")
	}
}
