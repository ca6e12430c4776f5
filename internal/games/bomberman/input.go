package bomberman

import "github.com/vovakirdan/tui-bomberman/internal/core"

// Input is the per-tick control snapshot consumed by Tick.
type Input struct {
	Up, Down, Left, Right bool // Held directions
	PlaceBomb             bool
}

// InputFromFrame maps platform actions to a simulation input.
func InputFromFrame(f core.InputFrame) Input {
	return Input{
		Up:        f.Has(core.ActionUp),
		Down:      f.Has(core.ActionDown),
		Left:      f.Has(core.ActionLeft),
		Right:     f.Has(core.ActionRight),
		PlaceBomb: f.Has(core.ActionBomb),
	}
}

// delta sums the held directions. Opposite keys cancel out and two
// perpendicular keys produce a diagonal step.
func (in Input) delta() core.Point {
	var d core.Point
	if in.Up {
		d = d.Add(core.DirUp.Delta())
	}
	if in.Down {
		d = d.Add(core.DirDown.Delta())
	}
	if in.Left {
		d = d.Add(core.DirLeft.Delta())
	}
	if in.Right {
		d = d.Add(core.DirRight.Delta())
	}
	return d
}

// handleInput places a pending bomb, then moves the player toward the held
// direction if the destination is free and the move cooldown has elapsed.
func (g *Game) handleInput(in Input) {
	if in.PlaceBomb {
		g.PlaceBomb()
	}

	if g.player.moveCooldown > 0 {
		g.player.moveCooldown--
	}

	d := in.delta()
	if d == (core.Point{}) || g.player.moveCooldown > 0 {
		return
	}

	target := g.player.Pos.Add(d)
	if CanOccupy(target.X, target.Y, g.grid, g.bombs) {
		g.player.Pos = target
		g.player.moveCooldown = g.cfg.Player.MoveEveryTicks
	}
}
