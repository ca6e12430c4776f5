package bomberman

import (
	"fmt"

	"github.com/vovakirdan/tui-bomberman/internal/core"
)

// BackgroundPalette is the floor color cycle; every enemy kill advances it.
var BackgroundPalette = []core.Color{
	core.ColorGray,
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorGreen,
	core.ColorBrown,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
	core.ColorBrightGreen,
	core.ColorYellow,
	core.ColorWhite,
}

const (
	cellWidth = 2 // Terminal columns per grid cell
	hudHeight = 2
)

// Glyph pairs, one per terminal column of a cell.
var (
	glyphFloor     = [cellWidth]rune{'·', ' '}
	glyphSolid     = [cellWidth]rune{'█', '█'}
	glyphBreakable = [cellWidth]rune{'▒', '▒'}
	glyphBomb      = [cellWidth]rune{'(', ')'}
	glyphExplosion = [cellWidth]rune{'*', '*'}
	glyphEnemy     = [cellWidth]rune{'>', '<'}
	glyphPlayer    = [cellWidth]rune{'{', '}'}
	glyphCapacity  = [cellWidth]rune{'B', '+'}
	glyphRange     = [cellWidth]rune{'R', '+'}
)

// Glyph returns the two-column glyph for the powerup kind.
func (k PowerupKind) Glyph() [cellWidth]rune {
	if k == PowerupBombRange {
		return glyphRange
	}
	return glyphCapacity
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if !g.initialized {
		return
	}

	g.renderHUD(dst)

	mapW := g.grid.Cols() * cellWidth
	mapH := g.grid.Rows()
	if dst.Width() < mapW || dst.Height() < mapH+hudHeight {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", mapW, mapH+hudHeight))
		return
	}

	offX := (dst.Width() - mapW) / 2
	offY := hudHeight

	floor := BackgroundPalette[g.background%len(BackgroundPalette)]
	for y := range g.grid.Rows() {
		for x := range g.grid.Cols() {
			switch g.grid.At(x, y) {
			case SolidWall:
				drawCell(dst, offX, offY, core.Point{X: x, Y: y}, glyphSolid, core.ColorGray)
			case BreakableWall:
				drawCell(dst, offX, offY, core.Point{X: x, Y: y}, glyphBreakable, core.ColorBrown)
			default:
				drawCell(dst, offX, offY, core.Point{X: x, Y: y}, glyphFloor, floor)
			}
		}
	}

	for _, pu := range g.powerups {
		drawCell(dst, offX, offY, pu.Pos, pu.Kind.Glyph(), pu.Color())
	}
	for _, b := range g.bombs {
		drawCell(dst, offX, offY, b.Pos, glyphBomb, g.bombColor(b))
	}
	for _, ex := range g.explosions {
		color := core.ColorOrange
		if ex.Timer%10 < 5 {
			color = core.ColorBrightYellow
		}
		drawCell(dst, offX, offY, ex.Pos, glyphExplosion, color)
	}
	for _, e := range g.enemies {
		drawCell(dst, offX, offY, e.Pos, glyphEnemy, e.Color)
	}
	drawCell(dst, offX, offY, g.player.Pos, glyphPlayer, g.player.Color)

	if g.phase == PhaseGameOver {
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Final Score: %d", g.score))
	}
}

// bombColor flashes bright once half the fuse has burned.
func (g *Game) bombColor(b Bomb) core.Color {
	if b.Fuse <= g.cfg.Bombs.FuseTicks/2 {
		return core.ColorBrightRed
	}
	return core.ColorWhite
}

func drawCell(dst *core.Screen, offX, offY int, p core.Point, glyph [cellWidth]rune, c core.Color) {
	for i, r := range glyph {
		dst.SetColored(offX+p.X*cellWidth+i, offY+p.Y, r, c)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Bomberman | Score: %d  Lives: %d  Level: %d  Bombs: %d/%d  Range: %d",
		g.score, g.lives, g.level, len(g.bombs), g.player.BombCapacity, g.player.BombRange)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
