package asteroids

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Visual characters for rendering
const (
	ShipChar          = '█'
	FlameChar         = '~'
	AsteroidChar      = '#'
	UFOChar           = '='
	ShotChar          = '•'
	EnemyShotChar     = '×'
	LifeChar          = '▲'
	invulnBlinkPeriod = 8 // Ticks per blink phase while invulnerable
)

var asteroidColors = map[AsteroidSize]core.Color{
	SizeLarge:  core.ColorGray,
	SizeMedium: core.ColorWhite,
	SizeSmall:  core.ColorBrightWhite,
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall || g.world == nil {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg, core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, hint, core.ColorDefault)
		return
	}

	rs := g.world.RenderState()
	g.renderField(dst, rs)
	g.renderHUD(dst, rs)

	switch g.state {
	case StateStart:
		g.drawCenteredBox(dst, "A S T E R O I D S", "SPACE to launch  |  arrows to fly")
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		g.drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", rs.Score))
	}
}

// toCells maps a world-space polygon onto terminal cells.
func (g *Game) toCells(p core.Polygon) core.Polygon {
	cw, ch := g.cfg.Viewport.CellWidth, g.cfg.Viewport.CellHeight
	out := make(core.Polygon, len(p))
	for i, v := range p {
		out[i] = core.V(v.X/cw, v.Y/ch)
	}
	return out
}

func (g *Game) renderField(dst *core.Screen, rs RenderState) {
	for _, a := range rs.Asteroids {
		dst.DrawPolygon(g.toCells(a.Outline), AsteroidChar, asteroidColors[a.Size])
	}

	for _, u := range rs.UFOs {
		color := core.ColorMagenta
		if u.Type == UFOSmall {
			color = core.ColorBrightRed
		}
		dst.DrawPolygon(g.toCells(u.Outline), UFOChar, color)
	}

	for _, p := range rs.Projectiles {
		cell := g.toCells(core.Polygon{p.Pos})
		if p.Enemy {
			dst.DrawPolygon(cell, EnemyShotChar, core.ColorRed)
		} else {
			dst.DrawPolygon(cell, ShotChar, core.ColorBrightCyan)
		}
	}

	ship := rs.Ship
	if !ship.Active {
		return
	}
	// Blink while invulnerable
	if ship.Invulnerable && (rs.Tick/invulnBlinkPeriod)%2 == 1 {
		return
	}
	if ship.Flame != nil {
		dst.DrawPolygon(g.toCells(ship.Flame), FlameChar, core.ColorOrange)
	}
	dst.DrawPolygon(g.toCells(ship.Hull), ShipChar, core.ColorBrightCyan)
}

func (g *Game) renderHUD(dst *core.Screen, rs RenderState) {
	lives := strings.Repeat(string(LifeChar), core.Max(rs.Lives, 0))
	left := fmt.Sprintf(" Score: %d ", rs.Score)
	right := fmt.Sprintf(" Level: %d ", rs.Level)

	dst.DrawText(1, 0, left, core.ColorYellow)
	dst.DrawText(len(left)+2, 0, lives, core.ColorBrightCyan)
	dst.DrawText(dst.Width()-len(right)-1, 0, right, core.ColorYellow)
}

// drawCenteredBox draws a message box in the center of the screen.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleW := len([]rune(title))
	subtitleW := len([]rune(subtitle))

	boxW := core.Max(titleW, subtitleW) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.FillRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	// Draw text
	dst.DrawText(boxX+(boxW-titleW)/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-subtitleW)/2, boxY+3, subtitle, core.ColorDefault)
}
