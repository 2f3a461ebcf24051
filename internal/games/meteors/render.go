package meteors

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/meteors/internal/core"
)

// hudRows is the number of screen rows reserved for the status line.
const hudRows = 1

// projection maps world space onto character cells. Terminal cells are
// about twice as tall as wide, so x uses twice the y scale.
type projection struct {
	originX, originY float64 // cell of the planet center
	sx, sy           float64 // cells per world unit
	center           core.Vec2
}

func newProjection(w, h int, center core.Vec2, viewRadius float64) projection {
	rows := float64(h - hudRows)
	sy := rows / (2 * viewRadius)
	sx := 2 * sy
	if sx*2*viewRadius > float64(w) {
		sx = float64(w) / (2 * viewRadius)
		sy = sx / 2
	}
	return projection{
		originX: float64(w) / 2,
		originY: float64(hudRows) + rows/2,
		sx:      sx,
		sy:      sy,
		center:  center,
	}
}

// cell returns the cell containing world point p.
func (p projection) cell(v core.Vec2) (int, int) {
	x := p.originX + (v.X-p.center.X)*p.sx
	y := p.originY + (v.Y-p.center.Y)*p.sy
	return int(math.Floor(x)), int(math.Floor(y))
}

// world returns the world point at the middle of cell (x, y).
func (p projection) world(x, y int) core.Vec2 {
	return core.Vec2{
		X: p.center.X + (float64(x)+0.5-p.originX)/p.sx,
		Y: p.center.Y + (float64(y)+0.5-p.originY)/p.sy,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	proj := newProjection(dst.Width(), dst.Height(), g.planet.Center, g.cfg.World.ViewRadius)

	g.drawPlanet(dst, proj)

	// Live objects first, then the player, then debris on top of everything.
	for _, m := range g.managers() {
		g.drawObjects(dst, proj, m, true)
	}
	if g.mode == ModePlaying && g.player.Visible {
		x, y := proj.cell(g.player.Position(g.planet))
		dst.SetColored(x, y, PlayerChar, core.ColorBrightWhite)
	}
	for _, m := range g.managers() {
		g.drawObjects(dst, proj, m, false)
	}

	g.drawHUD(dst)
	if g.debug {
		g.drawDebug(dst)
	}

	switch {
	case g.mode == ModeTitle && g.gameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press any key", g.lastScore))
	case g.mode == ModeTitle:
		g.drawCenteredMessage(dst, "M E T E O R S", "A/D rotate  Space bomb  |  Press any key")
	case g.mode == ModeLevel:
		g.drawCenteredMessage(dst, fmt.Sprintf("LEVEL %d", g.level), "Get ready")
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawPlanet fills the planet disc and marks craters that turn with it.
func (g *Game) drawPlanet(dst *core.Screen, proj projection) {
	r2 := g.planet.Radius * g.planet.Radius
	for y := hudRows; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if core.DistanceSquared(proj.world(x, y), g.planet.Center) <= r2 {
				dst.SetColored(x, y, PlanetChar, core.ColorBlue)
			}
		}
	}

	inner := g.planet.Orbit(g.planet.Radius * 0.6)
	for i := 0; i < 5; i++ {
		a := g.planet.Angle + float64(i)*2*math.Pi/5
		x, y := proj.cell(core.PointOnCircle(inner, a))
		dst.SetColored(x, y, CraterChar, core.ColorCyan)
	}
}

// drawObjects draws either the active objects or the debris of a manager.
func (g *Game) drawObjects(dst *core.Screen, proj projection, m *SpawnManager, active bool) {
	for _, o := range m.Objects() {
		if o.Active != active {
			continue
		}
		x, y := proj.cell(o.Position(g.planet))
		if active {
			dst.SetColored(x, y, o.Kind.Glyph(), o.Kind.Color())
			continue
		}
		glyph := DebrisChar
		if o.Alpha < g.cfg.Debris.Alpha/2 {
			glyph = DustChar
		}
		dst.SetColored(x, y, glyph, o.Kind.Color().Dim())
	}
}

// drawHUD renders the status line.
func (g *Game) drawHUD(dst *core.Screen) {
	power := strings.Repeat(string(StarChar), g.player.StarPower) +
		strings.Repeat("☆", max(g.player.MaxStarPower()-g.player.StarPower, 0))
	left := fmt.Sprintf(" Score: %d  Level: %d ", g.State().Score, g.level)
	dst.DrawText(1, 0, left)

	right := fmt.Sprintf(" %s  Bombs: %d ", power, g.player.Bombs)
	dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, core.ColorBrightYellow)
}

// drawDebug lists wave and population counts per manager.
func (g *Game) drawDebug(dst *core.Screen) {
	y := dst.Height() - 3
	for _, m := range g.managers() {
		line := fmt.Sprintf("%-8s waves:%d objs:%d every:%s random:%v",
			m.Family(), m.WaveCount(), len(m.Objects()), m.Interval(), m.RandomEnabled())
		dst.DrawTextColored(0, y, line, core.ColorGray)
		y++
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))

	boxW := max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle)
}
