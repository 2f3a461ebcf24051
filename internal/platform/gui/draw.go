package gui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/meteors/internal/games/meteors"
)

var (
	colorSpace  = color.RGBA{0x05, 0x06, 0x14, 0xff}
	colorPlanet = color.RGBA{0x2c, 0x4a, 0x8c, 0xff}
	colorCrater = color.RGBA{0x1d, 0x33, 0x66, 0xff}
	colorPlayer = color.RGBA{0xf0, 0xf0, 0xff, 0xff}
	colorOrbit  = color.RGBA{0x30, 0x30, 0x48, 0xff}
)

// kindColor returns the fill of a live object.
func kindColor(k meteors.Kind) color.NRGBA {
	switch k {
	case meteors.KindCurveMeteor:
		return color.NRGBA{0xd0, 0x50, 0xd0, 0xff}
	case meteors.KindOscillatingMeteor:
		return color.NRGBA{0xff, 0x8c, 0x1a, 0xff}
	case meteors.KindStar:
		return color.NRGBA{0xff, 0xe0, 0x40, 0xff}
	case meteors.KindBomb:
		return color.NRGBA{0x40, 0xe0, 0xff, 0xff}
	}
	return color.NRGBA{0xe0, 0x40, 0x30, 0xff}
}

// view maps world units around the planet center to window pixels.
type view struct {
	cx, cy float64
	scale  float64
}

func newView(w, h int, viewRadius float64) view {
	return view{
		cx:    float64(w) / 2,
		cy:    float64(h) / 2,
		scale: float64(min(w, h)) / 2 / viewRadius,
	}
}

func (v view) point(x, y float64) (float32, float32) {
	return float32(v.cx + x*v.scale), float32(v.cy + y*v.scale)
}

func (v view) length(l float64) float32 {
	return float32(l * v.scale)
}

// drawSnapshot paints one frame. Debris goes last so dust covers the rest.
func drawSnapshot(dst *ebiten.Image, s meteors.Snapshot, best BestRun) {
	dst.Fill(colorSpace)
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	v := newView(w, h, s.ViewRadius)

	if s.Mode == meteors.ModeTitle {
		drawTitle(dst, s, best, w, h)
		return
	}

	drawPlanet(dst, v, s)

	for _, o := range s.Objects {
		if !o.Active {
			continue
		}
		x, y := v.point(o.X, o.Y)
		r := v.length(o.Size / 2)
		if o.Kind == meteors.KindStar || o.Kind == meteors.KindBomb {
			vector.DrawFilledRect(dst, x-r, y-r, 2*r, 2*r, kindColor(o.Kind), false)
			continue
		}
		vector.DrawFilledCircle(dst, x, y, r, kindColor(o.Kind), true)
	}

	if s.PlayerVisible {
		x, y := v.point(s.PlayerX, s.PlayerY)
		pw, ph := v.length(s.PlayerW), v.length(s.PlayerH)
		vector.DrawFilledRect(dst, x-pw/2, y-ph/2, pw, ph, colorPlayer, false)
	}

	for _, o := range s.Objects {
		if o.Active {
			continue
		}
		c := kindColor(o.Kind)
		c.A = uint8(math.Round(math.Max(0, math.Min(1, o.Alpha)) * 0xff))
		x, y := v.point(o.X, o.Y)
		vector.DrawFilledCircle(dst, x, y, v.length(o.Size*(1+o.Scale)), c, true)
	}

	drawHUD(dst, s, w)
	switch {
	case s.Mode == meteors.ModeLevel:
		ebitenutil.DebugPrintAt(dst, fmt.Sprintf("LEVEL %d", s.Level), w/2-24, h/2-8)
	case s.Paused:
		ebitenutil.DebugPrintAt(dst, "PAUSED", w/2-18, h/2-8)
	}
}

func drawPlanet(dst *ebiten.Image, v view, s meteors.Snapshot) {
	cx, cy := v.point(0, 0)
	vector.StrokeCircle(dst, cx, cy, v.length(s.ViewRadius*0.95), 1, colorOrbit, true)
	vector.DrawFilledCircle(dst, cx, cy, v.length(s.PlanetRadius), colorPlanet, true)

	// Craters turn with the planet.
	for i := range 3 {
		a := s.PlanetAngle + float64(i)*2*math.Pi/3
		d := s.PlanetRadius * 0.55
		x, y := v.point(math.Cos(a)*d, math.Sin(a)*d)
		vector.DrawFilledCircle(dst, x, y, v.length(s.PlanetRadius*0.15), colorCrater, true)
	}
}

func drawHUD(dst *ebiten.Image, s meteors.Snapshot, w int) {
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("Score: %d  Level: %d", s.Score, s.Level), 8, 8)
	ebitenutil.DebugPrintAt(dst,
		fmt.Sprintf("Stars: %d/%d  Bombs: %d", s.StarPower, s.MaxStarPower, s.Bombs), w-180, 8)

	if !s.Debug {
		return
	}
	for i, st := range s.Stats {
		line := fmt.Sprintf("%-8s waves %d objects %d every %v random %v",
			st.Family, st.Waves, st.Objects, st.Interval, st.Random)
		ebitenutil.DebugPrintAt(dst, line, 8, 28+i*16)
	}
}

func drawTitle(dst *ebiten.Image, s meteors.Snapshot, best BestRun, w, h int) {
	title := "M E T E O R S"
	if s.GameOver {
		title = "GAME OVER"
	}
	ebitenutil.DebugPrintAt(dst, title, w/2-len(title)*3, h/2-40)
	if s.GameOver {
		ebitenutil.DebugPrintAt(dst, fmt.Sprintf("Score: %d", s.LastScore), w/2-40, h/2-16)
	}
	if best.Runs > 0 {
		ebitenutil.DebugPrintAt(dst, fmt.Sprintf("Best: %d (level %d)", best.Score, best.Level), w/2-60, h/2+4)
	}
	ebitenutil.DebugPrintAt(dst, "press any key", w/2-39, h/2+30)
}
