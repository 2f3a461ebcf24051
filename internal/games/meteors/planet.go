package meteors

import (
	"github.com/vovakirdan/meteors/internal/config"
	"github.com/vovakirdan/meteors/internal/core"
)

// Planet is the body everything falls towards. Its radius is fixed for the
// session; only its rotation angle changes, driven by player input.
type Planet struct {
	Center     core.Vec2
	Radius     float64
	OortRadius float64 // orbit radius at which new objects appear
	Angle      float64
}

// NewPlanet creates a planet centered on c.
func NewPlanet(c core.Vec2, cfg config.WorldConfig) *Planet {
	return &Planet{
		Center:     c,
		Radius:     cfg.PlanetRadius,
		OortRadius: cfg.OortRadius,
	}
}

// Bounds returns the collision circle of the planet surface.
func (p *Planet) Bounds() core.Circle {
	return core.Circle{Center: p.Center, Radius: p.Radius}
}

// Orbit returns the circle of the given radius around the planet center.
func (p *Planet) Orbit(radius float64) core.Circle {
	return core.Circle{Center: p.Center, Radius: radius}
}

// Rotate turns the planet by delta radians.
func (p *Planet) Rotate(delta float64) {
	p.Angle = core.NormalizeAngle(p.Angle + delta)
}
