package meteors

import (
	"math"
	"time"

	"github.com/vovakirdan/meteors/internal/config"
	"github.com/vovakirdan/meteors/internal/core"
)

// hitboxWidth shrinks an object's box so contacts need a visible overlap.
const hitboxWidth = 0.8

// Scene is what a falling object collides with during an update.
type Scene struct {
	Planet *Planet
	Player *Player
	Debris config.DebrisConfig
}

// FallingObject is a meteor, star or powerup orbiting the planet.
// Its position is always derived from the planet center, orbit radius and
// angle; it is never stored.
type FallingObject struct {
	Kind              Kind
	Angle             float64 // radians around the planet center
	OrbitRadius       float64
	FallSpeed         float64 // orbit radius lost per tick
	Size              float64
	Active            bool // false once impacted; the object is then debris
	MarkedForDeletion bool
	Random            bool // spawned by the random timer rather than a wave

	Alpha float64 // debris opacity
	Scale float64 // debris growth

	curvature float64 // radians added per tick (curve meteors)

	oscAmplitude float64
	oscPeriod    time.Duration
	oscElapsed   time.Duration
	oscOffset    float64
}

// NewFallingObject creates an active object on the given orbit.
func NewFallingObject(k Kind, angle, radius, speed, size float64) *FallingObject {
	return &FallingObject{
		Kind:        k,
		Angle:       angle,
		OrbitRadius: radius,
		FallSpeed:   speed,
		Size:        size,
		Active:      true,
		Alpha:       1,
		Scale:       1,
	}
}

// SetCurvature makes the object drift by c radians every tick.
func (o *FallingObject) SetCurvature(c float64) {
	o.curvature = c
}

// SetOscillation makes the object swing around its angle by a triangle
// wave of the given amplitude and period.
func (o *FallingObject) SetOscillation(amplitude float64, period time.Duration) {
	o.oscAmplitude = amplitude
	o.oscPeriod = period
}

// Position returns the object's center in world space.
func (o *FallingObject) Position(planet *Planet) core.Vec2 {
	return core.PointOnCircle(planet.Orbit(o.OrbitRadius), o.Angle)
}

// Bounds returns the sprite box of the object.
func (o *FallingObject) Bounds(planet *Planet) core.Box {
	return core.BoxAt(o.Position(planet), o.Size, o.Size)
}

// HitBox returns the box tested against the player.
func (o *FallingObject) HitBox(planet *Planet) core.Box {
	return o.Bounds(planet).Scale(hitboxWidth, 1)
}

// ImpactCircle returns the circle tested against the planet surface.
func (o *FallingObject) ImpactCircle(planet *Planet) core.Circle {
	return core.Circle{Center: o.Position(planet), Radius: o.Size / 3}
}

// Impact turns the object into fading debris.
func (o *FallingObject) Impact(debris config.DebrisConfig) {
	if !o.Active {
		return
	}
	o.Active = false
	o.Alpha = debris.Alpha
	o.Scale = debris.Scale
}

// Update advances the object by one tick: falling and colliding while
// active, fading once impacted.
func (o *FallingObject) Update(dt time.Duration, s *Scene) {
	if o.MarkedForDeletion {
		return
	}
	if !o.Active {
		o.Alpha -= s.Debris.AlphaStep
		o.Scale += s.Debris.ScaleStep
		if o.Alpha <= 0 {
			o.Alpha = 0
			o.MarkedForDeletion = true
		}
		return
	}

	o.steer(dt)
	o.OrbitRadius -= o.FallSpeed
	o.collide(s)
}

// steer applies the variant's angle perturbation.
func (o *FallingObject) steer(dt time.Duration) {
	switch o.Kind {
	case KindCurveMeteor:
		o.Angle += o.curvature
	case KindOscillatingMeteor:
		if o.oscPeriod <= 0 {
			return
		}
		o.oscElapsed = (o.oscElapsed + dt) % o.oscPeriod
		phase := float64(o.oscElapsed) / float64(o.oscPeriod)
		next := o.oscAmplitude * triangle(phase)
		o.Angle += next - o.oscOffset
		o.oscOffset = next
	}
}

func (o *FallingObject) collide(s *Scene) {
	if CheckPlanetImpact(o, s.Planet) {
		o.Impact(s.Debris)
		return
	}
	if s.Player != nil && CheckPlayerContact(o, s.Player, s.Planet) {
		if s.Player.Touch(o.Kind) {
			o.MarkedForDeletion = true
		}
	}
}

// triangle maps a phase in [0, 1) to a wave starting at 0, peaking at 1
// a quarter in and bottoming at -1 three quarters in.
func triangle(phase float64) float64 {
	switch {
	case phase < 0.25:
		return 4 * phase
	case phase < 0.75:
		return 2 - 4*phase
	default:
		return 4*phase - 4
	}
}

// CheckPlanetImpact reports whether an active object reached the surface.
func CheckPlanetImpact(o *FallingObject, planet *Planet) bool {
	return o.Active && core.CirclesOverlap(planet.Bounds(), o.ImpactCircle(planet))
}

// CheckPlayerContact reports whether an active object touches the player.
func CheckPlayerContact(o *FallingObject, p *Player, planet *Planet) bool {
	return o.Active && o.HitBox(planet).Intersects(p.Bounds(planet))
}

// onScreen reports whether the object is inside the square view around the planet.
func (o *FallingObject) onScreen(planet *Planet, viewRadius float64) bool {
	pos := o.Position(planet)
	return math.Abs(pos.X-planet.Center.X) <= viewRadius && math.Abs(pos.Y-planet.Center.Y) <= viewRadius
}
