package meteors

import (
	"math"
	"time"

	"github.com/vovakirdan/meteors/internal/config"
	"github.com/vovakirdan/meteors/internal/core"
)

// PlayerAngle is where the player stands: the top of the planet.
// The world rotates around the player instead of the player walking.
const PlayerAngle = -math.Pi / 2

// blinkToggle is how often visibility flips while blinking after a hit.
const blinkToggle = 100 * time.Millisecond

// Player is the character standing on the planet surface.
type Player struct {
	Angle     float64
	Width     float64
	Height    float64
	StarPower int
	Bombs     int
	Score     int
	Visible   bool

	cfg       config.PlayerConfig
	blinkLeft time.Duration
	blinkTime time.Duration
	dead      bool
}

// NewPlayer creates a player with counters at their starting values.
func NewPlayer(cfg config.PlayerConfig) *Player {
	p := &Player{cfg: cfg}
	p.Reset()
	return p
}

// Reset restores the player to the start of a run.
func (p *Player) Reset() {
	p.Angle = PlayerAngle
	p.Width = p.cfg.Width
	p.Height = p.cfg.Height
	p.StarPower = 0
	p.Bombs = core.Clamp(p.cfg.StartBombs, 0, p.cfg.MaxBombs)
	p.Score = 0
	p.Visible = true
	p.blinkLeft = 0
	p.blinkTime = 0
	p.dead = false
}

// Position returns the player's center: on the planet surface plus half
// the player's height.
func (p *Player) Position(planet *Planet) core.Vec2 {
	return core.PointOnCircle(planet.Orbit(planet.Radius+p.Height/2), p.Angle)
}

// Bounds returns the player's collision box.
func (p *Player) Bounds(planet *Planet) core.Box {
	return core.BoxAt(p.Position(planet), p.Width, p.Height)
}

// Update advances the blink-on-hit window.
func (p *Player) Update(dt time.Duration) {
	if p.blinkLeft <= 0 {
		p.Visible = true
		return
	}
	p.blinkLeft -= dt
	p.blinkTime += dt
	if p.blinkLeft <= 0 {
		p.blinkLeft = 0
		p.Visible = true
		return
	}
	p.Visible = (p.blinkTime/blinkToggle)%2 == 1
}

// Blinking reports whether the player is inside the post-hit window.
func (p *Player) Blinking() bool {
	return p.blinkLeft > 0
}

// Touch applies the effect of touching an object of kind k and reports
// whether the object was consumed. Meteors pass through while blinking.
func (p *Player) Touch(k Kind) bool {
	switch {
	case k.IsMeteor():
		if p.Blinking() || p.dead {
			return false
		}
		if p.StarPower == 0 {
			p.dead = true
			return true
		}
		p.StarPower--
		p.blinkLeft = config.Ms(p.cfg.BlinkMS)
		p.blinkTime = 0
		p.Visible = false
	case k == KindStar:
		p.Score += p.cfg.StarPoints
		p.StarPower++
	case k == KindBomb:
		p.Bombs = min(p.Bombs+1, p.cfg.MaxBombs)
	}
	return true
}

// UseBomb consumes one bomb charge if any is left.
func (p *Player) UseBomb() bool {
	if p.Bombs <= 0 {
		return false
	}
	p.Bombs--
	return true
}

// Dead reports whether a meteor hit the player with no star power left.
func (p *Player) Dead() bool {
	return p.dead
}

// LevelComplete reports whether star power reached the level threshold.
func (p *Player) LevelComplete() bool {
	return p.StarPower >= p.cfg.MaxStarPower
}

// MaxStarPower returns the level threshold.
func (p *Player) MaxStarPower() int {
	return p.cfg.MaxStarPower
}
