package meteors

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/meteors/internal/config"
	"github.com/vovakirdan/meteors/internal/core"
)

const tick = time.Second / 60

func newTestScene() *Scene {
	cfg := config.DefaultMeteorsConfig()
	return &Scene{
		Planet: NewPlanet(core.V(0, 0), cfg.World),
		Player: NewPlayer(cfg.Player),
		Debris: cfg.Debris,
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestObjectPositionDerivedFromOrbit(t *testing.T) {
	s := newTestScene()
	o := NewFallingObject(KindMeteor, 0.3, 500, 2, 20)

	for i := 0; i < 10; i++ {
		o.Update(tick, s)
		want := core.PointOnCircle(core.Circle{Center: s.Planet.Center, Radius: o.OrbitRadius}, o.Angle)
		got := o.Position(s.Planet)
		if !near(got.X, want.X) || !near(got.Y, want.Y) {
			t.Fatalf("tick %d: Position() = %v, expected %v", i, got, want)
		}
	}
	if !near(o.OrbitRadius, 480) {
		t.Errorf("OrbitRadius = %v after 10 ticks, expected 480", o.OrbitRadius)
	}
}

func TestObjectPlanetImpactAndFade(t *testing.T) {
	s := newTestScene()
	// Angle 0 is the right side of the planet, away from the player.
	start := s.Planet.Radius + 20.0/3 + 1
	o := NewFallingObject(KindMeteor, 0, start, 2, 20)

	o.Update(tick, s)
	if o.Active {
		t.Fatal("meteor should impact the planet")
	}
	if o.Alpha != s.Debris.Alpha || o.Scale != s.Debris.Scale {
		t.Errorf("debris alpha/scale = %v/%v, expected %v/%v", o.Alpha, o.Scale, s.Debris.Alpha, s.Debris.Scale)
	}

	radius := o.OrbitRadius
	for i := 0; i < 79; i++ {
		o.Update(tick, s)
	}
	if o.MarkedForDeletion {
		t.Fatal("debris should still be fading after 79 ticks")
	}
	if o.OrbitRadius != radius {
		t.Error("debris should not keep falling")
	}
	if o.Scale <= s.Debris.Scale {
		t.Error("debris should grow while fading")
	}

	o.Update(tick, s)
	o.Update(tick, s)
	if !o.MarkedForDeletion {
		t.Error("debris should be marked for deletion once faded")
	}
}

func TestObjectTouchesPlayer(t *testing.T) {
	tests := []struct {
		name      string
		kind      Kind
		starPower int
		check     func(t *testing.T, p *Player, o *FallingObject)
	}{
		{"meteor costs star power", KindMeteor, 2, func(t *testing.T, p *Player, o *FallingObject) {
			if p.StarPower != 1 || !p.Blinking() || !o.MarkedForDeletion {
				t.Errorf("StarPower=%d Blinking=%v Marked=%v", p.StarPower, p.Blinking(), o.MarkedForDeletion)
			}
		}},
		{"meteor at zero star power kills", KindCurveMeteor, 0, func(t *testing.T, p *Player, o *FallingObject) {
			if !p.Dead() {
				t.Error("player should be dead")
			}
		}},
		{"star scores", KindStar, 0, func(t *testing.T, p *Player, o *FallingObject) {
			if p.StarPower != 1 || p.Score != 100 || !o.MarkedForDeletion {
				t.Errorf("StarPower=%d Score=%d Marked=%v", p.StarPower, p.Score, o.MarkedForDeletion)
			}
		}},
		{"bomb adds a charge", KindBomb, 0, func(t *testing.T, p *Player, o *FallingObject) {
			if p.Bombs != 2 || !o.MarkedForDeletion {
				t.Errorf("Bombs=%d Marked=%v", p.Bombs, o.MarkedForDeletion)
			}
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestScene()
			s.Player.StarPower = tc.starPower
			o := NewFallingObject(tc.kind, PlayerAngle, 150, 0, 20)

			o.Update(tick, s)
			if !o.Active {
				t.Fatal("object above the player must not impact the planet")
			}
			tc.check(t, s.Player, o)
		})
	}
}

func TestBlinkingPlayerIgnoresMeteors(t *testing.T) {
	s := newTestScene()
	s.Player.StarPower = 2
	first := NewFallingObject(KindMeteor, PlayerAngle, 150, 0, 20)
	first.Update(tick, s)

	second := NewFallingObject(KindMeteor, PlayerAngle, 150, 0, 20)
	second.Update(tick, s)
	if second.MarkedForDeletion || s.Player.StarPower != 1 {
		t.Errorf("meteor during blink: Marked=%v StarPower=%d", second.MarkedForDeletion, s.Player.StarPower)
	}

	// The blink window toggles visibility and then ends.
	sawVisible := false
	for elapsed := time.Duration(0); elapsed < 1100*time.Millisecond; elapsed += 10 * time.Millisecond {
		s.Player.Update(10 * time.Millisecond)
		if s.Player.Blinking() && s.Player.Visible {
			sawVisible = true
		}
	}
	if !sawVisible {
		t.Error("visibility should alternate during the blink window")
	}
	if s.Player.Blinking() || !s.Player.Visible {
		t.Error("blink window should end visible")
	}
}

func TestBombChargesAreCapped(t *testing.T) {
	p := NewPlayer(config.DefaultMeteorsConfig().Player)
	for i := 0; i < 10; i++ {
		p.Touch(KindBomb)
	}
	if p.Bombs != 3 {
		t.Errorf("Bombs = %d, expected cap 3", p.Bombs)
	}
	for i := 0; i < 3; i++ {
		if !p.UseBomb() {
			t.Fatalf("UseBomb() #%d failed", i+1)
		}
	}
	if p.UseBomb() {
		t.Error("UseBomb() should fail with no charges")
	}
}

func TestCurveMeteorDrifts(t *testing.T) {
	s := newTestScene()
	o := NewFallingObject(KindCurveMeteor, 1, 600, 0, 20)
	o.SetCurvature(0.004)
	for i := 0; i < 10; i++ {
		o.Update(tick, s)
	}
	if !near(o.Angle, 1.04) {
		t.Errorf("Angle = %v, expected 1.04", o.Angle)
	}
}

func TestOscillatingMeteorReturnsAfterPeriod(t *testing.T) {
	s := newTestScene()
	o := NewFallingObject(KindOscillatingMeteor, 1, 600, 0, 20)
	o.SetOscillation(0.3, 2*time.Second)

	maxDev := 0.0
	for i := 0; i < 100; i++ {
		o.Update(20*time.Millisecond, s)
		maxDev = math.Max(maxDev, math.Abs(o.Angle-1))
	}
	if !near(o.Angle, 1) {
		t.Errorf("Angle = %v after a full period, expected 1", o.Angle)
	}
	if !near(maxDev, 0.3) {
		t.Errorf("max deviation = %v, expected amplitude 0.3", maxDev)
	}
}
