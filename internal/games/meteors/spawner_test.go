package meteors

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/meteors/internal/config"
)

func newTestManager(family Family, mutate func(*config.SpawnConfig)) *SpawnManager {
	cfg := config.DefaultMeteorsConfig()
	sc := cfg.Meteors
	switch family {
	case FamilyStars:
		sc = cfg.Stars
	case FamilyPowerups:
		sc = cfg.Powerups
	}
	if mutate != nil {
		mutate(&sc)
	}
	return NewSpawnManager(family, sc, cfg.World.OortRadius, rand.New(rand.NewSource(7)), NewLoader(testScripts()), nil)
}

func run(m *SpawnManager, s *Scene, total, step time.Duration) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += step {
		m.Update(step, s)
	}
}

func TestWaveScenario(t *testing.T) {
	m := newTestManager(FamilyMeteors, func(c *config.SpawnConfig) { c.RandomEnabled = false })
	s := newTestScene()

	w, err := ParseWave(strings.NewReader("1000 0 2.0\n2000 random 500\n"), "scenario", 0)
	if err != nil {
		t.Fatal(err)
	}
	m.AddWave(w)

	run(m, s, 999*time.Millisecond, time.Millisecond)
	if n := len(m.Objects()); n != 0 {
		t.Fatalf("at 999ms there are %d objects, expected 0", n)
	}

	m.Update(time.Millisecond, s)
	objs := m.Objects()
	if len(objs) != 1 {
		t.Fatalf("at 1000ms there are %d objects, expected 1", len(objs))
	}
	if objs[0].Angle != 0 || objs[0].FallSpeed != 2.0 || objs[0].Random {
		t.Errorf("spawned %+v, expected scripted meteor at angle 0 speed 2.0", objs[0])
	}
	if w.IsComplete() {
		t.Error("wave must not be complete while a random control is pending")
	}

	run(m, s, 999*time.Millisecond, time.Millisecond)
	if m.RandomEnabled() {
		t.Error("random spawning should still be off at 1999ms")
	}

	m.Update(time.Millisecond, s)
	if !m.RandomEnabled() || m.Interval() != 500*time.Millisecond {
		t.Errorf("at 2000ms random = %v interval = %v, expected on / 500ms", m.RandomEnabled(), m.Interval())
	}
	if !w.IsComplete() || m.WaveCount() != 0 {
		t.Error("wave should be complete and evicted at 2000ms")
	}
}

func TestRandomControlLastWins(t *testing.T) {
	m := newTestManager(FamilyMeteors, nil)
	pct := 90.0
	m.AddWave(NewWave("w", nil, []RandomControl{
		{At: 200 * time.Millisecond, Enabled: true, Interval: 700 * time.Millisecond, CurvePercent: &pct},
		{At: 100 * time.Millisecond, Enabled: false},
	}))

	m.AdvanceWaves(250 * time.Millisecond)
	if !m.RandomEnabled() || m.Interval() != 700*time.Millisecond || m.CurvePercent() != 90 {
		t.Errorf("random = %v interval = %v curve = %v; expected the 200ms control",
			m.RandomEnabled(), m.Interval(), m.CurvePercent())
	}
}

func TestRandomControlLastWinsAcrossWaves(t *testing.T) {
	tests := []struct {
		name     string
		first    time.Duration
		second   time.Duration
		expected time.Duration
	}{
		{"later control in the first wave", 20 * time.Millisecond, 10 * time.Millisecond, 999 * time.Millisecond},
		{"later control in the second wave", 10 * time.Millisecond, 20 * time.Millisecond, 111 * time.Millisecond},
		{"same time goes to the wave added last", 10 * time.Millisecond, 10 * time.Millisecond, 111 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestManager(FamilyMeteors, nil)
			m.AddWave(NewWave("a", nil, []RandomControl{{At: tc.first, Enabled: true, Interval: 999 * time.Millisecond}}))
			m.AddWave(NewWave("b", nil, []RandomControl{{At: tc.second, Enabled: true, Interval: 111 * time.Millisecond}}))

			m.AdvanceWaves(30 * time.Millisecond)
			if got := m.Interval(); got != tc.expected {
				t.Errorf("Interval() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRandomControlLastWinsAcrossWaveClocks(t *testing.T) {
	m := newTestManager(FamilyMeteors, nil)
	m.AddWave(NewWave("old", nil, []RandomControl{{At: 60 * time.Millisecond, Enabled: true, Interval: 999 * time.Millisecond}}))
	m.AdvanceWaves(40 * time.Millisecond)

	// Twenty milliseconds into "new", its control is 5ms overdue while the
	// one in "old" is 0ms overdue.
	m.AddWave(NewWave("new", nil, []RandomControl{{At: 15 * time.Millisecond, Enabled: true, Interval: 111 * time.Millisecond}}))
	m.AdvanceWaves(20 * time.Millisecond)
	if got := m.Interval(); got != 999*time.Millisecond {
		t.Errorf("Interval() = %v, expected the control that came due last", got)
	}
}

func TestWaveCompleteOnlyWhenAllEventsFired(t *testing.T) {
	w := NewWave("w",
		[]ScriptedSpawn{{At: 100 * time.Millisecond}},
		[]RandomControl{{At: 500 * time.Millisecond}})

	spawns, ctrl := w.Advance(100 * time.Millisecond)
	if len(spawns) != 1 || ctrl != nil {
		t.Fatalf("Advance(100ms) = %v, %v", spawns, ctrl)
	}
	if w.IsComplete() {
		t.Error("a pending random control keeps the wave incomplete")
	}

	spawns, ctrl = w.Advance(400 * time.Millisecond)
	if len(spawns) != 0 || ctrl == nil || !w.IsComplete() {
		t.Errorf("Advance(400ms) = %v, %v, complete=%v", spawns, ctrl, w.IsComplete())
	}
}

func TestSeveralSpawnsFireInOneTick(t *testing.T) {
	w := NewWave("w", []ScriptedSpawn{
		{At: 30 * time.Millisecond, Angle: 3},
		{At: 10 * time.Millisecond, Angle: 1},
		{At: 20 * time.Millisecond, Angle: 2},
		{At: 90 * time.Millisecond, Angle: 9},
	}, nil)

	spawns, _ := w.Advance(50 * time.Millisecond)
	if len(spawns) != 3 {
		t.Fatalf("fired %d spawns, expected 3", len(spawns))
	}
	for i, sp := range spawns {
		if sp.Angle != float64(i+1) {
			t.Errorf("spawn %d angle = %v, expected time order", i, sp.Angle)
		}
	}
}

func TestOffsetAnglesRoundTrip(t *testing.T) {
	m := newTestManager(FamilyMeteors, func(c *config.SpawnConfig) { c.IntervalMS = 10; c.MinIntervalMS = 10 })
	s := newTestScene()
	m.AddWave(NewWave("w", []ScriptedSpawn{{At: time.Minute, Angle: 0.5}}, nil))
	run(m, s, 100*time.Millisecond, 10*time.Millisecond)

	before := make([]float64, 0, len(m.Objects()))
	for _, o := range m.Objects() {
		before = append(before, o.Angle)
	}
	if len(before) == 0 {
		t.Fatal("expected some random objects")
	}

	const delta = 0.731
	m.OffsetAngles(delta)
	if !near(m.waves[0].spawns[0].Angle, 0.5+delta) {
		t.Error("pending scripted spawns should be offset too")
	}
	m.OffsetAngles(-delta)

	for i, o := range m.Objects() {
		if !near(o.Angle, before[i]) {
			t.Errorf("object %d angle = %v, expected %v", i, o.Angle, before[i])
		}
	}
	if !near(m.waves[0].spawns[0].Angle, 0.5) {
		t.Errorf("pending spawn angle = %v, expected 0.5", m.waves[0].spawns[0].Angle)
	}
}

func TestPopulationCap(t *testing.T) {
	m := newTestManager(FamilyMeteors, func(c *config.SpawnConfig) {
		c.Cap = 3
		c.IntervalMS = 10
		c.MinIntervalMS = 10
	})
	s := newTestScene()

	for i := 0; i < 600; i++ {
		m.Update(10*time.Millisecond, s)
		if n := m.RandomCount(); n > 3 {
			t.Fatalf("tick %d: %d random objects, cap is 3", i, n)
		}
	}

	// Scripted spawns ignore the cap.
	spawns := make([]ScriptedSpawn, 10)
	m.AddWave(NewWave("burst", spawns, nil))
	m.Update(10*time.Millisecond, s)
	if n := len(m.Objects()); n < 10 {
		t.Errorf("%d objects after a 10-meteor burst, expected at least 10", n)
	}
}

func TestRemovalResetsTimerForStars(t *testing.T) {
	tests := []struct {
		family Family
		reset  bool
	}{
		{FamilyStars, true},
		{FamilyPowerups, true},
		{FamilyMeteors, false},
	}

	for _, tc := range tests {
		t.Run(tc.family.String(), func(t *testing.T) {
			m := newTestManager(tc.family, nil)
			o := NewFallingObject(m.scriptedKind(), 0, 600, 1, 20)
			o.MarkedForDeletion = true
			m.objects = append(m.objects, o)
			m.sinceSpawn = 50 * time.Millisecond

			m.Prune()
			if len(m.Objects()) != 0 {
				t.Fatal("marked object should be pruned")
			}
			if got := m.sinceSpawn == 0; got != tc.reset {
				t.Errorf("timer reset = %v, expected %v", got, tc.reset)
			}
		})
	}
}

func TestBombExplosionHitsOnScreenMeteors(t *testing.T) {
	m := newTestManager(FamilyMeteors, nil)
	s := newTestScene()
	onScreen := NewFallingObject(KindMeteor, 1, 300, 2, 20)
	offScreen := NewFallingObject(KindMeteor, 0, 600, 2, 20)
	m.objects = append(m.objects, onScreen, offScreen)

	if n := m.BombExplosion(s, 400); n != 1 {
		t.Errorf("BombExplosion() hit %d meteors, expected 1", n)
	}
	if onScreen.Active || !offScreen.Active {
		t.Errorf("active after bomb: on-screen=%v off-screen=%v", onScreen.Active, offScreen.Active)
	}
}

func TestLoadLevelIsAllOrNothing(t *testing.T) {
	m := newTestManager(FamilyMeteors, nil)
	if err := m.LoadLevel("levels/bad.txt"); err == nil {
		t.Fatal("expected an error")
	}
	if m.WaveCount() != 0 {
		t.Errorf("WaveCount() = %d after a failed level, expected 0", m.WaveCount())
	}
	if err := m.LoadLevel("levels/good.txt"); err != nil {
		t.Fatal(err)
	}
	if m.WaveCount() != 3 {
		t.Errorf("WaveCount() = %d, expected 3", m.WaveCount())
	}
}

func TestClearKeepsWaves(t *testing.T) {
	m := newTestManager(FamilyMeteors, nil)
	s := newTestScene()
	if err := m.LoadWave("waves/a.txt", 0); err != nil {
		t.Fatal(err)
	}
	m.Update(1500*time.Millisecond, s)
	if len(m.Objects()) == 0 {
		t.Fatal("expected the scripted meteor")
	}
	m.LoadWave("waves/b.txt", 0)

	m.Clear()
	if len(m.Objects()) != 0 || m.WaveCount() != 1 {
		t.Errorf("after Clear: %d objects, %d waves; expected 0, 1", len(m.Objects()), m.WaveCount())
	}
}
