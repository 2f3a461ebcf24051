package meteors

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/meteors/internal/config"
)

// Family identifies which object kinds a spawn manager produces.
type Family int

const (
	FamilyMeteors Family = iota
	FamilyStars
	FamilyPowerups
)

// String returns the family name used in logs and the debug HUD.
func (f Family) String() string {
	switch f {
	case FamilyMeteors:
		return "meteors"
	case FamilyStars:
		return "stars"
	case FamilyPowerups:
		return "powerups"
	}
	return "unknown"
}

// SpawnManager owns the objects of one family. It merges random spawning
// with scripted waves and removes expired objects.
type SpawnManager struct {
	family Family
	cfg    config.SpawnConfig
	rng    *rand.Rand
	loader *Loader
	logger *log.Logger
	oort   float64

	objects []*FallingObject
	waves   []*Wave
	due     []ScriptedSpawn // fired by the waves, spawned in the next phase

	randomOn     bool
	interval     time.Duration
	sinceSpawn   time.Duration
	curvePercent float64
}

// NewSpawnManager creates a manager for family. Objects appear at the
// oort radius.
func NewSpawnManager(family Family, cfg config.SpawnConfig, oort float64, rng *rand.Rand, loader *Loader, logger *log.Logger) *SpawnManager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &SpawnManager{
		family: family,
		cfg:    cfg,
		rng:    rng,
		loader: loader,
		logger: logger,
		oort:   oort,
	}
	m.randomOn = cfg.RandomEnabled
	m.interval = config.Ms(cfg.IntervalMS)
	m.curvePercent = cfg.CurvePercent
	return m
}

// Family returns the family this manager spawns.
func (m *SpawnManager) Family() Family {
	return m.family
}

// Update runs one full tick for this manager alone: advance waves, spawn,
// update objects, prune.
func (m *SpawnManager) Update(dt time.Duration, s *Scene) {
	m.AdvanceWaves(dt)
	m.Spawn(dt)
	m.UpdateObjects(dt, s)
	m.Prune()
}

// AdvanceWaves advances every in-flight wave, queues the spawns that came
// due and applies the latest random control. Completed waves are evicted.
//
// Wave clocks differ, so controls from different waves are compared by how
// long ago they came due. The least overdue one wins; on a tie the wave
// added last wins.
func (m *SpawnManager) AdvanceWaves(dt time.Duration) {
	var (
		latest  *RandomControl
		overdue time.Duration
	)
	kept := m.waves[:0]
	for _, w := range m.waves {
		spawns, ctrl := w.Advance(dt)
		m.due = append(m.due, spawns...)
		if ctrl != nil {
			if late := w.Clock() - ctrl.At; latest == nil || late <= overdue {
				latest, overdue = ctrl, late
			}
		}
		if w.IsComplete() {
			m.logger.Debug("wave complete", "family", m.family, "wave", w.Name)
			continue
		}
		kept = append(kept, w)
	}
	clear(m.waves[len(kept):])
	m.waves = kept
	if latest != nil {
		m.applyControl(*latest)
	}
}

func (m *SpawnManager) applyControl(c RandomControl) {
	m.randomOn = c.Enabled
	if c.Enabled {
		m.interval = c.Interval
	}
	if c.CurvePercent != nil {
		m.curvePercent = *c.CurvePercent
	}
}

// Spawn creates the queued scripted objects, which ignore the population
// cap, then runs the random spawn timer.
func (m *SpawnManager) Spawn(dt time.Duration) {
	for _, sp := range m.due {
		speed := sp.Speed
		if speed <= 0 {
			speed = m.cfg.ScriptSpeed
		}
		m.objects = append(m.objects, NewFallingObject(m.scriptedKind(), sp.Angle, m.oort, speed, m.cfg.Size))
	}
	clear(m.due)
	m.due = m.due[:0]

	if !m.randomOn || m.RandomCount() >= m.cfg.Cap {
		return
	}
	m.sinceSpawn += dt
	if m.sinceSpawn >= m.interval {
		m.objects = append(m.objects, m.randomObject())
		m.sinceSpawn = 0
	}
}

func (m *SpawnManager) scriptedKind() Kind {
	switch m.family {
	case FamilyStars:
		return KindStar
	case FamilyPowerups:
		return KindBomb
	}
	return KindMeteor
}

// randomObject creates a randomly placed object, choosing the meteor
// variant by the configured percentages.
func (m *SpawnManager) randomObject() *FallingObject {
	angle := m.rng.Float64() * 2 * math.Pi
	kind := m.scriptedKind()

	if m.family == FamilyMeteors {
		roll := m.rng.Float64() * 100
		switch {
		case roll < m.curvePercent:
			kind = KindCurveMeteor
		case roll < m.curvePercent+m.cfg.OscillatePercent:
			kind = KindOscillatingMeteor
		}
	}

	o := NewFallingObject(kind, angle, m.oort, m.cfg.FallSpeed, m.cfg.Size)
	o.Random = true
	switch kind {
	case KindCurveMeteor:
		o.SetCurvature((m.rng.Float64()*2 - 1) * m.cfg.CurveMax)
	case KindOscillatingMeteor:
		o.SetOscillation(m.cfg.OscillateAmplitude, config.Ms(m.cfg.OscillatePeriodMS))
	}
	return o
}

// UpdateObjects moves and collides every object.
func (m *SpawnManager) UpdateObjects(dt time.Duration, s *Scene) {
	for _, o := range m.objects {
		o.Update(dt, s)
	}
}

// Prune removes objects marked for deletion. For stars and powerups a
// removal restarts the random spawn timer.
func (m *SpawnManager) Prune() {
	kept := m.objects[:0]
	removed := 0
	for _, o := range m.objects {
		if o.MarkedForDeletion {
			removed++
			continue
		}
		kept = append(kept, o)
	}
	clear(m.objects[len(kept):])
	m.objects = kept

	if removed > 0 && m.family != FamilyMeteors {
		m.sinceSpawn = 0
	}
}

// OffsetAngles rotates every object and every pending scripted spawn.
func (m *SpawnManager) OffsetAngles(delta float64) {
	for _, o := range m.objects {
		o.Angle += delta
	}
	for _, w := range m.waves {
		w.OffsetAngles(delta)
	}
	for i := range m.due {
		m.due[i].Angle += delta
	}
}

// AddWave puts a parsed wave in flight.
func (m *SpawnManager) AddWave(w *Wave) {
	m.waves = append(m.waves, w)
}

// LoadWave loads a wave script and puts it in flight. On error nothing is added.
func (m *SpawnManager) LoadWave(name string, offset time.Duration) error {
	w, err := m.loader.LoadWave(name, offset)
	if err != nil {
		m.logger.Error("wave load failed", "family", m.family, "wave", name, "err", err)
		return err
	}
	spawns, controls := w.Pending()
	m.logger.Info("wave loaded", "family", m.family, "wave", w.Name, "offset", offset, "spawns", spawns, "controls", controls)
	m.AddWave(w)
	return nil
}

// LoadLevel loads a level script and puts all its waves in flight.
// On error nothing is added.
func (m *SpawnManager) LoadLevel(name string) error {
	waves, err := m.loader.LoadLevel(name)
	if err != nil {
		m.logger.Error("level load failed", "family", m.family, "level", name, "err", err)
		return err
	}
	m.logger.Info("level loaded", "family", m.family, "level", name, "waves", len(waves))
	for _, w := range waves {
		m.AddWave(w)
	}
	return nil
}

// Clear removes every object. In-flight waves are kept.
func (m *SpawnManager) Clear() {
	clear(m.objects)
	m.objects = m.objects[:0]
	clear(m.due)
	m.due = m.due[:0]
	m.sinceSpawn = 0
}

// BombExplosion turns every active meteor inside the view into debris and
// returns how many were hit.
func (m *SpawnManager) BombExplosion(s *Scene, viewRadius float64) int {
	if m.family != FamilyMeteors {
		return 0
	}
	hit := 0
	for _, o := range m.objects {
		if o.Active && o.Kind.IsMeteor() && o.onScreen(s.Planet, viewRadius) {
			o.Impact(s.Debris)
			hit++
		}
	}
	return hit
}

// Objects returns the live population, including debris.
func (m *SpawnManager) Objects() []*FallingObject {
	return m.objects
}

// RandomCount returns the number of active randomly spawned objects.
func (m *SpawnManager) RandomCount() int {
	n := 0
	for _, o := range m.objects {
		if o.Random && o.Active && !o.MarkedForDeletion {
			n++
		}
	}
	return n
}

// WaveCount returns the number of waves in flight.
func (m *SpawnManager) WaveCount() int {
	return len(m.waves)
}

// Interval returns the current random spawn interval.
func (m *SpawnManager) Interval() time.Duration {
	return m.interval
}

// SetInterval replaces the random spawn interval.
func (m *SpawnManager) SetInterval(d time.Duration) {
	m.interval = d
}

// RandomEnabled reports whether random spawning is on.
func (m *SpawnManager) RandomEnabled() bool {
	return m.randomOn
}

// SetRandomEnabled turns random spawning on or off.
func (m *SpawnManager) SetRandomEnabled(on bool) {
	m.randomOn = on
}

// CurvePercent returns the share of random meteors that curve.
func (m *SpawnManager) CurvePercent() float64 {
	return m.curvePercent
}
