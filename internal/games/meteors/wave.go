package meteors

import (
	"sort"
	"time"
)

// ScriptedSpawn is a wave event that spawns one object.
type ScriptedSpawn struct {
	At    time.Duration
	Angle float64 // radians
	Speed float64 // 0 means the manager's default
}

// RandomControl is a wave event that reconfigures random spawning.
type RandomControl struct {
	At           time.Duration
	Enabled      bool
	Interval     time.Duration // meaningful only when Enabled
	CurvePercent *float64      // nil leaves the current value
}

// Wave is a time-indexed script played against its own clock. The clock
// only runs while the wave is in flight on a spawn manager.
type Wave struct {
	Name string

	clock    time.Duration
	spawns   []ScriptedSpawn
	controls []RandomControl
}

// NewWave creates a wave from its events. Events are ordered by time;
// events sharing a time keep their script order.
func NewWave(name string, spawns []ScriptedSpawn, controls []RandomControl) *Wave {
	w := &Wave{
		Name:     name,
		spawns:   append([]ScriptedSpawn(nil), spawns...),
		controls: append([]RandomControl(nil), controls...),
	}
	sort.SliceStable(w.spawns, func(i, j int) bool { return w.spawns[i].At < w.spawns[j].At })
	sort.SliceStable(w.controls, func(i, j int) bool { return w.controls[i].At < w.controls[j].At })
	return w
}

// Advance moves the wave clock forward by dt and removes every event due
// by then. All due spawns are returned. Of the due random controls only the
// latest one is returned; earlier ones are stale.
func (w *Wave) Advance(dt time.Duration) ([]ScriptedSpawn, *RandomControl) {
	w.clock += dt

	n := 0
	for n < len(w.spawns) && w.spawns[n].At <= w.clock {
		n++
	}
	var fired []ScriptedSpawn
	if n > 0 {
		fired = append(fired, w.spawns[:n]...)
		w.spawns = w.spawns[n:]
	}

	m := 0
	for m < len(w.controls) && w.controls[m].At <= w.clock {
		m++
	}
	var ctrl *RandomControl
	if m > 0 {
		last := w.controls[m-1]
		ctrl = &last
		w.controls = w.controls[m:]
	}

	return fired, ctrl
}

// Clock returns the time elapsed since the wave went in flight.
func (w *Wave) Clock() time.Duration {
	return w.clock
}

// IsComplete reports whether every event has fired.
func (w *Wave) IsComplete() bool {
	return len(w.spawns) == 0 && len(w.controls) == 0
}

// Pending returns the number of spawn and control events still to fire.
func (w *Wave) Pending() (spawns, controls int) {
	return len(w.spawns), len(w.controls)
}

// Duration returns the time of the last event.
func (w *Wave) Duration() time.Duration {
	var d time.Duration
	if n := len(w.spawns); n > 0 {
		d = w.spawns[n-1].At
	}
	if n := len(w.controls); n > 0 && w.controls[n-1].At > d {
		d = w.controls[n-1].At
	}
	return d
}

// OffsetAngles rotates every pending spawn by delta radians.
func (w *Wave) OffsetAngles(delta float64) {
	for i := range w.spawns {
		w.spawns[i].Angle += delta
	}
}

// Shift delays every event by offset.
func (w *Wave) Shift(offset time.Duration) {
	for i := range w.spawns {
		w.spawns[i].At += offset
	}
	for i := range w.controls {
		w.controls[i].At += offset
	}
}
