package meteors

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/meteors/internal/config"
)

// Driver is the background countdown that alternates free random spawning
// with scripted waves. It is re-armed with a random duration every time it
// fires.
type Driver struct {
	cfg       config.DriverConfig
	rng       *rand.Rand
	remaining time.Duration
}

// NewDriver creates an armed driver.
func NewDriver(cfg config.DriverConfig, rng *rand.Rand) *Driver {
	d := &Driver{cfg: cfg, rng: rng}
	d.Rearm()
	return d
}

// Rearm restarts the countdown with a duration in [min, max].
func (d *Driver) Rearm() {
	lo, hi := d.cfg.MinMS, d.cfg.MaxMS
	ms := lo
	if hi > lo {
		ms = lo + d.rng.Intn(hi-lo+1)
	}
	d.remaining = config.Ms(ms)
}

// Update counts down by dt and reports whether the driver fired.
func (d *Driver) Update(dt time.Duration) bool {
	if !d.cfg.Enabled {
		return false
	}
	d.remaining -= dt
	if d.remaining > 0 {
		return false
	}
	d.Rearm()
	return true
}
