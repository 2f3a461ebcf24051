package meteors

import "time"

// ObjectView is a falling object resolved to world coordinates.
type ObjectView struct {
	Kind   Kind
	X, Y   float64
	Size   float64
	Active bool
	Alpha  float64
	Scale  float64
}

// ManagerStats is the debug view of one spawn manager.
type ManagerStats struct {
	Family   Family
	Waves    int
	Objects  int
	Interval time.Duration
	Random   bool
}

// Snapshot captures what a pixel renderer needs to draw one frame.
// Coordinates are world units relative to the planet center.
type Snapshot struct {
	Tick          int
	Mode          Mode
	Level         int
	Score         int
	LastScore     int
	GameOver      bool
	Paused        bool
	Debug         bool
	StarPower     int
	MaxStarPower  int
	Bombs         int
	PlanetRadius  float64
	PlanetAngle   float64
	ViewRadius    float64
	PlayerX       float64
	PlayerY       float64
	PlayerW       float64
	PlayerH       float64
	PlayerVisible bool
	Objects       []ObjectView // active objects first, debris last
	Stats         []ManagerStats
}

// Snapshot returns the current frame for rendering and determinism checks.
func (g *Game) Snapshot() Snapshot {
	pos := g.player.Position(g.planet).Sub(g.planet.Center)
	s := Snapshot{
		Tick:          g.tickCount,
		Mode:          g.mode,
		Level:         g.level,
		Score:         g.player.Score,
		LastScore:     g.lastScore,
		GameOver:      g.gameOver,
		Paused:        g.paused,
		Debug:         g.debug,
		StarPower:     g.player.StarPower,
		MaxStarPower:  g.player.MaxStarPower(),
		Bombs:         g.player.Bombs,
		PlanetRadius:  g.planet.Radius,
		PlanetAngle:   g.planet.Angle,
		ViewRadius:    g.cfg.World.ViewRadius,
		PlayerX:       pos.X,
		PlayerY:       pos.Y,
		PlayerW:       g.player.Width,
		PlayerH:       g.player.Height,
		PlayerVisible: g.player.Visible && g.mode == ModePlaying,
	}

	var debris []ObjectView
	for _, m := range g.managers() {
		for _, o := range m.Objects() {
			p := o.Position(g.planet).Sub(g.planet.Center)
			v := ObjectView{
				Kind:   o.Kind,
				X:      p.X,
				Y:      p.Y,
				Size:   o.Size,
				Active: o.Active,
				Alpha:  o.Alpha,
				Scale:  o.Scale,
			}
			if o.Active {
				s.Objects = append(s.Objects, v)
			} else {
				debris = append(debris, v)
			}
		}
		s.Stats = append(s.Stats, ManagerStats{
			Family:   m.Family(),
			Waves:    m.WaveCount(),
			Objects:  len(m.Objects()),
			Interval: m.Interval(),
			Random:   m.RandomEnabled(),
		})
	}
	s.Objects = append(s.Objects, debris...)
	return s
}
