// Package meteors implements the meteors arcade game: a player stands on a
// small planet, rotates the world to dodge falling meteors and catches
// stars and bombs. Spawning mixes random timers with scripted waves.
package meteors

import (
	"io"
	"io/fs"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/meteors/internal/config"
	"github.com/vovakirdan/meteors/internal/core"
)

// Mode is the orchestrator state.
type Mode int

const (
	ModeTitle   Mode = iota // waiting for a key; managers frozen
	ModePlaying             // simulation running
	ModeLevel               // level banner; managers frozen
)

// String returns the mode name reported in core.GameState.
func (m Mode) String() string {
	switch m {
	case ModeTitle:
		return "title"
	case ModePlaying:
		return "playing"
	case ModeLevel:
		return "level"
	}
	return "unknown"
}

// Interval nudging by the +/- keys.
const (
	nudgeStep  = 10 * time.Millisecond
	nudgeFloor = 10 * time.Millisecond
)

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger for mode transitions and script loading.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithConfig replaces the default configuration.
func WithConfig(cfg config.MeteorsConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
	}
}

// WithScripts replaces the built-in wave and level catalogue.
func WithScripts(fsys fs.FS) Option {
	return func(g *Game) {
		g.scripts = fsys
	}
}

// WithLevel queues a level script for the first run.
func WithLevel(name string) Option {
	return func(g *Game) {
		g.startLevel = name
	}
}

// Game is the orchestrator. It owns the whole session state: planet,
// player, the three spawn managers and the mode state machine.
type Game struct {
	cfg     config.MeteorsConfig
	scripts fs.FS
	logger  *log.Logger
	runtime core.RuntimeConfig

	rng        *rand.Rand
	loader     *Loader
	difficulty *config.DifficultyManager
	driver     *Driver
	catalogue  []string

	planet   *Planet
	player   *Player
	scene    *Scene
	meteors  *SpawnManager
	stars    *SpawnManager
	powerups *SpawnManager

	mode        Mode
	modeElapsed time.Duration
	level       int
	gameOver    bool // the title screen follows a lost run
	paused      bool
	debug       bool
	pendingTurn float64
	startLevel  string
	lastScore   int
	tickCount   int
	events      []core.Event
}

// New creates a game. Call Reset before stepping it.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:     config.DefaultMeteorsConfig(),
		scripts: Scripts(),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "meteors"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Meteors"
}

// Reset builds a fresh session on the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.loader = NewLoader(g.scripts)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty, g.cfg.Meteors)
	g.driver = NewDriver(g.cfg.Driver, g.rng)

	names, err := g.loader.Waves()
	if err != nil {
		g.logger.Error("wave catalogue unavailable", "err", err)
	}
	g.catalogue = names

	g.planet = NewPlanet(core.V(0, 0), g.cfg.World)
	g.player = NewPlayer(g.cfg.Player)
	g.scene = &Scene{Planet: g.planet, Player: g.player, Debris: g.cfg.Debris}

	oort := g.cfg.World.OortRadius
	g.meteors = NewSpawnManager(FamilyMeteors, g.cfg.Meteors, oort, g.rng, g.loader, g.logger)
	g.stars = NewSpawnManager(FamilyStars, g.cfg.Stars, oort, g.rng, g.loader, g.logger)
	g.powerups = NewSpawnManager(FamilyPowerups, g.cfg.Powerups, oort, g.rng, g.loader, g.logger)

	g.mode = ModeTitle
	g.modeElapsed = 0
	g.level = 1
	g.gameOver = false
	g.paused = false
	g.pendingTurn = 0
	g.lastScore = 0
	g.tickCount = 0
	g.meteors.SetInterval(g.difficulty.Interval(g.level))
}

// Step advances the game by one tick of the runtime tick rate.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.Advance(g.runtime.TickDuration(), in)
}

// Advance advances the game by dt.
func (g *Game) Advance(dt time.Duration, in core.InputFrame) core.StepResult {
	g.events = g.events[:0]
	if in.Has(core.ActionDebug) {
		g.debug = !g.debug
	}

	switch g.mode {
	case ModeTitle:
		g.modeElapsed += dt
		if g.modeElapsed >= config.Ms(g.cfg.Modes.TitleDelayMS) && in.Any() && !in.Has(core.ActionDebug) {
			g.startPlaying()
		}
	case ModeLevel:
		g.modeElapsed += dt
		if g.modeElapsed >= config.Ms(g.cfg.Modes.BannerMS) {
			g.setMode(ModePlaying)
		}
	case ModePlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if !g.paused {
			g.handleInput(in)
			g.tick(dt)
		}
	}

	return core.StepResult{State: g.State(), Events: append([]core.Event(nil), g.events...)}
}

// handleInput applies the play-mode actions that are not rotation.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionRotateLeft) {
		g.pendingTurn += g.cfg.World.RotationSpeed
	}
	if in.Has(core.ActionRotateRight) {
		g.pendingTurn -= g.cfg.World.RotationSpeed
	}

	if in.Has(core.ActionBomb) && g.player.UseBomb() {
		n := g.meteors.BombExplosion(g.scene, g.cfg.World.ViewRadius)
		g.logger.Debug("bomb", "meteors", n, "left", g.player.Bombs)
	}
	if in.Has(core.ActionToggleRandom) {
		g.meteors.SetRandomEnabled(!g.meteors.RandomEnabled())
	}
	if in.Has(core.ActionSpawnFaster) {
		g.meteors.SetInterval(max(g.meteors.Interval()-nudgeStep, nudgeFloor))
	}
	if in.Has(core.ActionSpawnSlower) {
		g.meteors.SetInterval(g.meteors.Interval() + nudgeStep)
	}
	for a := core.ActionWave1; a <= core.ActionWave9; a++ {
		if !in.Has(a) {
			continue
		}
		if i, _ := a.WaveIndex(); i < len(g.catalogue) {
			_ = g.meteors.LoadWave(g.catalogue[i], 0)
		}
	}
}

// tick runs one simulation step in a fixed order: timers, spawning,
// movement and collision, pruning, then the rotation broadcast.
func (g *Game) tick(dt time.Duration) {
	g.tickCount++
	managers := g.managers()

	for _, m := range managers {
		m.AdvanceWaves(dt)
	}
	if g.driver.Update(dt) {
		g.driveWaves()
	}
	for _, m := range managers {
		m.Spawn(dt)
	}

	g.player.Update(dt)
	for _, m := range managers {
		m.UpdateObjects(dt, g.scene)
	}
	for _, m := range managers {
		m.Prune()
	}

	if g.pendingTurn != 0 {
		g.planet.Rotate(g.pendingTurn)
		for _, m := range managers {
			m.OffsetAngles(g.pendingTurn)
		}
		g.pendingTurn = 0
	}

	switch {
	case g.player.Dead():
		g.endRun()
	case g.player.LevelComplete():
		g.levelUp()
	}
}

// driveWaves is the difficulty driver's decision: with no wave in flight,
// stop random spawning and start a random wave; otherwise let random
// spawning fill the gap.
func (g *Game) driveWaves() {
	if g.meteors.WaveCount() > 0 {
		g.meteors.SetRandomEnabled(true)
		g.logger.Debug("driver: wave in flight, random on")
		return
	}
	if len(g.catalogue) == 0 {
		return
	}
	name := g.catalogue[g.rng.Intn(len(g.catalogue))]
	g.meteors.SetRandomEnabled(false)
	if err := g.meteors.LoadWave(name, 0); err != nil {
		g.meteors.SetRandomEnabled(true)
		return
	}
	g.logger.Debug("driver: started wave", "wave", name)
}

func (g *Game) managers() [3]*SpawnManager {
	return [3]*SpawnManager{g.meteors, g.stars, g.powerups}
}

func (g *Game) setMode(m Mode) {
	g.logger.Info("mode", "from", g.mode, "to", m, "level", g.level)
	g.mode = m
	g.modeElapsed = 0
}

// clearObjects empties every population. Waves in flight are kept.
func (g *Game) clearObjects() {
	for _, m := range g.managers() {
		m.Clear()
	}
}

func (g *Game) startPlaying() {
	g.clearObjects()
	g.meteors.SetInterval(g.difficulty.Interval(g.level))
	g.gameOver = false
	g.paused = false
	g.setMode(ModePlaying)

	if g.startLevel != "" {
		_ = g.meteors.LoadLevel(g.startLevel)
		g.startLevel = ""
	}
}

// endRun handles a meteor hit with no star power left.
func (g *Game) endRun() {
	g.events = append(g.events, core.Event{Type: core.EventGameOver, Score: g.player.Score, Level: g.level})
	g.logger.Info("game over", "score", g.player.Score, "level", g.level)

	g.lastScore = g.player.Score
	g.clearObjects()
	g.player.Reset()
	g.level = 1
	// Only the interval goes back to baseline. The random on/off switch and
	// curve percent stay with whatever the in-flight waves or driver set.
	g.meteors.SetInterval(g.difficulty.Interval(g.level))
	g.pendingTurn = 0
	g.gameOver = true
	g.setMode(ModeTitle)
}

func (g *Game) levelUp() {
	g.player.Score += g.level * g.cfg.Player.LevelBonus
	g.player.StarPower = 0
	g.level++
	g.meteors.SetInterval(g.difficulty.Interval(g.level))
	g.events = append(g.events, core.Event{Type: core.EventLevelUp, Score: g.player.Score, Level: g.level})
	g.setMode(ModeLevel)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := g.lastScore
	if g.mode != ModeTitle || !g.gameOver {
		score = g.player.Score
	}
	return core.GameState{
		Score:    score,
		Level:    g.level,
		Mode:     g.mode.String(),
		GameOver: g.gameOver && g.mode == ModeTitle,
		Paused:   g.paused,
	}
}

// Mode returns the orchestrator state.
func (g *Game) Mode() Mode {
	return g.mode
}

// Level returns the 1-based current level.
func (g *Game) Level() int {
	return g.level
}

// Player returns the player.
func (g *Game) Player() *Player {
	return g.player
}

// Planet returns the planet.
func (g *Game) Planet() *Planet {
	return g.planet
}

// Manager returns the spawn manager of a family.
func (g *Game) Manager(f Family) *SpawnManager {
	switch f {
	case FamilyStars:
		return g.stars
	case FamilyPowerups:
		return g.powerups
	}
	return g.meteors
}

// Catalogue returns the wave names bound to the 1..9 keys, in order.
func (g *Game) Catalogue() []string {
	return g.catalogue
}

// Debug reports whether the debug HUD is shown.
func (g *Game) Debug() bool {
	return g.debug
}
