package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/meteors/internal/core"
	"github.com/vovakirdan/meteors/internal/games/meteors"
	"github.com/vovakirdan/meteors/internal/storage"
)

// scriptedGame records the frames it is stepped with and emits queued events.
type scriptedGame struct {
	frames []core.InputFrame
	events map[int][]core.Event
}

func (g *scriptedGame) ID() string { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) {}
func (g *scriptedGame) Render(*core.Screen) {}
func (g *scriptedGame) State() core.GameState { return core.GameState{} }
func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in)
	return core.StepResult{Events: g.events[len(g.frames)]}
}

func newTestModel(g Game, store *storage.Store) Model {
	return NewModel(g, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, nil)
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm
}

func TestRotateKeyIsLatched(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(g, nil)

	m = send(t, m, runeKey("a"))
	for range holdTicks + 2 {
		m = send(t, m, TickMsg{})
	}

	for i, f := range g.frames {
		want := i < holdTicks
		if f.Has(core.ActionRotateLeft) != want {
			t.Errorf("tick %d: RotateLeft = %v, expected %v", i, f.Has(core.ActionRotateLeft), want)
		}
	}
}

func TestOppositeRotateCancelsHold(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(g, nil)

	m = send(t, m, runeKey("a"))
	m = send(t, m, TickMsg{})
	m = send(t, m, runeKey("d"))
	m = send(t, m, TickMsg{})

	last := g.frames[len(g.frames)-1]
	if last.Has(core.ActionRotateLeft) || !last.Has(core.ActionRotateRight) {
		t.Error("pressing right should replace the left hold")
	}
}

func TestOneShotActionsLastOneTick(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(g, nil)

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = send(t, m, TickMsg{})
	m = send(t, m, TickMsg{})

	if !g.frames[0].Has(core.ActionBomb) || g.frames[1].Has(core.ActionBomb) {
		t.Error("bomb should be delivered on exactly one tick")
	}
}

func TestMouseClickConfirms(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(g, nil)

	m = send(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	send(t, m, TickMsg{})
	if !g.frames[0].Has(core.ActionConfirm) {
		t.Error("left click should confirm")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(&scriptedGame{}, nil)
	next, cmd := m.Update(runeKey("q"))
	if cmd == nil || !next.(Model).quitting {
		t.Error("q should quit")
	}
	if next.(Model).View() != "" {
		t.Error("a quitting model renders nothing")
	}
}

func TestGameOverSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	g := &scriptedGame{events: map[int][]core.Event{
		2: {{Type: core.EventGameOver, Score: 700, Level: 2}},
		4: {{Type: core.EventGameOver, Score: 0, Level: 1}},
	}}
	m := newTestModel(g, store)
	for range 5 {
		m = send(t, m, TickMsg{})
	}

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Score != 700 || scores[0].Level != 2 {
		t.Errorf("stored scores = %+v, expected a single 700 at level 2", scores)
	}
}

func TestModelDrivesMeteors(t *testing.T) {
	g := meteors.New()
	m := newTestModel(g, nil)
	m.Init()
	m = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})

	for range 60 {
		m = send(t, m, TickMsg{})
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, TickMsg{})

	if m.State().Mode != "playing" {
		t.Errorf("Mode = %q after enter, expected playing", m.State().Mode)
	}
	if m.View() == "" {
		t.Error("View() should draw the game")
	}
}
