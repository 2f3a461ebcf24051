// Package gui is the ebiten window frontend for the meteors game.
package gui

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/meteors/internal/core"
	"github.com/vovakirdan/meteors/internal/games/meteors"
	"github.com/vovakirdan/meteors/internal/storage"
)

// Default logical window size.
const (
	ScreenWidth  = 800
	ScreenHeight = 800
)

// Window implements ebiten.Game around a meteors.Game.
type Window struct {
	game    *meteors.Game
	store   *storage.Store
	records *RecordBook
	logger  *log.Logger
	keys    []ebiten.Key
}

// NewWindow wraps game. store and records may be nil.
func NewWindow(game *meteors.Game, store *storage.Store, records *RecordBook, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if records == nil {
		records = NewRecordBook(nil)
	}
	return &Window{
		game:    game,
		store:   store,
		records: records,
		logger:  logger,
	}
}

// Update advances the game by one tick.
func (w *Window) Update() error {
	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	in := readInput(w.keys)
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	res := w.game.Step(in)
	for _, ev := range res.Events {
		if ev.Type == core.EventGameOver {
			w.finishRun(ev)
		}
	}
	return nil
}

// finishRun stores a finished run in the score table and the record book.
func (w *Window) finishRun(ev core.Event) {
	w.logger.Info("game over", "score", ev.Score, "level", ev.Level)
	if ev.Score <= 0 {
		return
	}
	if w.store != nil {
		if _, err := w.store.SaveScore(w.game.ID(), ev.Score, ev.Level); err != nil {
			w.logger.Error("could not save score", "err", err)
		}
	}
	best, err := w.records.Record(ev.Score, ev.Level, time.Now())
	if err != nil {
		w.logger.Warn("could not save personal best", "err", err)
	}
	if best {
		w.logger.Info("new personal best", "score", ev.Score)
	}
}

// Draw renders the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	drawSnapshot(screen, w.game.Snapshot(), w.records.Best())
}

// Layout keeps a fixed logical resolution.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Run opens the window and blocks until it is closed.
func Run(game *meteors.Game, store *storage.Store, records *RecordBook, cfg core.RuntimeConfig, logger *log.Logger) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	cfg.ScreenW, cfg.ScreenH = ScreenWidth, ScreenHeight
	game.Reset(cfg)

	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(cfg.TickRate)

	return ebiten.RunGame(NewWindow(game, store, records, logger))
}
