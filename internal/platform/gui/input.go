package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/meteors/internal/core"
)

type binding struct {
	keys   []ebiten.Key
	action core.Action
}

// heldBindings apply on every tick the key is down.
var heldBindings = []binding{
	{[]ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, core.ActionRotateLeft},
	{[]ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, core.ActionRotateRight},
}

// pressBindings apply once per press.
var pressBindings = []binding{
	{[]ebiten.Key{ebiten.KeySpace}, core.ActionBomb},
	{[]ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}, core.ActionConfirm},
	{[]ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}, core.ActionPause},
	{[]ebiten.Key{ebiten.KeyTab}, core.ActionDebug},
	{[]ebiten.Key{ebiten.KeyR}, core.ActionToggleRandom},
	{[]ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}, core.ActionSpawnFaster},
	{[]ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract}, core.ActionSpawnSlower},
	{[]ebiten.Key{ebiten.KeyQ}, core.ActionQuit},
	{[]ebiten.Key{ebiten.KeyDigit1}, core.ActionWave1},
	{[]ebiten.Key{ebiten.KeyDigit2}, core.ActionWave2},
	{[]ebiten.Key{ebiten.KeyDigit3}, core.ActionWave3},
	{[]ebiten.Key{ebiten.KeyDigit4}, core.ActionWave4},
	{[]ebiten.Key{ebiten.KeyDigit5}, core.ActionWave5},
	{[]ebiten.Key{ebiten.KeyDigit6}, core.ActionWave6},
	{[]ebiten.Key{ebiten.KeyDigit7}, core.ActionWave7},
	{[]ebiten.Key{ebiten.KeyDigit8}, core.ActionWave8},
	{[]ebiten.Key{ebiten.KeyDigit9}, core.ActionWave9},
}

// readInput samples the keyboard and mouse for one tick.
func readInput(pressed []ebiten.Key) core.InputFrame {
	in := core.NewInputFrame()

	for _, b := range heldBindings {
		for _, k := range b.keys {
			if ebiten.IsKeyPressed(k) {
				in.Set(b.action)
			}
		}
	}
	for _, b := range pressBindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				in.Set(b.action)
			}
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Set(core.ActionConfirm)
	}
	if len(pressed) > 0 && !in.Any() {
		in.Set(core.ActionAnyKey)
	}
	return in
}
