package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone         Action = iota
	ActionRotateLeft          // A, Left - spin the world counter-clockwise
	ActionRotateRight         // D, Right - spin the world clockwise
	ActionBomb                // Space - detonate a bomb charge
	ActionConfirm             // Enter, mouse click - leave the title screen
	ActionPause               // P, Escape - pause/unpause game
	ActionDebug               // Tab - toggle the debug HUD
	ActionToggleRandom        // R - toggle random meteor spawning
	ActionSpawnFaster         // + - shorten the meteor spawn interval
	ActionSpawnSlower         // - - lengthen the meteor spawn interval
	ActionQuit                // Q, Ctrl+C - exit game/session
	ActionAnyKey              // any other key; only meaningful on the title screen
	ActionWave1               // 1..9 - load the n-th catalogue wave
	ActionWave2
	ActionWave3
	ActionWave4
	ActionWave5
	ActionWave6
	ActionWave7
	ActionWave8
	ActionWave9
)

// WaveAction returns the wave hot-key action for n in [1, 9], or ActionNone.
func WaveAction(n int) Action {
	if n < 1 || n > 9 {
		return ActionNone
	}
	return ActionWave1 + Action(n-1)
}

// WaveIndex returns the zero-based catalogue index of a wave hot-key action.
func (a Action) WaveIndex() (int, bool) {
	if a < ActionWave1 || a > ActionWave9 {
		return 0, false
	}
	return int(a - ActionWave1), true
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
	case ActionBomb:
		return "Bomb"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionDebug:
		return "Debug"
	case ActionToggleRandom:
		return "ToggleRandom"
	case ActionSpawnFaster:
		return "SpawnFaster"
	case ActionSpawnSlower:
		return "SpawnSlower"
	case ActionQuit:
		return "Quit"
	case ActionAnyKey:
		return "AnyKey"
	}
	if i, ok := a.WaveIndex(); ok {
		return "Wave" + string(rune('1'+i))
	}
	return "Unknown"
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Any returns true if at least one action other than quit was triggered.
func (f InputFrame) Any() bool {
	for a, on := range f.Actions {
		if on && a != ActionNone && a != ActionQuit {
			return true
		}
	}
	return false
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
