package tui

import "github.com/vovakirdan/meteors/internal/core"

// Game is what the terminal loop drives. Implementations own their simulation
// and draw themselves into the character screen.
type Game interface {
	// ID returns the identifier used for score storage.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset prepares a fresh session for the given runtime configuration.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame. It must not mutate game state.
	Render(screen *core.Screen)

	// State returns the current status.
	State() core.GameState
}
