package meteors

import "github.com/vovakirdan/meteors/internal/core"

// Kind tags a falling object with its variant.
type Kind int

const (
	KindMeteor Kind = iota
	KindCurveMeteor
	KindOscillatingMeteor
	KindStar
	KindBomb
)

// Visual characters for rendering
const (
	MeteorChar      = '●'
	CurveMeteorChar = '◉'
	OscMeteorChar   = '◍'
	StarChar        = '★'
	BombChar        = '✚'
	DebrisChar      = '*'
	DustChar        = '·'
	PlayerChar      = '▲'
	PlanetChar      = '▒'
	CraterChar      = 'o'
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindMeteor:
		return "meteor"
	case KindCurveMeteor:
		return "curve-meteor"
	case KindOscillatingMeteor:
		return "oscillating-meteor"
	case KindStar:
		return "star"
	case KindBomb:
		return "bomb"
	}
	return "unknown"
}

// IsMeteor reports whether touching the object damages the player.
func (k Kind) IsMeteor() bool {
	return k == KindMeteor || k == KindCurveMeteor || k == KindOscillatingMeteor
}

// Glyph returns the character used to draw a live object of this kind.
func (k Kind) Glyph() rune {
	switch k {
	case KindCurveMeteor:
		return CurveMeteorChar
	case KindOscillatingMeteor:
		return OscMeteorChar
	case KindStar:
		return StarChar
	case KindBomb:
		return BombChar
	}
	return MeteorChar
}

// Color returns the foreground color of a live object of this kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindCurveMeteor:
		return core.ColorBrightRed
	case KindOscillatingMeteor:
		return core.ColorMagenta
	case KindStar:
		return core.ColorBrightYellow
	case KindBomb:
		return core.ColorBrightCyan
	}
	return core.ColorOrange
}
