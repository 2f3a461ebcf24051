// Package core provides fundamental types and utilities for the meteors game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"errors"
	"math"
)

// ErrPercentOutOfRange is returned by PointOnLine for a percent outside [0, 1].
var ErrPercentOutOfRange = errors.New("core: percent out of range [0, 1]")

// Rect represents an axis-aligned cell rectangle used for screen drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Vec2 is a point or direction in world space.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Circle is a center and radius in world space.
type Circle struct {
	Center Vec2
	Radius float64
}

// Line is a segment from P1 to P2.
type Line struct {
	P1, P2 Vec2
}

// PointOnCircle returns the point on c at the given angle (radians).
// Angle 0 points along +X; angles grow towards +Y (screen down).
func PointOnCircle(c Circle, angle float64) Vec2 {
	return Vec2{
		X: c.Center.X + c.Radius*math.Cos(angle),
		Y: c.Center.Y + c.Radius*math.Sin(angle),
	}
}

// PointOnLine returns the point situated percent of the way from l.P1 to l.P2.
func PointOnLine(l Line, percent float64) (Vec2, error) {
	if percent < 0 || percent > 1 || math.IsNaN(percent) {
		return Vec2{}, ErrPercentOutOfRange
	}
	return Vec2{
		X: l.P1.X + (l.P2.X-l.P1.X)*percent,
		Y: l.P1.Y + (l.P2.Y-l.P1.Y)*percent,
	}, nil
}

// DistanceSquared returns the squared distance between a and b.
// Use this when comparing distances to avoid the sqrt.
func DistanceSquared(a, b Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// CirclesOverlap reports whether two circles overlap (touching is not overlap).
func CirclesOverlap(a, b Circle) bool {
	radii := a.Radius + b.Radius
	return DistanceSquared(a.Center, b.Center) < radii*radii
}

// Box is a float axis-aligned bounding box centered on a point.
type Box struct {
	Center Vec2
	W, H   float64
}

// BoxAt creates a box of size w x h centered on c.
func BoxAt(c Vec2, w, h float64) Box {
	return Box{Center: c, W: w, H: h}
}

// Scale returns the box with width and height multiplied, keeping its center.
func (b Box) Scale(sw, sh float64) Box {
	return Box{Center: b.Center, W: b.W * sw, H: b.H * sh}
}

// Min returns the top-left corner.
func (b Box) Min() Vec2 {
	return Vec2{X: b.Center.X - b.W/2, Y: b.Center.Y - b.H/2}
}

// Max returns the bottom-right corner.
func (b Box) Max() Vec2 {
	return Vec2{X: b.Center.X + b.W/2, Y: b.Center.Y + b.H/2}
}

// Intersects reports whether two boxes overlap. Shared edges do not count.
func (b Box) Intersects(o Box) bool {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := o.Min(), o.Max()
	if bMin.X >= oMax.X || oMin.X >= bMax.X {
		return false
	}
	if bMin.Y >= oMax.Y || oMin.Y >= bMax.Y {
		return false
	}
	return true
}

// NormalizeAngle wraps an angle into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
