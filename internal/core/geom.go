// Package core provides fundamental types and utilities for the chomp game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned box in screen cells, used for hit-testing
// clickable controls such as the Start button.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// WrapDistance returns the shorter arc between a and b on a ring of the
// given period. Used for the horizontal axis of the board, which wraps
// through the tunnel row.
func WrapDistance(a, b, period int) int {
	d := Abs(a-b) % period
	return Min(d, period-d)
}

// LinearDistance returns |a-b|. Used for the vertical axis, which does
// not wrap.
func LinearDistance(a, b int) int {
	return Abs(a - b)
}

// SignedWrapDelta returns the signed offset of a relative to b on a ring of
// the given period, normalized to (-period/2, period/2]. Zero means exact
// alignment. The sign tells which side of b the point a sits on; the
// collision detector compares it across ticks to catch crossings.
func SignedWrapDelta(a, b, period int) int {
	d := ((a-b)%period + period) % period
	if d > period/2 {
		d -= period
	}
	return d
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
