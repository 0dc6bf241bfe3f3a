// Package core provides fundamental types and utilities for the match3 platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is a block of terminal cells, such as the tile grid inside its
// border. Renderers draw into it and mouse clicks are hit-tested against it.
type Rect struct {
	X, Y int // Top-left cell
	W, H int
}

// NewRect returns the w×h block whose top-left cell is (x, y).
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the middle cell, rounding towards the bottom right.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Slot treats the rectangle as a grid of slotW×slotH blocks and returns the
// column and row of the block holding cell (x, y). ok is false outside the
// rectangle or for non-positive slot sizes.
func (r Rect) Slot(x, y, slotW, slotH int) (col, row int, ok bool) {
	if slotW <= 0 || slotH <= 0 || !r.Contains(x, y) {
		return 0, 0, false
	}
	return (x - r.X) / slotW, (y - r.Y) / slotH, true
}

// Clamp limits val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns |x|.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of a and b.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
