// Package core provides the terminal canvas shared by presentations: a
// colored cell buffer and the projection from field units to cells.
// It has no dependency on Bubble Tea so it can be tested on its own.
package core

import "math"

// Rect is an axis-aligned area of cells.
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Projection maps field coordinates onto a grid of Cols x Rows cells.
type Projection struct {
	FieldW, FieldH float64
	Cols, Rows     int
}

// Cell returns the cell containing field point (x, y), clamped to the grid.
func (p Projection) Cell(x, y float64) (col, row int) {
	col = int(math.Floor(x * float64(p.Cols) / p.FieldW))
	row = int(math.Floor(y * float64(p.Rows) / p.FieldH))
	return Clamp(col, 0, p.Cols-1), Clamp(row, 0, p.Rows-1)
}

// Span returns the cells covered by a field rectangle. Edges are rounded,
// so equal field widths map to equal cell widths. Non-empty rectangles
// cover at least one cell.
func (p Projection) Span(left, right, top, bottom float64) Rect {
	x0 := int(math.Round(left * float64(p.Cols) / p.FieldW))
	x1 := int(math.Round(right * float64(p.Cols) / p.FieldW))
	y0 := int(math.Round(top * float64(p.Rows) / p.FieldH))
	y1 := int(math.Round(bottom * float64(p.Rows) / p.FieldH))
	if x1 <= x0 && right > left {
		x1 = x0 + 1
	}
	if y1 <= y0 && bottom > top {
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// FieldX returns the field x coordinate at the center of column col.
func (p Projection) FieldX(col int) float64 {
	return (float64(col) + 0.5) * p.FieldW / float64(p.Cols)
}
