// Package grid stores fully materialized two-dimensional maps of
// cells and decodes them from lines of text.
package grid

import (
	"iter"
	"strings"

	"deedles.dev/xlattice/geom"
)

// Grid is a dense, row-major map of cells covering Rect.
type Grid[T any] struct {
	Rect  geom.Rect
	Cells []T
}

// New returns a grid covering r with every cell set to the zero value
// of T.
func New[T any](r geom.Rect) *Grid[T] {
	return &Grid[T]{
		Rect:  r,
		Cells: make([]T, r.Area()),
	}
}

func (g *Grid[T]) Bounds() geom.Rect { return g.Rect }

// Stride returns the number of cells between vertically adjacent
// points.
func (g *Grid[T]) Stride() int {
	return int(g.Rect.Width)
}

func (g *Grid[T]) offset(p geom.Point) int {
	return (g.Stride() * int(p.Y)) + int(p.X)
}

// At returns the cell at p. It returns false if p is out of bounds.
func (g *Grid[T]) At(p geom.Point) (v T, ok bool) {
	if !g.Rect.Contains(p) {
		return v, false
	}
	return g.Cells[g.offset(p)], true
}

// Set replaces the cell at p, reporting whether p was in bounds.
func (g *Grid[T]) Set(p geom.Point, v T) bool {
	if !g.Rect.Contains(p) {
		return false
	}
	g.Cells[g.offset(p)] = v
	return true
}

// All yields every point of the grid along with its cell, in
// row-major order.
func (g *Grid[T]) All() iter.Seq2[geom.Point, T] {
	return func(yield func(geom.Point, T) bool) {
		for p := range g.Rect.All() {
			if !yield(p, g.Cells[g.offset(p)]) {
				return
			}
		}
	}
}

// Draw renders r as text, one line per row, using cell to pick the
// rune for each point.
func Draw(r geom.Rect, cell func(geom.Point) rune) string {
	var buf strings.Builder
	buf.Grow(int((r.Width + 1) * r.Height))
	for y := range r.Height {
		for x := range r.Width {
			buf.WriteRune(cell(geom.Pt(x, y)))
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}
