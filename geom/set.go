package geom

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// PointSet is a set of points.
type PointSet map[Point]struct{}

// SetOf returns a set containing the given points.
func SetOf(points ...Point) PointSet {
	s := make(PointSet, len(points))
	for _, p := range points {
		s.Add(p)
	}
	return s
}

// Add inserts p into s.
func (s PointSet) Add(p Point) { s[p] = struct{}{} }

// Has reports whether p is in s.
func (s PointSet) Has(p Point) bool {
	_, ok := s[p]
	return ok
}

func (s PointSet) Len() int { return len(s) }

// Clone returns a copy of s that shares no storage with it.
func (s PointSet) Clone() PointSet {
	c := maps.Clone(s)
	if c == nil {
		c = make(PointSet)
	}
	return c
}

// All yields the points of s in no particular order.
func (s PointSet) All() iter.Seq[Point] {
	return maps.Keys(s)
}

// Sorted returns the points of s in row-major order.
func (s PointSet) Sorted() []Point {
	return slices.SortedFunc(s.All(), ComparePoints)
}

// ComparePoints orders points row-major: by Y, then by X.
func ComparePoints(a, b Point) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}
