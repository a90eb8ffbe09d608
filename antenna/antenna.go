// Package antenna projects antinodes from pairs of antennas that share
// a frequency.
package antenna

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"unicode"

	"deedles.dev/xlattice/geom"
	"deedles.dev/xlattice/grid"
)

// Map is the set of antennas within some bounds, grouped by
// frequency. Antennas of each frequency are in row-major order.
type Map struct {
	Bounds      geom.Rect
	Frequencies map[rune][]geom.Point
}

// Parse reads a map in which every letter or digit is an antenna
// broadcasting on that frequency.
func Parse(lines iter.Seq2[int, string]) (*Map, error) {
	frequencies := make(map[rune][]geom.Point)
	g, err := grid.Decode(lines, func(p geom.Point, c rune) (rune, error) {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			frequencies[c] = append(frequencies[c], p)
		}
		return c, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse antenna map: %w", err)
	}

	return &Map{Bounds: g.Bounds(), Frequencies: frequencies}, nil
}

// Pairs yields every unordered pair of antennas that share a
// frequency. Frequencies are visited in ascending order.
func (m *Map) Pairs() iter.Seq2[geom.Point, geom.Point] {
	return func(yield func(geom.Point, geom.Point) bool) {
		for _, f := range slices.Sorted(maps.Keys(m.Frequencies)) {
			antennas := m.Frequencies[f]
			for i, target := range antennas {
				for _, subject := range antennas[i+1:] {
					if !yield(target, subject) {
						return
					}
				}
			}
		}
	}
}

// Project yields the points reached by repeatedly applying o to from,
// not including from itself, until a point leaves bounds.
func Project(from geom.Point, o geom.Offset, bounds geom.Rect) iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		if o.IsZero() {
			return
		}
		for p := range geom.Ray(from, o, bounds) {
			if p == from {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Antinodes returns the in-bounds points that lie one antenna spacing
// beyond either end of each pair.
func Antinodes(m *Map) geom.PointSet {
	antinodes := make(geom.PointSet)
	for target, subject := range m.Pairs() {
		o := target.OffsetFrom(subject)
		if p, ok := first(Project(target, o, m.Bounds)); ok {
			antinodes.Add(p)
		}
		if p, ok := first(Project(subject, o.Inverse(), m.Bounds)); ok {
			antinodes.Add(p)
		}
	}
	return antinodes
}

func first[T any](seq iter.Seq[T]) (v T, ok bool) {
	for v := range seq {
		return v, true
	}
	return v, false
}

// Harmonics returns every in-bounds point on the line through each
// pair at a whole multiple of the antenna spacing, including the
// antennas themselves.
func Harmonics(m *Map) geom.PointSet {
	harmonics := make(geom.PointSet)
	for target, subject := range m.Pairs() {
		o := target.OffsetFrom(subject)
		for p := range geom.Ray(target, o, m.Bounds) {
			harmonics.Add(p)
		}
		for p := range geom.Ray(subject, o.Inverse(), m.Bounds) {
			harmonics.Add(p)
		}
	}
	return harmonics
}

// Draw renders m with marks shown as '#' wherever no antenna stands.
func (m *Map) Draw(marks geom.PointSet) string {
	antennas := make(map[geom.Point]rune)
	for f, points := range m.Frequencies {
		for _, p := range points {
			antennas[p] = f
		}
	}

	return grid.Draw(m.Bounds, func(p geom.Point) rune {
		if f, ok := antennas[p]; ok {
			return f
		}
		if marks.Has(p) {
			return '#'
		}
		return '.'
	})
}
