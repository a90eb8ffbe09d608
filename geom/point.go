package geom

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Point is a cell address on the lattice.
type Point struct {
	X, Y uint
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y uint) Point {
	return Point{X: x, Y: y}
}

// OffsetFrom returns the Offset that carries other to p.
func (p Point) OffsetFrom(other Point) Offset {
	return Offset{
		X: axisDelta(other.X, p.X),
		Y: axisDelta(other.Y, p.Y),
	}
}

func axisDelta(from, to uint) Transform {
	if to >= from {
		return IncreaseBy(to - from)
	}
	return DecreaseBy(from - to)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Offset is a two-axis displacement.
type Offset struct {
	X, Y Transform
}

// OffsetOf builds an Offset from a signed pair.
func OffsetOf[S constraints.Signed](dx, dy S) Offset {
	return Offset{X: TransformOf(dx), Y: TransformOf(dy)}
}

// Apply moves p by o. It returns false if either axis would leave
// the unsigned domain.
func (o Offset) Apply(p Point) (Point, bool) {
	x, ok := o.X.Apply(p.X)
	if !ok {
		return Point{}, false
	}
	y, ok := o.Y.Apply(p.Y)
	if !ok {
		return Point{}, false
	}
	return Point{X: x, Y: y}, true
}

// ApplyWithin is like Apply but also fails if the result exceeds
// limit on either axis. The limit itself is a valid result.
func (o Offset) ApplyWithin(p, limit Point) (Point, bool) {
	q, ok := o.Apply(p)
	if !ok || (q.X > limit.X) || (q.Y > limit.Y) {
		return Point{}, false
	}
	return q, true
}

// Inverse returns the offset that undoes o.
func (o Offset) Inverse() Offset {
	return Offset{X: o.X.Reverse(), Y: o.Y.Reverse()}
}

// IsZero reports whether o leaves every point where it is.
func (o Offset) IsZero() bool {
	return o.X.IsZero() && o.Y.IsZero()
}

func (o Offset) String() string {
	return fmt.Sprintf("<%v,%v>", o.X, o.Y)
}
