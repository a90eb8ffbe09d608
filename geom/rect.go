package geom

import (
	"fmt"
	"iter"
	"math"
	"math/bits"
)

// Rect is a half-open bound anchored at the origin. A point is inside
// it if its X is less than Width and its Y is less than Height.
type Rect struct {
	Width, Height uint
}

// Rt is shorthand for Rect{Width: w, Height: h}.
func Rt(w, h uint) Rect {
	return Rect{Width: w, Height: h}
}

// Contains reports whether p is inside r.
func (r Rect) Contains(p Point) bool {
	return (p.X < r.Width) && (p.Y < r.Height)
}

// Empty reports whether r contains no points.
func (r Rect) Empty() bool {
	return (r.Width == 0) || (r.Height == 0)
}

// Area returns the number of points inside r, saturating at
// math.MaxUint.
func (r Rect) Area() uint {
	hi, lo := bits.Mul(r.Width, r.Height)
	if hi != 0 {
		return math.MaxUint
	}
	return lo
}

// Limit returns the largest point contained in r, suitable for
// [Offset.ApplyWithin]. It returns false if r is empty.
func (r Rect) Limit() (Point, bool) {
	if r.Empty() {
		return Point{}, false
	}
	return Point{X: r.Width - 1, Y: r.Height - 1}, true
}

// All yields every point of r in row-major order.
func (r Rect) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := range r.Height {
			for x := range r.Width {
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Ray yields start and then each point reached by repeatedly applying
// o, stopping as soon as a point would leave r or the lattice. If
// start is outside of r, nothing is yielded. A zero offset yields
// start once.
func Ray(start Point, o Offset, r Rect) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		p := start
		for r.Contains(p) {
			if !yield(p) || o.IsZero() {
				return
			}

			next, ok := o.Apply(p)
			if !ok {
				return
			}
			p = next
		}
	}
}
