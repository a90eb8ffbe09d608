// Package geom provides unsigned two-dimensional lattice primitives.
//
// Coordinates never go negative. Every movement is expressed as an
// [Offset] made of per-axis [Transform] values, and any movement that
// would leave the unsigned domain reports failure instead of wrapping.
// Callers treat such a failure as the natural end of a ray or path,
// not as an error.
package geom

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

type transformOp uint8

const (
	opZero transformOp = iota
	opDecrease
	opIncrease
)

// Transform is a bounded single-axis delta over an unsigned
// coordinate. The zero value is the identity transform.
type Transform struct {
	op transformOp
	n  uint
}

// Zero returns the identity transform.
func Zero() Transform { return Transform{} }

// DecreaseBy returns a transform that subtracts n. A magnitude of
// zero yields [Zero].
func DecreaseBy(n uint) Transform {
	if n == 0 {
		return Transform{}
	}
	return Transform{op: opDecrease, n: n}
}

// IncreaseBy returns a transform that adds n. A magnitude of zero
// yields [Zero].
func IncreaseBy(n uint) Transform {
	if n == 0 {
		return Transform{}
	}
	return Transform{op: opIncrease, n: n}
}

// TransformOf converts a signed delta into a Transform.
func TransformOf[S constraints.Signed](v S) Transform {
	switch {
	case v > 0:
		return IncreaseBy(uint(v))
	case v < 0:
		// Negate in uint space so that the minimum value of S does not
		// overflow.
		return DecreaseBy(-uint(int64(v)))
	default:
		return Transform{}
	}
}

// Magnitude returns the absolute size of the delta.
func (t Transform) Magnitude() uint { return t.n }

// IsZero reports whether t is the identity.
func (t Transform) IsZero() bool { return t.op == opZero }

// Apply applies t to v. It returns false if the result would fall
// below zero or overflow a uint.
func (t Transform) Apply(v uint) (uint, bool) {
	switch t.op {
	case opDecrease:
		if v < t.n {
			return 0, false
		}
		return v - t.n, true
	case opIncrease:
		if v > math.MaxUint-t.n {
			return 0, false
		}
		return v + t.n, true
	default:
		return v, true
	}
}

// Reverse returns the transform that undoes t.
func (t Transform) Reverse() Transform {
	switch t.op {
	case opDecrease:
		return Transform{op: opIncrease, n: t.n}
	case opIncrease:
		return Transform{op: opDecrease, n: t.n}
	default:
		return t
	}
}

// Delta returns t as a signed integer. Magnitudes beyond the range of
// int are clamped.
func (t Transform) Delta() int {
	n := int(min(t.n, math.MaxInt))
	if t.op == opDecrease {
		return -n
	}
	return n
}

func (t Transform) String() string {
	switch t.op {
	case opDecrease:
		return fmt.Sprintf("-%d", t.n)
	case opIncrease:
		return fmt.Sprintf("+%d", t.n)
	default:
		return "0"
	}
}
