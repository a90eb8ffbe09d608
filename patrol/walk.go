package patrol

import (
	"errors"

	"deedles.dev/xlattice/geom"
)

var (
	// ErrOutOfBounds indicates that a walk was started outside of its
	// level.
	ErrOutOfBounds = errors.New("patrol: guard starts outside of level")

	// ErrTrapped indicates that obstacles block all four directions
	// around the guard, so that it would turn forever.
	ErrTrapped = errors.New("patrol: guard is boxed in")

	// ErrBudgetExhausted indicates that a walk advanced more times
	// than its budget allowed.
	ErrBudgetExhausted = errors.New("patrol: step budget exhausted")
)

// Outcome is the way a walk ended.
type Outcome int

const (
	// Exited means that the guard walked out of the level.
	Exited Outcome = iota

	// Stopped means that the callback asked the walk to end.
	Stopped
)

func (o Outcome) String() string {
	switch o {
	case Exited:
		return "exited"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Walk moves the guard through level from start until it leaves the
// level or yield returns false.
//
// Each time the way ahead is blocked, the guard turns clockwise in
// place; turning never counts as an advance. Before each advance,
// yield is called with the guard's current state, whose Next method
// returns the cell being stepped onto.
//
// The walk may advance at most budget times. A budget of zero or less
// means [Level.MaxSteps], which is enough for any walk that does not
// loop. Exceeding the budget returns [ErrBudgetExhausted], so callers
// that might walk into a loop should detect revisits in yield rather
// than rely on it.
func Walk(start Guard, level *Level, budget int, yield func(Guard) bool) (Outcome, error) {
	if !level.Bounds.Contains(start.Position) {
		return Stopped, ErrOutOfBounds
	}
	if budget <= 0 {
		budget = level.MaxSteps()
	}

	g := start
	var turns int
	for {
		to, ok := g.Next()
		if !ok || !level.Bounds.Contains(to) {
			return Exited, nil
		}

		if level.IsObstacle(to) {
			turns++
			if turns == 4 {
				return Stopped, ErrTrapped
			}
			g.Direction = g.Direction.RotateCW()
			continue
		}

		if budget == 0 {
			return Stopped, ErrBudgetExhausted
		}
		if !yield(g) {
			return Stopped, nil
		}

		budget--
		turns = 0
		g.Position = to
	}
}

// Visited returns every position the guard occupies on its way out of
// the level, including its start.
func Visited(start Guard, level *Level) (geom.PointSet, error) {
	visited := geom.SetOf(start.Position)
	_, err := Walk(start, level, 0, func(g Guard) bool {
		to, _ := g.Next()
		visited.Add(to)
		return true
	})
	if err != nil {
		return nil, err
	}
	return visited, nil
}
