package patrol

import (
	"errors"
	"fmt"

	"deedles.dev/xlattice/geom"
)

// FindLoopObstacles returns every position where adding one obstacle
// would trap the guard in a loop.
//
// Only cells that the guard steps onto during an unmodified walk are
// candidates, and the start position never is. Each candidate is
// checked independently by walking a copy of level with the obstacle
// added, from the original start, until the guard either leaves or
// repeats a state.
func FindLoopObstacles(start Guard, level *Level) (geom.PointSet, error) {
	loops := make(geom.PointSet)
	tried := geom.SetOf(start.Position)

	var checkErr error
	_, err := Walk(start, level, 0, func(ghost Guard) bool {
		to, _ := ghost.Next()
		if tried.Has(to) {
			return true
		}
		tried.Add(to)

		looped, err := Loops(start, level.WithObstacle(to))
		if err != nil {
			checkErr = fmt.Errorf("obstacle at %v: %w", to, err)
			return false
		}
		if looped {
			loops.Add(to)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if checkErr != nil {
		return nil, checkErr
	}

	return loops, nil
}

// Loops reports whether a guard starting from start would patrol
// level forever. A guard boxed in on all sides counts as looping.
func Loops(start Guard, level *Level) (bool, error) {
	visited := make(map[Guard]struct{})
	var looped bool
	_, err := Walk(start, level, 0, func(g Guard) bool {
		if _, ok := visited[g]; ok {
			looped = true
			return false
		}
		visited[g] = struct{}{}
		return true
	})
	if errors.Is(err, ErrTrapped) {
		return true, nil
	}
	return looped, err
}
