// Package wordsearch finds words spelled along straight rays through
// a grid of letters.
package wordsearch

import (
	"errors"
	"iter"

	"deedles.dev/xiter"
	"deedles.dev/xlattice/geom"
	"deedles.dev/xlattice/grid"
)

// ErrWordLength indicates a word that cannot be crossed because it
// has no single middle letter.
var ErrWordLength = errors.New("wordsearch: crossed words must have an odd number of letters")

// MatchRay reports whether word is spelled starting at origin and
// continuing along o. A ray that leaves the grid before the word is
// complete does not match.
func MatchRay(g *grid.Grid[rune], origin geom.Point, o geom.Offset, word []rune) bool {
	if len(word) == 0 {
		return true
	}

	for i, p := range xiter.Enumerate(geom.Ray(origin, o, g.Bounds())) {
		c, _ := g.At(p)
		if c != word[i] {
			return false
		}
		if i == len(word)-1 {
			return true
		}
	}
	return false
}

// CountWord counts the occurrences of word along any of the eight
// compass rays. A word of one letter is counted once per cell.
func CountWord(g *grid.Grid[rune], word string) int {
	letters := []rune(word)
	if len(letters) == 0 {
		return 0
	}

	rays := geom.Compass[:]
	if len(letters) == 1 {
		rays = rays[:1]
	}

	var count int
	for p := range startingAt(g, letters[0]) {
		for _, o := range rays {
			if MatchRay(g, p, o, letters) {
				count++
			}
		}
	}
	return count
}

// CountCrosses counts the cells that are the middle letter of word
// spelled along at least two diagonal rays at once, such as two
// copies of "MAS" crossing in an X.
func CountCrosses(g *grid.Grid[rune], word string) (int, error) {
	letters := []rune(word)
	if len(letters)%2 == 0 {
		return 0, ErrWordLength
	}
	mid := len(letters) / 2

	var count int
	for pivot := range startingAt(g, letters[mid]) {
		if crossings(g, pivot, letters, mid) >= 2 {
			count++
		}
	}
	return count, nil
}

func crossings(g *grid.Grid[rune], pivot geom.Point, word []rune, mid int) (n int) {
	for _, o := range geom.Diagonals {
		origin, ok := walkBack(pivot, o, mid, g.Bounds())
		if !ok {
			continue
		}
		if MatchRay(g, origin, o.Inverse(), word) {
			n++
		}
	}
	return n
}

// walkBack applies o to p n times, failing if any step leaves r.
func walkBack(p geom.Point, o geom.Offset, n int, r geom.Rect) (geom.Point, bool) {
	for range n {
		next, ok := o.Apply(p)
		if !ok || !r.Contains(next) {
			return geom.Point{}, false
		}
		p = next
	}
	return p, true
}

func startingAt(g *grid.Grid[rune], letter rune) iter.Seq[geom.Point] {
	return xiter.Filter(g.Rect.All(), func(p geom.Point) bool {
		c, _ := g.At(p)
		return c == letter
	})
}
