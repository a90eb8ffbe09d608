package wordsearch_test

import (
	"slices"
	"strings"
	"testing"

	"deedles.dev/xlattice/geom"
	"deedles.dev/xlattice/grid"
	"deedles.dev/xlattice/wordsearch"
	"github.com/stretchr/testify/require"
)

const example = `MMMSXXMASM
MSAMXMSMSA
AMXSXMAAMM
MSAMASMSMX
XMASAMXAMM
XXAMMXXAMA
SMSMSASXSS
SAXAMASAAA
MAMMMXMMMM
MXMXAXMASX`

func letters(t *testing.T, text string) *grid.Grid[rune] {
	t.Helper()

	g, err := grid.Runes(slices.All(strings.Split(text, "\n")))
	require.Nil(t, err)
	return g
}

func TestMatchRay(t *testing.T) {
	g := letters(t, "XMAS\n.A..\nS...")
	require.True(t, wordsearch.MatchRay(g, geom.Pt(0, 0), geom.OffsetOf(1, 0), []rune("XMAS")))
	require.False(t, wordsearch.MatchRay(g, geom.Pt(1, 0), geom.OffsetOf(1, 0), []rune("MASK")))
	require.True(t, wordsearch.MatchRay(g, geom.Pt(2, 0), geom.OffsetOf(-1, 1), []rune("AAS")))
	require.False(t, wordsearch.MatchRay(g, geom.Pt(0, 0), geom.OffsetOf(-1, 0), []rune("XM")))
}

func TestCountWord(t *testing.T) {
	require.Equal(t, 18, wordsearch.CountWord(letters(t, example), "XMAS"))
	require.Equal(t, 2, wordsearch.CountWord(letters(t, "XMASAMX"), "XMAS"))
	require.Equal(t, 3, wordsearch.CountWord(letters(t, "ABA\nCAD"), "A"))
	require.Zero(t, wordsearch.CountWord(letters(t, "ABA"), ""))
}

func TestCountCrosses(t *testing.T) {
	n, err := wordsearch.CountCrosses(letters(t, example), "MAS")
	require.Nil(t, err)
	require.Equal(t, 9, n)

	n, err = wordsearch.CountCrosses(letters(t, "M.S\n.A.\nM.S"), "MAS")
	require.Nil(t, err)
	require.Equal(t, 1, n)

	n, err = wordsearch.CountCrosses(letters(t, "M.M\n.A.\nX.S"), "MAS")
	require.Nil(t, err)
	require.Zero(t, n)

	_, err = wordsearch.CountCrosses(letters(t, "AB"), "AB")
	require.ErrorIs(t, err, wordsearch.ErrWordLength)
}
