package trail_test

import (
	"slices"
	"strings"
	"testing"

	"deedles.dev/xlattice/geom"
	"deedles.dev/xlattice/trail"
	"github.com/stretchr/testify/require"
)

const example = `89010123
78121874
87430965
96549874
45678903
32019012
01329801
10456732`

func parse(t *testing.T, text string) *trail.Map {
	t.Helper()

	m, err := trail.Parse(slices.All(strings.Split(text, "\n")))
	require.Nil(t, err)
	return m
}

func TestSurvey(t *testing.T) {
	totals := trail.Survey(parse(t, example))
	require.Equal(t, trail.Totals{Trailheads: 9, Score: 36, Rating: 81}, totals)
}

func TestExplore(t *testing.T) {
	m := parse(t, "...0...\n...1...\n...2...\n6543456\n7.....7\n8.....8\n9.....9")

	s := trail.Explore(m, geom.Pt(3, 0))
	require.Equal(t, 2, s.Score())
	require.Equal(t, 2, s.Rating)
	require.Equal(t, []geom.Point{geom.Pt(0, 6), geom.Pt(6, 6)}, s.Peaks.Sorted())

	s = trail.Explore(m, geom.Pt(3, 1))
	require.Zero(t, s.Score())
	require.Zero(t, s.Rating)
}

func TestRating(t *testing.T) {
	m := parse(t, ".....0.\n..4321.\n..5..2.\n..6543.\n..7..4.\n..8765.\n..9....")
	s := trail.Explore(m, geom.Pt(5, 0))
	require.Equal(t, 1, s.Score())
	require.Equal(t, 3, s.Rating)
}

func TestTrailheads(t *testing.T) {
	m := parse(t, "10..9\n23.0.")
	require.Equal(t, []geom.Point{geom.Pt(1, 0), geom.Pt(3, 1)}, slices.Collect(trail.Trailheads(m)))
}

func TestParseErrors(t *testing.T) {
	_, err := trail.Parse(slices.All([]string{"012", "3a4"}))
	require.ErrorIs(t, err, trail.ErrBadElevation)
	require.ErrorContains(t, err, "line 2 column 2")
}
