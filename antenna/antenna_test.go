package antenna_test

import (
	"slices"
	"strings"
	"testing"

	"deedles.dev/xlattice/antenna"
	"deedles.dev/xlattice/geom"
	"github.com/stretchr/testify/require"
)

const example = `............
........0...
.....0......
.......0....
....0.......
......A.....
............
............
........A...
.........A..
............
............`

func parse(t *testing.T, text string) *antenna.Map {
	t.Helper()

	m, err := antenna.Parse(slices.All(strings.Split(text, "\n")))
	require.Nil(t, err)
	return m
}

func TestParse(t *testing.T) {
	m := parse(t, example)
	require.Equal(t, geom.Rt(12, 12), m.Bounds)
	require.Len(t, m.Frequencies, 2)
	require.Equal(t, []geom.Point{geom.Pt(6, 5), geom.Pt(8, 8), geom.Pt(9, 9)}, m.Frequencies['A'])

	var pairs int
	for range m.Pairs() {
		pairs++
	}
	require.Equal(t, 6+3, pairs)
}

func TestProject(t *testing.T) {
	a, b := geom.Pt(0, 0), geom.Pt(2, 1)
	o := b.OffsetFrom(a)

	require.Equal(t,
		[]geom.Point{geom.Pt(4, 2)},
		slices.Collect(antenna.Project(b, o, geom.Rt(6, 6))),
	)
	require.Equal(t,
		[]geom.Point{geom.Pt(4, 2), geom.Pt(6, 3), geom.Pt(8, 4)},
		slices.Collect(antenna.Project(b, o, geom.Rt(10, 5))),
	)
	require.Empty(t, slices.Collect(antenna.Project(a, o.Inverse(), geom.Rt(10, 10))))
	require.Empty(t, slices.Collect(antenna.Project(a, geom.Offset{}, geom.Rt(10, 10))))
}

func TestAntinodes(t *testing.T) {
	m := parse(t, example)
	require.Equal(t, 14, antenna.Antinodes(m).Len())

	m = parse(t, "..........\n...#......\n..........\n....a.....\n..........\n.....a....\n..........\n......#...\n..........\n..........")
	require.Equal(t, geom.SetOf(geom.Pt(3, 1), geom.Pt(6, 7)), antenna.Antinodes(m))
}

func TestHarmonics(t *testing.T) {
	m := parse(t, example)
	require.Equal(t, 34, antenna.Harmonics(m).Len())

	m = parse(t, "T.........\n...T......\n.T........\n..........\n..........\n..........\n..........\n..........\n..........\n..........")
	require.Equal(t, 9, antenna.Harmonics(m).Len())
}

func TestDraw(t *testing.T) {
	m := parse(t, "a..\n.a.\n...")
	require.Equal(t, "a..\n.a.\n..#\n", m.Draw(antenna.Antinodes(m)))
}
