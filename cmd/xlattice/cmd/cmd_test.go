package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"deedles.dev/xlattice/cmd/xlattice/cmd"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.Nil(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := cmd.NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPatrol(t *testing.T) {
	path := writeFile(t, "level.txt", "....#.....\n.........#\n..........\n..#.......\n.......#..\n..........\n.#..^.....\n........#.\n#.........\n......#...\n")

	out, err := run(t, "patrol", path)
	require.Nil(t, err)
	require.Equal(t, "visited positions: 41\nloop obstacles: 6\n", out)
}

func TestWordSearch(t *testing.T) {
	path := writeFile(t, "letters.txt", "M.S\n.A.\nM.S\n")

	out, err := run(t, "wordsearch", "--input", path, "--word", "MAS")
	require.Nil(t, err)
	require.Equal(t, "MAS: 2\ncrossed MAS: 1\n", out)
}

func TestAntennasFromConfigFile(t *testing.T) {
	path := writeFile(t, "map.txt", "a..\n.a.\n...\n")
	config := writeFile(t, "config.yaml", "input: "+path+"\nrender: true\n")

	out, err := run(t, "antennas", "--config", config)
	require.Nil(t, err)
	require.Equal(t, "a..\n.a.\n..#\n\nunique antinodes: 1\nunique harmonic antinodes: 3\n", out)
}

func TestTrailsFromEnvironment(t *testing.T) {
	path := writeFile(t, "trails.txt", "0123\n1234\n8765\n9876\n")
	t.Setenv("XLATTICE_INPUT", path)

	out, err := run(t, "trails")
	require.Nil(t, err)
	require.Equal(t, "trailheads: 1, score 1, rating 16\n", out)
}

func TestMissingInput(t *testing.T) {
	_, err := run(t, "trails", filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
