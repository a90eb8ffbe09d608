package input_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"deedles.dev/xlattice/input"
	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	lines, err := input.ReadLines(strings.NewReader("..#\r\n.^.\n...\n"))
	require.Nil(t, err)
	require.Equal(t, []string{"..#", ".^.", "..."}, lines)

	lines, err = input.ReadLines(strings.NewReader("abc"))
	require.Nil(t, err)
	require.Equal(t, []string{"abc"}, lines)

	lines, err = input.ReadLines(strings.NewReader(""))
	require.Nil(t, err)
	require.Empty(t, lines)
}

func TestLinesIndexed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.Nil(t, os.WriteFile(path, []byte("0123\n4567\n"), 0o644))

	seq, err := input.LinesIndexed(path)
	require.Nil(t, err)

	var got []string
	for i, line := range seq {
		require.Equal(t, len(got), i)
		got = append(got, line)
	}
	require.Equal(t, []string{"0123", "4567"}, got)
}

func TestLinesMissing(t *testing.T) {
	_, err := input.Lines(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
