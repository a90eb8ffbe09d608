// Package input reads puzzle input as lines of text.
package input

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
	"strings"
)

// ReadLines reads all of r and splits it into lines. Line terminators
// are removed, including a trailing carriage return, and a final
// terminator does not produce an empty last line.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(r)
	s.Buffer(nil, 1<<20)
	for s.Scan() {
		lines = append(lines, strings.TrimSuffix(s.Text(), "\r"))
	}
	if err := s.Err(); err != nil {
		return lines, fmt.Errorf("scan: %w", err)
	}

	return lines, nil
}

// Lines reads the file at path into lines.
func Lines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	lines, err := ReadLines(file)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	return lines, nil
}

// LinesIndexed is like Lines but yields each line alongside its
// zero-based index.
func LinesIndexed(path string) (iter.Seq2[int, string], error) {
	lines, err := Lines(path)
	if err != nil {
		return nil, err
	}
	return slices.All(lines), nil
}
