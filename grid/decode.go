package grid

import (
	"errors"
	"fmt"
	"iter"
	"unicode/utf8"

	"deedles.dev/xlattice/geom"
)

var (
	// ErrEmpty indicates that there were no cells to decode.
	ErrEmpty = errors.New("grid: no cells")

	// ErrRagged indicates that a line's length differs from the
	// first line's.
	ErrRagged = errors.New("grid: lines differ in length")
)

// Decode builds a grid from lines of text, one cell per rune. The
// cell function converts each rune and may reject it with an error,
// which is returned annotated with its line and column. All lines
// must have the same length.
func Decode[T any](lines iter.Seq2[int, string], cell func(geom.Point, rune) (T, error)) (*Grid[T], error) {
	d := decoder[T]{cell: cell}
	return d.Decode(lines)
}

// Runes decodes lines into a grid of their runes.
func Runes(lines iter.Seq2[int, string]) (*Grid[rune], error) {
	return Decode(lines, func(_ geom.Point, c rune) (rune, error) { return c, nil })
}

type decoder[T any] struct {
	cell  func(geom.Point, rune) (T, error)
	rect  geom.Rect
	cells []T
}

func (d *decoder[T]) Decode(lines iter.Seq2[int, string]) (g *Grid[T], err error) {
	defer d.catch(&err)

	for i, line := range lines {
		d.row(i+1, line)
	}
	if d.rect.Empty() {
		d.throw(ErrEmpty)
	}

	return &Grid[T]{Rect: d.rect, Cells: d.cells}, nil
}

func (d *decoder[T]) row(lineno int, line string) {
	width := uint(utf8.RuneCountInString(line))
	if d.rect.Height == 0 {
		d.rect.Width = width
	}
	if width != d.rect.Width {
		d.throw(fmt.Errorf("line %d: %w: expected %d, got %d", lineno, ErrRagged, d.rect.Width, width))
	}

	y := d.rect.Height
	var x uint
	for _, c := range line {
		p := geom.Pt(x, y)
		v, err := d.cell(p, c)
		if err != nil {
			d.throw(fmt.Errorf("line %d column %d: %w", lineno, x+1, err))
		}
		d.cells = append(d.cells, v)
		x++
	}
	d.rect.Height++
}

type decoderError struct {
	err error
}

func (d *decoder[T]) throw(err error) {
	if err != nil {
		panic(decoderError{err: err})
	}
}

func (d *decoder[T]) catch(err *error) {
	switch r := recover().(type) {
	case decoderError:
		*err = r.err
	case nil:
	default:
		panic(r)
	}
}
