package aoc

import (
	"reflect"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// TransposeLines turns the columns of lines into rows: output line i is
// the i-th rune of every input line, in order.
//
// The width is taken from the first line. Runes past that width are
// dropped, and a line too short for column i contributes nothing to it.
func TransposeLines(lines []string) []string {
	if len(lines) == 0 {
		return []string{}
	}
	width := utf8.RuneCountInString(lines[0])
	cols := make([]strings.Builder, width)
	for _, line := range lines {
		i := 0
		for _, r := range line {
			if i >= width {
				break
			}
			cols[i].WriteRune(r)
			i++
		}
	}
	out := make([]string, width)
	for i := range cols {
		out[i] = cols[i].String()
	}
	return out
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Grid is a rectangular grid indexed as g[y][x].
type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

// AtOk is like At but reports false for points outside the grid.
func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.X < 0 || p.Y < 0 || p.Y >= len(g) || p.X >= len(g[0]) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// GridFromLines returns a grid with one row per line. Rows are padded
// with spaces or cut to the width of the first line.
func GridFromLines(lines []string) Grid[rune] {
	if len(lines) == 0 {
		return Grid[rune]{}
	}
	width := utf8.RuneCountInString(lines[0])
	g := MakeGrid[rune](width, len(lines))
	for y, line := range lines {
		row := g[y]
		for x := range row {
			row[x] = ' '
		}
		x := 0
		for _, r := range line {
			if x >= width {
				break
			}
			row[x] = r
			x++
		}
	}
	return g
}

// Lines renders a rune grid back into one string per row.
func Lines(g Grid[rune]) []string {
	out := make([]string, len(g))
	for y, row := range g {
		out[y] = string(row)
	}
	return out
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

var hashers sync.Map // reflect.Type => func(*Grid[T]) deephash.Sum

// Hash returns a hash of the grid contents, handy for spotting repeated
// states. It is safe for concurrent use.
func (g Grid[T]) Hash() deephash.Sum {
	rt := reflect.TypeOf(g)
	h, ok := hashers.Load(rt)
	if !ok {
		h, _ = hashers.LoadOrStore(rt, deephash.HasherForType[Grid[T]]())
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

// TransposeInto writes the transpose of g into out, which must be at
// least Size().Y wide and Size().X tall.
func (g Grid[T]) TransposeInto(out Grid[T]) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			out[x][y] = g[y][x]
		}
	}
}

func (g Grid[T]) Transpose() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.TransposeInto(out)
	return out
}

func (g Grid[T]) RotateCounterClockwiseInto(out Grid[T]) {
	size := g.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			out[size.X-1-x][y] = g[y][x]
		}
	}
}

func (g Grid[T]) RotateCounterClockwise() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.RotateCounterClockwiseInto(out)
	return out
}
