package align

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvalign/matrix"
)

// Grid is a filled dynamic-programming matrix F together with the move
// recorded for every cell. Cell (i, j) scores the prefixes A[:i] and B[:j].
// A Grid is never mutated after its builder returns and may be shared by
// concurrent readers.
type Grid struct {
	f     *matrix.Dense
	moves []Direction // row-major, same shape as f
	rows  int
	cols  int
	order TieBreak
}

// newGrid allocates a zeroed (n+1)×(m+1) grid.
func newGrid(n, m int, order TieBreak) (*Grid, error) {
	f, err := matrix.NewDense(n+1, m+1)
	if err != nil {
		return nil, err
	}

	return &Grid{
		f:     f,
		moves: make([]Direction, (n+1)*(m+1)),
		rows:  n + 1,
		cols:  m + 1,
		order: order,
	}, nil
}

// Rows returns |A|+1.
func (g *Grid) Rows() int { return g.rows }

// Cols returns |B|+1.
func (g *Grid) Cols() int { return g.cols }

// Order returns the tie-break order the grid was filled with.
func (g *Grid) Order() TieBreak { return g.order }

// fits reports whether g has the shape of a grid built for a and b.
func (g *Grid) fits(a, b string) bool {
	return g.rows == len(a)+1 && g.cols == len(b)+1
}

func (g *Grid) inBounds(i, j int) bool {
	return i >= 0 && i < g.rows && j >= 0 && j < g.cols
}

// Score returns F[i][j].
func (g *Grid) Score(i, j int) (float64, error) {
	return g.f.At(i, j)
}

// Move returns the direction recorded for cell (i, j).
func (g *Grid) Move(i, j int) (Direction, error) {
	if !g.inBounds(i, j) {
		return None, fmt.Errorf("Grid.Move(%d,%d): %w", i, j, matrix.ErrOutOfRange)
	}
	return g.moves[i*g.cols+j], nil
}

// Row returns a copy of row i of F.
func (g *Grid) Row(i int) ([]float64, error) {
	row, err := g.f.RowView(i)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(row))
	copy(out, row)

	return out, nil
}

// Matrix returns a deep copy of F.
func (g *Grid) Matrix() *matrix.Dense {
	return g.f.Clone().(*matrix.Dense)
}

// Equal reports whether both grids hold bit-identical scores and moves.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if !g.f.Equal(o.f) || len(g.moves) != len(o.moves) {
		return false
	}
	for k := range g.moves {
		if g.moves[k] != o.moves[k] {
			return false
		}
	}
	return true
}

// String dumps F one bracketed row per line.
func (g *Grid) String() string { return g.f.String() }

// MovesString dumps the recorded moves as arrows, one row per line.
func (g *Grid) MovesString() string {
	var b strings.Builder
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(g.moves[i*g.cols+j].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *Grid) setMove(i, j int, d Direction) { g.moves[i*g.cols+j] = d }

func (g *Grid) move(i, j int) Direction { return g.moves[i*g.cols+j] }

// at reads F[i][j] for coordinates the caller has already bounds-checked.
func (g *Grid) at(i, j int) float64 {
	v, _ := g.f.At(i, j)
	return v
}
