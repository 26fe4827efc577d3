// Package subst holds substitution tables: immutable (symbol, symbol) → score
// mappings such as BLOSUM62, used by overlap alignment.
package subst

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvalign/matrix"
)

var (
	// ErrMissingPair indicates a lookup of a symbol pair the table does not define.
	ErrMissingPair = errors.New("subst: missing substitution pair")

	// ErrMalformedTable indicates inconsistent labels or cells in a table source.
	ErrMalformedTable = errors.New("subst: malformed table")
)

const noSymbol = -1

// Table scores aligning a row symbol (from sequence A) against a column
// symbol (from sequence B). Lookups are ordered: Score(a, b) reads row a,
// column b, and symmetry is never assumed.
type Table struct {
	rows, cols []byte
	rowIdx     [256]int
	colIdx     [256]int
	scores     *matrix.Dense
}

// New builds a square table whose rows and columns share the same labels.
func New(symbols []byte, scores [][]float64) (*Table, error) {
	return NewLabeled(symbols, symbols, scores)
}

// NewLabeled builds a table with row labels rows and column labels cols.
// scores[r][c] is the score of rows[r] against cols[c].
func NewLabeled(rows, cols []byte, scores [][]float64) (*Table, error) {
	if len(rows) == 0 || len(cols) == 0 {
		return nil, fmt.Errorf("empty labels: %w", ErrMalformedTable)
	}
	if len(scores) != len(rows) {
		return nil, fmt.Errorf("%d score rows for %d labels: %w", len(scores), len(rows), ErrMalformedTable)
	}

	t := &Table{
		rows: append([]byte(nil), rows...),
		cols: append([]byte(nil), cols...),
	}
	if err := index(&t.rowIdx, t.rows); err != nil {
		return nil, fmt.Errorf("row labels: %w", err)
	}
	if err := index(&t.colIdx, t.cols); err != nil {
		return nil, fmt.Errorf("column labels: %w", err)
	}

	m, err := matrix.NewDense(len(rows), len(cols))
	if err != nil {
		return nil, err
	}
	for r, row := range scores {
		if len(row) != len(cols) {
			return nil, fmt.Errorf("row %q has %d cells, want %d: %w", rows[r], len(row), len(cols), ErrMalformedTable)
		}
		for c, v := range row {
			if err := m.Set(r, c, v); err != nil {
				return nil, fmt.Errorf("cell (%q,%q): %v: %w", rows[r], cols[c], err, ErrMalformedTable)
			}
		}
	}
	t.scores = m

	return t, nil
}

func index(idx *[256]int, labels []byte) error {
	for k := range idx {
		idx[k] = noSymbol
	}
	for k, s := range labels {
		if idx[s] != noSymbol {
			return fmt.Errorf("duplicate symbol %q: %w", s, ErrMalformedTable)
		}
		idx[s] = k
	}
	return nil
}

// Identity builds a square table over alphabet scoring match on the
// diagonal and mismatch elsewhere, the table form of the scalar model.
func Identity(alphabet []byte, match, mismatch float64) (*Table, error) {
	scores := make([][]float64, len(alphabet))
	for r := range alphabet {
		scores[r] = make([]float64, len(alphabet))
		for c := range alphabet {
			scores[r][c] = mismatch
			if r == c {
				scores[r][c] = match
			}
		}
	}
	return New(alphabet, scores)
}

// Score returns the score of a (row) against b (column).
func (t *Table) Score(a, b byte) (float64, error) {
	r, c := t.rowIdx[a], t.colIdx[b]
	if r == noSymbol || c == noSymbol {
		return 0, fmt.Errorf("(%q, %q): %w", a, b, ErrMissingPair)
	}
	v, _ := t.scores.At(r, c)
	return v, nil
}

// Has reports whether the pair (a, b) is defined.
func (t *Table) Has(a, b byte) bool {
	return t.rowIdx[a] != noSymbol && t.colIdx[b] != noSymbol
}

// RowSymbols returns a copy of the row labels in table order.
func (t *Table) RowSymbols() []byte { return append([]byte(nil), t.rows...) }

// ColSymbols returns a copy of the column labels in table order.
func (t *Table) ColSymbols() []byte { return append([]byte(nil), t.cols...) }

// Covers returns the first symbol pair of a × b the table does not define.
// ok is true when every pair is defined.
func (t *Table) Covers(a, b string) (x, y byte, ok bool) {
	for k := 0; k < len(a); k++ {
		if t.rowIdx[a[k]] == noSymbol {
			return a[k], firstOr(b), false
		}
	}
	for k := 0; k < len(b); k++ {
		if t.colIdx[b[k]] == noSymbol {
			return firstOr(a), b[k], false
		}
	}
	return 0, 0, true
}

func firstOr(s string) byte {
	if s == "" {
		return 0
	}
	return s[0]
}

// Bounds returns the lowest and highest score in the table.
func (t *Table) Bounds() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	t.scores.Do(func(_, _ int, v float64) bool {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
		return true
	})
	return lo, hi
}

// ValidateSymmetric checks that the table is square with identical row and
// column labels in the same order, and that score(x, y) and score(y, x)
// differ by at most tol.
func (t *Table) ValidateSymmetric(tol float64) error {
	if string(t.rows) != string(t.cols) {
		return fmt.Errorf("subst: row and column labels differ: %w", matrix.ErrDimensionMismatch)
	}
	return matrix.ValidateSymmetric(t.scores, tol)
}
