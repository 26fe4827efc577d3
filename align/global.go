package align

import "fmt"

// Global alignment (Needleman–Wunsch)
//
// Description:
//
//	Every symbol of A and B is placed, either against a symbol of the other
//	sequence (match/mismatch) or against a gap.
//
// Algorithm Outline:
//  1. Let n = len(a), m = len(b). Allocate (n+1)x(m+1) matrix F.
//  2. Initialize:
//     F[0][0] = 0
//     F[0][j] = F[0][j-1] + gap   (leading gaps in A)
//     F[i][0] = F[i-1][0] + gap   (leading gaps in B)
//  3. For i = 1..n, j = 1..m:
//     diag = F[i-1][j-1] + (match if a[i-1]==b[j-1] else mismatch)
//     up   = F[i-1][j] + gap
//     left = F[i][j-1] + gap
//     F[i][j] = max(diag, up, left), move = first of Order reaching it
//  4. Trace back from (n,m) to (0,0).
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m)

// BuildGlobal fills the global-alignment grid of a (rows) against b (columns).
// Empty sequences are valid and produce a pure-gap boundary.
//
// Errors:
//   - ErrBadOptions: NaN/Inf scores, invalid Order or Strategy.
func BuildGlobal(a, b string, opts GlobalOptions) (*Grid, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	order := opts.Order.orDefault()

	g, err := newGrid(len(a), len(b), order)
	if err != nil {
		return nil, err
	}

	prev, _ := g.f.RowView(0)
	for j := 1; j < g.cols; j++ {
		prev[j] = prev[j-1] + opts.Gap
		g.setMove(0, j, Left)
	}

	var c candidates
	for i := 1; i < g.rows; i++ {
		cur, _ := g.f.RowView(i)
		cur[0] = prev[0] + opts.Gap
		g.setMove(i, 0, Up)

		for j := 1; j < g.cols; j++ {
			sub := opts.Mismatch
			if a[i-1] == b[j-1] {
				sub = opts.Match
			}
			c[Diag] = prev[j-1] + sub
			c[Up] = prev[j] + opts.Gap
			c[Left] = cur[j-1] + opts.Gap

			var d Direction
			cur[j], d = order.choose(c)
			g.setMove(i, j, d)
		}
		prev = cur
	}

	return g, nil
}

// TracebackGlobal reconstructs one optimal global alignment from g, starting
// at (len(a), len(b)). opts must carry the scores g was built with.
//
// Unless opts.StopAtBoundary is set, the walk continues along the zero row
// or column to (0,0), so both inputs are fully reproduced by the result.
//
// Errors:
//   - ErrInvalidPosition: a or b is empty, or g was not built for a and b.
//   - ErrNilGrid, ErrBadOptions.
func TracebackGlobal(g *Grid, a, b string, opts GlobalOptions) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	i, j := len(a), len(b)
	if i == 0 || j == 0 || !g.fits(a, b) {
		return Result{}, fmt.Errorf("[%d, %d] in a %dx%d grid: %w", i, j, g.rows, g.cols, ErrInvalidPosition)
	}

	done := func(i, j int) bool { return i == 0 && j == 0 }
	if opts.StopAtBoundary {
		done = func(i, j int) bool { return i == 0 || j == 0 }
	}
	step := g.recorded
	if opts.Strategy == Recompute {
		step = globalRecompute(g, a, b, opts)
	}

	p, _, _, err := walk(a, b, i, j, done, step)
	if err != nil {
		return Result{}, err
	}
	alignA, alignB := p.strings()

	return Result{AlignA: alignA, AlignB: alignB, Score: g.at(i, j)}, nil
}

// Global builds the grid for a and b and traces back one optimal alignment.
// The grid is returned for inspection; its bottom-right cell is the score.
func Global(a, b string, opts GlobalOptions) (Result, *Grid, error) {
	g, err := BuildGlobal(a, b, opts)
	if err != nil {
		return Result{}, nil, err
	}
	res, err := TracebackGlobal(g, a, b, opts)
	if err != nil {
		return Result{}, g, err
	}

	return res, g, nil
}
