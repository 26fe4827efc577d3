package align

import (
	"fmt"
	"strings"
)

// Overlap alignment (semi-global)
//
// Description:
//
//	The best alignment in which a prefix of one sequence and a suffix of
//	the other may hang unaligned at no cost:
//
//	  A:  ---PAW-HEAE
//	  B:  HEAGAWGHEE-
//
// Algorithm Outline:
//  1. F[0][*] = F[*][0] = 0 (skipping a prefix is free).
//  2. For i = 1..n, j = 1..m:
//     diag = F[i-1][j-1] + S(a[i-1], b[j-1])
//     left = F[i][j-1] + gap
//     up   = F[i-1][j] + gap
//     F[i][j] = max(diag, left, up)
//     On the last row or column, F[i][j] >= best moves best to (i,j), so the
//     latest cell wins a tie.
//  3. Trace back from best; the dangling suffix and prefix are spliced on.

// BuildOverlap fills the overlap grid of a (rows) against b (columns) using s
// for diagonal scores, and reports the best last-row/last-column cell.
//
// Errors:
//   - ErrNilScorer, ErrBadOptions.
//   - Any error returned by s, wrapped with the cell coordinates; the fill
//     stops at the first failing lookup.
func BuildOverlap(a, b string, s Scorer, opts OverlapOptions) (*Grid, Best, error) {
	if s == nil {
		return nil, Best{}, ErrNilScorer
	}
	if err := opts.validate(); err != nil {
		return nil, Best{}, err
	}
	order := opts.Order.orDefault()
	n, m := len(a), len(b)

	g, err := newGrid(n, m, order)
	if err != nil {
		return nil, Best{}, err
	}
	for j := 1; j <= m; j++ {
		g.setMove(0, j, Left)
	}
	for i := 1; i <= n; i++ {
		g.setMove(i, 0, Up)
	}

	var (
		best Best
		c    candidates
	)
	prev, _ := g.f.RowView(0)
	for i := 1; i <= n; i++ {
		cur, _ := g.f.RowView(i)
		for j := 1; j <= m; j++ {
			sub, err := s.Score(a[i-1], b[j-1])
			if err != nil {
				return nil, Best{}, fmt.Errorf("align: overlap fill at (%d,%d): %w", i, j, err)
			}
			c[Diag] = prev[j-1] + sub
			c[Left] = cur[j-1] + opts.Gap
			c[Up] = prev[j] + opts.Gap

			var d Direction
			cur[j], d = order.choose(c)
			g.setMove(i, j, d)

			if (i == n || j == m) && cur[j] >= best.Score {
				best = Best{Score: cur[j], Pos: Coord{I: i, J: j}, Found: true}
			}
		}
		prev = cur
	}

	return g, best, nil
}

// TracebackOverlap reconstructs the overlap alignment ending at start.
//
// When start.I == len(a), A finished first: B[start.J:] hangs past A's end,
// the walk runs until j == 0 and A[:i] is prepended against leading gaps.
// Otherwise B finished first and everything is mirrored. The result score
// is F[start].
//
// Errors:
//   - ErrInvalidPosition: g was not built for a and b, or start is not a
//     cell of its last row or last column.
//   - ErrNilGrid, ErrBadOptions; ErrNilScorer with the Recompute strategy.
func TracebackOverlap(g *Grid, a, b string, s Scorer, start Coord, opts OverlapOptions) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	if !g.fits(a, b) {
		return Result{}, fmt.Errorf("grid %dx%d for sequences of length %d, %d: %w",
			g.rows, g.cols, len(a), len(b), ErrInvalidPosition)
	}
	i, j := start.I, start.J
	if !g.inBounds(i, j) || (i != len(a) && j != len(b)) {
		return Result{}, fmt.Errorf("[%d, %d] is not on the last row or column: %w", i, j, ErrInvalidPosition)
	}

	step := g.recorded
	if opts.Strategy == Recompute {
		if s == nil {
			return Result{}, ErrNilScorer
		}
		step = overlapRecompute(g, a, b, s, opts)
	}

	aFirst := i == len(a)
	var tailA, tailB string
	var done func(i, j int) bool
	if aFirst {
		tailA, tailB = gaps(len(b)-j), b[j:]
		done = func(_, j int) bool { return j == 0 }
	} else {
		tailA, tailB = a[i:], gaps(len(a)-i)
		done = func(i, _ int) bool { return i == 0 }
	}

	p, i, j, err := walk(a, b, i, j, done, step)
	if err != nil {
		return Result{}, err
	}
	midA, midB := p.strings()

	var headA, headB string
	if aFirst {
		headA, headB = a[:i], gaps(i)
	} else {
		headA, headB = gaps(j), b[:j]
	}

	return Result{
		AlignA: headA + midA + tailA,
		AlignB: headB + midB + tailB,
		Score:  g.at(start.I, start.J),
	}, nil
}

// Overlap builds the overlap grid for a and b and traces back from the best
// last-row/last-column cell. The result score is that cell's score.
//
// Errors:
//   - ErrNoOverlap when no such cell scored >= 0 (including empty inputs).
//   - Everything BuildOverlap and TracebackOverlap return.
func Overlap(a, b string, s Scorer, opts OverlapOptions) (Result, *Grid, error) {
	g, best, err := BuildOverlap(a, b, s, opts)
	if err != nil {
		return Result{}, nil, err
	}
	if !best.Found {
		return Result{}, g, ErrNoOverlap
	}
	res, err := TracebackOverlap(g, a, b, s, best.Pos, opts)
	if err != nil {
		return Result{}, g, err
	}
	res.Score = best.Score

	return res, g, nil
}

func gaps(n int) string { return strings.Repeat(string(GapChar), n) }
