package align

import "fmt"

// stepFunc picks the move out of an interior cell (i > 0, j > 0).
type stepFunc func(i, j int) (Direction, error)

// path accumulates alignment columns back to front.
type path struct {
	a, b []byte
}

func newPath(capacity int) path {
	return path{a: make([]byte, 0, capacity), b: make([]byte, 0, capacity)}
}

func (p *path) push(x, y byte) {
	p.a = append(p.a, x)
	p.b = append(p.b, y)
}

// strings returns the columns in left-to-right order.
func (p *path) strings() (string, string) {
	for l, r := 0, len(p.a)-1; l < r; l, r = l+1, r-1 {
		p.a[l], p.a[r] = p.a[r], p.a[l]
		p.b[l], p.b[r] = p.b[r], p.b[l]
	}
	return string(p.a), string(p.b)
}

// walk steps backwards from (i, j) until done reports true or the origin is
// reached. On the zero row only Left is possible and on the zero column only
// Up, whatever step would say. It returns the collected columns and the cell
// where it stopped.
func walk(a, b string, i, j int, done func(i, j int) bool, step stepFunc) (path, int, int, error) {
	p := newPath(i + j)
	for !done(i, j) && (i > 0 || j > 0) {
		var d Direction
		switch {
		case i == 0:
			d = Left
		case j == 0:
			d = Up
		default:
			var err error
			if d, err = step(i, j); err != nil {
				return p, i, j, err
			}
		}

		switch d {
		case Up: // gap in B
			p.push(a[i-1], GapChar)
			i--
		case Diag:
			p.push(a[i-1], b[j-1])
			i--
			j--
		case Left: // gap in A
			p.push(GapChar, b[j-1])
			j--
		default:
			return p, i, j, fmt.Errorf("cell (%d,%d) has no recorded move: %w", i, j, ErrInvalidPosition)
		}
	}

	return p, i, j, nil
}

// recorded follows the backpointers stored by the builder.
func (g *Grid) recorded(i, j int) (Direction, error) {
	return g.move(i, j), nil
}

// retrace returns the first direction in o whose candidate equals cur,
// falling back to the last direction when none of the others match.
func (o TieBreak) retrace(cur float64, c candidates) Direction {
	last := len(o) - 1
	for _, d := range o[:last] {
		if cur == c[d] {
			return d
		}
	}
	return o[last]
}

// globalRecompute re-derives moves of a global grid from its scores.
func globalRecompute(g *Grid, a, b string, opts GlobalOptions) stepFunc {
	order := opts.Order.orDefault()
	return func(i, j int) (Direction, error) {
		sub := opts.Mismatch
		if a[i-1] == b[j-1] {
			sub = opts.Match
		}
		var c candidates
		c[Up] = g.at(i-1, j) + opts.Gap
		c[Diag] = g.at(i-1, j-1) + sub
		c[Left] = g.at(i, j-1) + opts.Gap
		return order.retrace(g.at(i, j), c), nil
	}
}

// overlapRecompute re-derives moves of an overlap grid from its scores,
// looking up diagonal scores in s.
func overlapRecompute(g *Grid, a, b string, s Scorer, opts OverlapOptions) stepFunc {
	order := opts.Order.orDefault()
	return func(i, j int) (Direction, error) {
		sub, err := s.Score(a[i-1], b[j-1])
		if err != nil {
			return None, fmt.Errorf("align: overlap traceback at (%d,%d): %w", i, j, err)
		}
		var c candidates
		c[Up] = g.at(i-1, j) + opts.Gap
		c[Diag] = g.at(i-1, j-1) + sub
		c[Left] = g.at(i, j-1) + opts.Gap
		return order.retrace(g.at(i, j), c), nil
	}
}
