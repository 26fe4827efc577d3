package align

import (
	"fmt"
	"math"
)

// GapChar marks a gap in an aligned string.
const GapChar = '-'

// Direction is the move that produced a cell's score, i.e. the step taken
// backwards from that cell during traceback.
type Direction uint8

const (
	// None marks the origin (0,0); the traceback stops there.
	None Direction = iota
	// Up consumes a symbol of A against a gap in B (vertical move).
	Up
	// Diag consumes one symbol of each sequence (match or mismatch).
	Diag
	// Left consumes a symbol of B against a gap in A (horizontal move).
	Left

	numDirections
)

func (d Direction) String() string {
	switch d {
	case None:
		return "×"
	case Up:
		return "↑"
	case Diag:
		return "↖"
	case Left:
		return "←"
	}
	return "?"
}

// TieBreak is the priority in which equally scored moves are taken.
// It must be a permutation of Up, Diag and Left.
type TieBreak [3]Direction

var (
	// HighRoad prefers a gap in B, then the diagonal, then a gap in A.
	// It is the canonical order and the default.
	HighRoad = TieBreak{Up, Diag, Left}

	// LowRoad prefers a gap in A, then the diagonal, then a gap in B.
	LowRoad = TieBreak{Left, Diag, Up}
)

// valid reports whether o is a permutation of Up, Diag, Left.
func (o TieBreak) valid() bool {
	var seen [numDirections]bool
	for _, d := range o {
		if d == None || d >= numDirections || seen[d] {
			return false
		}
		seen[d] = true
	}
	return true
}

// orDefault maps the zero TieBreak to HighRoad.
func (o TieBreak) orDefault() TieBreak {
	if o == (TieBreak{}) {
		return HighRoad
	}
	return o
}

// candidates holds the three candidate scores of a cell, indexed by Direction.
type candidates [numDirections]float64

// choose returns the cell maximum and the first direction in o reaching it.
func (o TieBreak) choose(c candidates) (float64, Direction) {
	best := math.Max(c[Diag], math.Max(c[Left], c[Up]))
	for _, d := range o {
		if c[d] == best {
			return best, d
		}
	}
	// unreachable for finite candidates
	return best, o[len(o)-1]
}

// Strategy selects how the traceback decides each move.
type Strategy uint8

const (
	// Backpointers follows the directions recorded while filling the grid.
	Backpointers Strategy = iota
	// Recompute re-derives every move by recomputing the candidate scores
	// and comparing them for exact equality with the cell value.
	Recompute
)

func (s Strategy) String() string {
	switch s {
	case Backpointers:
		return "backpointers"
	case Recompute:
		return "recompute"
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

// ParseStrategy maps "backpointers" or "recompute" to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "backpointers", "":
		return Backpointers, nil
	case "recompute":
		return Recompute, nil
	}
	return 0, fmt.Errorf("unknown strategy %q: %w", s, ErrBadOptions)
}

// Coord addresses a cell (I, J) of the grid: I symbols of A and J symbols
// of B consumed.
type Coord struct {
	I, J int
}

// Result is one optimal alignment.
// AlignA and AlignB have equal length; GapChar marks gaps.
type Result struct {
	AlignA string
	AlignB string
	Score  float64
}

// Best is the highest last-row/last-column cell of an overlap grid.
// Found is false when no such cell scored >= 0.
type Best struct {
	Score float64
	Pos   Coord
	Found bool
}

// Scorer scores aligning symbol a (from A) against symbol b (from B).
// A pair the scorer does not define must return an error.
type Scorer interface {
	Score(a, b byte) (float64, error)
}

// ScorerFunc adapts a function to the Scorer interface.
type ScorerFunc func(a, b byte) (float64, error)

// Score calls f(a, b).
func (f ScorerFunc) Score(a, b byte) (float64, error) { return f(a, b) }

// GlobalOptions configures global alignment.
//
// Fields:
//   - Match, Mismatch: diagonal scores for equal / different symbols.
//   - Gap: score added per gap (typically negative).
//   - Order: tie-break priority; the zero value means HighRoad.
//   - Strategy: how the traceback decides moves.
//   - StopAtBoundary: end the traceback as soon as i == 0 or j == 0
//     instead of walking the forced gap run to (0,0). The leading
//     symbols of the longer sequence are then missing from the result.
type GlobalOptions struct {
	Match          float64
	Mismatch       float64
	Gap            float64
	Order          TieBreak
	Strategy       Strategy
	StopAtBoundary bool
}

// DefaultGlobalOptions returns match=1, mismatch=-1, gap=-2 with HighRoad
// tie-breaking and backpointer traceback.
func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{
		Match:    1.0,
		Mismatch: -1.0,
		Gap:      -2.0,
		Order:    HighRoad,
		Strategy: Backpointers,
	}
}

func (o GlobalOptions) validate() error {
	for _, v := range [...]float64{o.Match, o.Mismatch, o.Gap} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite score %v: %w", v, ErrBadOptions)
		}
	}
	return validateCommon(o.Order, o.Strategy)
}

// OverlapOptions configures overlap alignment.
// Gap is the score added per gap; Order and Strategy as in GlobalOptions.
type OverlapOptions struct {
	Gap      float64
	Order    TieBreak
	Strategy Strategy
}

// DefaultOverlapOptions returns gap=-2 with HighRoad tie-breaking and
// backpointer traceback. Protein overlaps are usually run with a harsher
// gap such as -8.
func DefaultOverlapOptions() OverlapOptions {
	return OverlapOptions{
		Gap:      -2.0,
		Order:    HighRoad,
		Strategy: Backpointers,
	}
}

func (o OverlapOptions) validate() error {
	if math.IsNaN(o.Gap) || math.IsInf(o.Gap, 0) {
		return fmt.Errorf("non-finite gap %v: %w", o.Gap, ErrBadOptions)
	}
	return validateCommon(o.Order, o.Strategy)
}

func validateCommon(order TieBreak, s Strategy) error {
	if !order.orDefault().valid() {
		return fmt.Errorf("tie-break order %v: %w", order, ErrBadOptions)
	}
	if s != Backpointers && s != Recompute {
		return fmt.Errorf("%v: %w", s, ErrBadOptions)
	}
	return nil
}
