package align

import "errors"

var (
	// ErrInvalidPosition indicates a traceback start cell outside the grid,
	// or an empty sequence in global mode.
	ErrInvalidPosition = errors.New("align: invalid start position")

	// ErrNoOverlap indicates that no last-row or last-column cell of an
	// overlap grid scored >= 0, so there is no start for the traceback.
	ErrNoOverlap = errors.New("align: no overlap found")

	// ErrBadOptions indicates NaN/Inf scoring parameters, an invalid
	// tie-break order or an unknown traceback strategy.
	ErrBadOptions = errors.New("align: bad options")

	// ErrNilGrid indicates a traceback was invoked without a grid.
	ErrNilGrid = errors.New("align: nil grid")

	// ErrNilScorer indicates overlap mode was invoked without a substitution scorer.
	ErrNilScorer = errors.New("align: nil scorer")
)
