// Package align computes optimal pairwise alignments of two symbol sequences
// by dynamic programming over a full (|A|+1)×(|B|+1) score matrix.
//
// 🚀 Two modes:
//
//   - Global (Needleman–Wunsch): every symbol of both sequences is placed,
//     scored with constant match / mismatch / gap values.
//   - Overlap (semi-global): a prefix of one sequence and a suffix of the
//     other may dangle unaligned at no cost, scored with a substitution
//     table (e.g. BLOSUM62) and a constant gap penalty. This models the
//     overlap between two sequencing reads.
//
// ✨ Each mode is split into a builder and a traceback:
//
//	grid, err := align.BuildGlobal(a, b, opts)      // fill F
//	res, err := align.TracebackGlobal(grid, a, b, opts)
//
// or in one call:
//
//	res, grid, err := align.Global(a, b, align.DefaultGlobalOptions())
//	res, grid, err := align.Overlap(a, b, subst.BLOSUM62(), align.DefaultOverlapOptions())
//
// The builder records one backpointer per cell while filling. On score ties
// the move is chosen by a TieBreak order; the default HighRoad prefers a gap
// in B (vertical), then the diagonal, then a gap in A (horizontal). The
// Recompute strategy re-derives each move from the scores instead and yields
// the same alignment.
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) for scores plus one byte per cell for backpointers
package align
