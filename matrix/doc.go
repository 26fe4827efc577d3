// Package matrix provides the dense numeric storage used by the aligners.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set that
//     return sentinel errors instead of panicking.
//   - RowView for no-copy access to a single row, used by the dynamic
//     programming fill loops in package align.
//   - Validators (ValidateSquare, ValidateSymmetric, ...) shared by the
//     substitution-table loader in package subst.
//
// Dense keeps O(r·c) memory; it is meant for the full (|A|+1)×(|B|+1)
// score matrices of pairwise alignment, not for sparse data.
package matrix
