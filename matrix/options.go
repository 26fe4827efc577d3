// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults (single source of truth).
package matrix

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks
	// such as ValidateSymmetric when the caller has no better value.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation in Set.
	DefaultValidateNaNInf = true
)
