// Package lvalign aligns pairs of sequences by dynamic programming: global
// Needleman–Wunsch alignment with match/mismatch scoring, and overlap
// (semi-global) alignment scored by a substitution table such as BLOSUM62.
//
// 🚀 What is inside?
//
//	• align/  : grid builders, traceback, Global and Overlap entry points
//	• subst/  : substitution tables: delimited-text reader, embedded BLOSUM62
//	• matrix/ : the dense float64 storage behind every grid and table
//	• cmd/lvalign: command line front end (FASTA or literal input)
//
// ✨ Guarantees
//
//   - Deterministic – ties are broken by an explicit TieBreak order
//   - Inspectable – every call returns the filled Grid with its moves
//   - Reproducible – both traceback strategies yield identical output
//
// Quick example:
//
//	A:  G-ATTACA
//	B:  GCATG-CU        score 0 (match 1, mismatch -1, gap -1)
//
//	go install github.com/katalvlaran/lvalign/cmd/lvalign@latest
//	lvalign global -a GATTACA -b GCATGCU -gap -1
package lvalign
