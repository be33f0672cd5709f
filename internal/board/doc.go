// Package board implements the attacked-square tracking structure at
// the heart of the solver, providing constant-time answers to "is this
// square attacked by any placed queen?".
//
// # Overview
//
// A queen attacks along its rank, its file, and its two diagonals.
// Rather than storing queen positions and testing each candidate
// square against every queen, the tracker keeps one boolean per line
// of attack:
//
//	┌─────────────────────────────────────┐
//	│            TRACKER                  │
//	├─────────────────────────────────────┤
//	│  ranks[N]        one per row        │
//	│  files[N]        one per column     │
//	│  rightDiags[2N-1] index r-f+N-1     │
//	│  leftDiags[2N-1]  index r+f         │
//	└─────────────────────────────────────┘
//
// A square (f, r) is attacked iff any of the four entries covering it
// is set. Adding or removing a queen touches exactly four booleans, so
// both updates and queries are O(1).
//
// # Diagonal indexing
//
// Every square on the same rising diagonal shares the value rank-file;
// shifting by N-1 maps the range [-(N-1), N-1] onto [0, 2N-2]. Every
// square on the same falling diagonal shares rank+file, already in
// [0, 2N-2]. For N = 4:
//
//	rank          rising (r-f+3)        falling (r+f)
//	 3 | Q . . .     3 4 5 6              3 4 5 6
//	 2 | . . . .     2 3 4 5              2 3 4 5
//	 1 | . . . .     1 2 3 4              1 2 3 4
//	 0 | . . . .     0 1 2 3              0 1 2 3
//	   +--------
//	     0 1 2 3  file
//
// # The fast-removal precondition
//
// RemoveQueen clears all four flags unconditionally. That is only
// sound when exactly one queen contributed to each flag, which holds
// precisely when no two currently placed queens attack each other —
// the invariant the backtracking search maintains at all times. The
// tracker does not reference-count its flags; it trusts its single
// caller to uphold the invariant.
//
// # Ownership
//
// One tracker, one search, one goroutine. The tracker carries no
// locks because the solver's work decomposition gives every concurrent
// search its own instance. AttackedSquares is the one O(N²) method and
// exists for diagnostics and tests only.
package board
