package queens

import (
	"golang.org/x/exp/slices"
)

// Square is the compact integer encoding of a (file, rank) pair on an
// N×N board: file*N + rank. The encoding is bijective for
// 0 <= file, rank < N and is the externally visible representation of
// a placed queen.
type Square int

// SquareOf encodes a (file, rank) pair for a board of size n.
func SquareOf(file, rank, n int) Square {
	return Square(file*n + rank)
}

// File decodes the file (column) component for a board of size n.
func (s Square) File(n int) int {
	return int(s) / n
}

// Rank decodes the rank (row) component for a board of size n.
func (s Square) Rank(n int) int {
	return int(s) % n
}

// Solution is one complete non-attacking placement of N queens.
// Index is the file, value is the rank of the queen on that file.
// A Solution is immutable once produced: it is a copy of the search
// stack taken at the moment all files were filled.
type Solution []int

// Clone returns an independent copy of the solution.
func (s Solution) Clone() Solution {
	out := make(Solution, len(s))
	copy(out, s)
	return out
}

// Valid reports whether the placement is a genuine non-attacking
// arrangement: every rank in range, no two queens sharing a rank, and
// no two sharing a diagonal. Files are distinct by construction since
// the index is the file.
func (s Solution) Valid() bool {
	n := len(s)
	for file, rank := range s {
		if rank < 0 || rank >= n {
			return false
		}
		for other := file + 1; other < n; other++ {
			if s[other] == rank {
				return false
			}
			if abs(s[other]-rank) == other-file {
				return false
			}
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Result is the combinable outcome of one or more searches: a solution
// count and the solutions collected so far, in discovery order.
//
// Results from independent partitions combine by summing counts and
// concatenating solution lists. The concatenation order reflects how
// the partitions were merged, not any canonical order; callers that
// need a defined order should call SortSolutions.
type Result struct {
	Count     uint64
	Solutions []Solution
}

// Merge folds another partial result into r: counts are summed and
// solution lists concatenated.
func (r *Result) Merge(other Result) {
	r.Count += other.Count
	r.Solutions = append(r.Solutions, other.Solutions...)
}

// SortSolutions orders the collected solutions lexicographically by
// rank sequence. This is an opt-in convenience: Solve makes no ordering
// promise of its own.
func (r *Result) SortSolutions() {
	slices.SortFunc(r.Solutions, func(a, b Solution) int {
		return slices.Compare(a, b)
	})
}
