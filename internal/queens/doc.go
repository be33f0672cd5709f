// Package queens defines the shared value types that flow between the
// solver packages: the compact Square encoding, the Solution placement
// vector, and the combinable Result pair.
//
// # Coordinate model
//
// The board is N×N. A file is a column (0..N-1) and doubles as the
// search depth; a rank is a row (0..N-1). A Square packs both into one
// integer as file*N + rank:
//
//	rank
//	 3 |  3  7 11 15
//	 2 |  2  6 10 14
//	 1 |  1  5  9 13
//	 0 |  0  4  8 12
//	   +-------------
//	      0  1  2  3  file        (N = 4)
//
// # Solutions and results
//
// A Solution stores one rank per file, index = file. It is produced
// exactly once, as a copy of the search stack the moment every file
// holds a queen, and is never mutated afterwards.
//
// A Result pairs a solution count with the solutions collected so far.
// Results from independent search partitions merge by summing counts
// and concatenating lists:
//
//	total := queens.Result{}
//	for _, partial := range partials {
//	    total.Merge(partial)
//	}
//
// Merge order is whatever the caller chose; no canonical order is
// implied. Result.SortSolutions provides lexicographic order on demand.
//
// The types here are deliberately plain: no synchronization, no hidden
// sharing. Each search owns its Result until it hands it back, so the
// merge point is the only place two results ever meet.
package queens
