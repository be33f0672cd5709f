// Package search implements the iterative backtracking engine that
// enumerates non-attacking queen placements within one partition of
// the search space.
//
// # Overview
//
// A search places queens file by file, left to right. The explicit
// stack remembers one rank per occupied file, so stack depth always
// equals the next file to fill. There is no recursion: forward
// placement and backtracking are two loops trading control over the
// same stack.
//
//	          ┌────────────────────────────┐
//	          │          SOLVER            │
//	          ├────────────────────────────┤
//	          │ forward:  fill files with  │
//	          │   lowest safe rank         │◄──┐
//	          │                            │   │ alternative
//	 full ◄───│ depth == N: record         │   │ found
//	          │                            │   │
//	          │ backtrack: pop, rescan     │───┘
//	          │   strictly above popped    │
//	          │   rank; stop at depth 1    │───► partition exhausted
//	          └────────────────────────────┘
//
// # Partitioning
//
// Each solver is constructed with a fixed rank for the file-0 queen.
// That single choice carves the full search tree into N disjoint
// subtrees, one per first rank, which is why N solvers can run
// concurrently with no shared state and their results merge by simple
// addition. The backtracking loop enforces the partition boundary by
// refusing to pop below depth 1: unwinding the pinned queen would walk
// into a sibling partition.
//
// # Determinism
//
// Ranks are always scanned ascending, so for a given board size and
// first rank the sequence of solutions is fully determined. This is
// what makes the coordinator's sequential first-solution mode
// reproducible.
//
// # Invariants
//
//   - Stack depth never exceeds N and the loop never pops an empty
//     stack; both conditions panic if violated, since they can only be
//     reached through a bug in the loop itself.
//   - No two queens on the board attack each other at any point, which
//     is exactly the precondition the tracker's fast removal needs.
package search
