// Package coordinator implements the work-decomposition layer of the
// solver: it partitions the search space by first-queen rank, runs the
// partitions on a bounded worker pool, and merges their results.
//
// # Overview
//
// Fixing the rank of the queen on file 0 splits the full search tree
// into N disjoint subtrees. Each subtree is handed to its own search,
// which owns every piece of state it mutates, so the partitions run
// with no synchronization at all until the final join:
//
//	                    ┌──────────────────┐
//	                    │   COORDINATOR    │
//	                    └────────┬─────────┘
//	          one search per first rank, pool ≤ min(N, workers)
//	        ┌──────────┬─────────┼─────────────────┐
//	        ▼          ▼         ▼                 ▼
//	   ┌────────┐ ┌────────┐ ┌────────┐       ┌────────┐
//	   │rank 0  │ │rank 1  │ │rank 2  │  ...  │rank N-1│
//	   │solver  │ │solver  │ │solver  │       │solver  │
//	   └───┬────┘ └───┬────┘ └───┬────┘       └───┬────┘
//	       └──────────┴────┬─────┴────────────────┘
//	                       ▼  join, then merge
//	              Result{count, solutions}
//
// Merging sums counts and concatenates solution lists. The coordinator
// happens to merge in ascending rank order because the per-rank slots
// are a pre-sized slice, but callers must not lean on that: the only
// contract is that the multiset of solutions is identical across runs
// and across worker counts.
//
// # First-solution mode
//
// "Find one solution" deliberately does not race the pool. Racing
// would make the winner depend on goroutine scheduling, so the mode
// instead tries first ranks strictly ascending, one bounded search at
// a time, and stops at the first hit. Slower, but the answer is the
// same on every run.
//
// # Shared state
//
// The one cross-search mutable object is the solution printer, which
// serializes increment-and-print behind a mutex so that emitted lines
// carry unique, monotonic ordinals. It is injected into each search at
// construction; there is no package-level state anywhere in the
// solver.
//
// # Errors
//
// Configuration problems (board size or worker count below 1) are
// caught by Config.Validate before any work starts, with all
// violations combined into one error. Everything past validation is
// deterministic pure computation and cannot fail at runtime.
package coordinator
