package search

import (
	"fmt"

	"github.com/csc14us/n-queens/internal/board"
	"github.com/csc14us/n-queens/internal/queens"
)

// Emitter receives each solution at the moment it is discovered,
// before the search moves on. Implementations shared across concurrent
// searches must serialize internally; the solver calls Emit from its
// own goroutine with no locking of its own.
type Emitter interface {
	Emit(sol queens.Solution)
}

// Stats counts the work one run performed. The counters are plain
// fields: each solver is single-threaded, so no atomics are needed,
// and callers read them after Run returns.
type Stats struct {
	Placements uint64 // Queens placed (including the fixed first queen)
	Backtracks uint64 // Queens removed while unwinding
	Solutions  uint64 // Complete placements found
}

// Solver runs the iterative backtracking loop for a single fixed
// first-queen rank. It exclusively owns one attack tracker and one
// search stack for its entire run; nothing is shared, so a solver is
// a self-contained unit of concurrent work.
//
// The first-queen rank pins file 0 and thereby defines this solver's
// partition of the search space. Partitions for different first ranks
// are disjoint, so their results merge without overlap.
type Solver struct {
	n         int
	firstRank int
	tracker   *board.Tracker
	stack     *Stack
	firstOnly bool
	collect   bool
	emitter   Emitter
	stats     Stats
	ran       bool
}

// Options configure a solver beyond its board size and partition.
type Options struct {
	// FirstOnly stops the run immediately after its first solution.
	FirstOnly bool

	// Collect records a copy of every solution in the returned Result.
	// When false the result carries only the count.
	Collect bool

	// Emitter, if non-nil, is handed every solution as it is found.
	Emitter Emitter
}

// NewSolver creates a solver for an n×n board whose file-0 queen is
// pinned to firstRank.
//
// Parameters:
//   - boardSize: board dimension, must be >= 1
//   - firstRank: fixed rank for the file-0 queen, 0 <= firstRank < boardSize
//   - opts: run options (may be the zero value)
//
// Returns:
//   - *Solver: ready to Run
//   - error: invalid board size or first rank out of range
func NewSolver(boardSize, firstRank int, opts Options) (*Solver, error) {
	tracker, err := board.New(boardSize)
	if err != nil {
		return nil, fmt.Errorf("new solver: %w", err)
	}
	if firstRank < 0 || firstRank >= boardSize {
		return nil, fmt.Errorf("new solver: first rank %d out of range for board size %d", firstRank, boardSize)
	}
	return &Solver{
		n:         boardSize,
		firstRank: firstRank,
		tracker:   tracker,
		stack:     NewStack(boardSize),
		firstOnly: opts.FirstOnly,
		collect:   opts.Collect,
		emitter:   opts.Emitter,
	}, nil
}

// Run executes the search to exhaustion of its partition (or to the
// first solution when so configured) and returns the partial result.
// A solver runs once; Run panics if called again.
//
// The loop alternates two phases. Forward placement fills files left
// to right, always choosing the lowest unattacked rank, until the
// board is full or some file has no safe rank. Backtracking then pops
// the deepest queen and resumes the scan strictly above the popped
// rank. The run ends when backtracking would have to disturb the
// pinned file-0 queen: at that point this partition is exhausted, and
// ranks beyond it belong to other solvers.
func (s *Solver) Run() queens.Result {
	if s.ran {
		panic("search: solver run twice")
	}
	s.ran = true

	var res queens.Result

	// The first placement is always legal: the board is empty.
	s.place(0, s.firstRank)

	for {
		s.advance()
		if s.stack.Size() == s.n {
			s.record(&res)
			if s.firstOnly {
				return res
			}
		}
		if !s.backtrack() {
			return res
		}
	}
}

// Stats returns the work counters accumulated by Run.
func (s *Solver) Stats() Stats {
	return s.stats
}

// FirstRank returns the rank pinning this solver's file-0 queen.
func (s *Solver) FirstRank() int {
	return s.firstRank
}

// advance is the forward placement phase: starting at the next empty
// file, place a queen on the lowest unattacked rank of each file in
// turn. It stops when the board is full or the current file has no
// safe rank.
func (s *Solver) advance() {
	for file := s.stack.Size(); file < s.n; file++ {
		rank, ok := s.safeRankFrom(file, 0)
		if !ok {
			return
		}
		s.place(file, rank)
	}
}

// backtrack unwinds the deepest placement and retries that file at
// ranks strictly above the popped one. It reports whether a new
// placement was made (control returns to the forward phase) or the
// partition is exhausted.
//
// The loop never pops below depth 1: the file-0 queen is this
// partition's fixed point, and removing it would start exploring a
// rank that belongs to another solver's partition.
func (s *Solver) backtrack() bool {
	for s.stack.Size() > 1 {
		file := s.stack.Size() - 1
		rank := s.stack.Pop()
		s.tracker.RemoveQueen(file, rank)
		s.stats.Backtracks++

		if next, ok := s.safeRankFrom(file, rank+1); ok {
			s.place(file, next)
			return true
		}
	}
	return false
}

// safeRankFrom scans ranks from..n-1 on the given file, ascending, and
// returns the first unattacked one. The ascending scan is what makes
// discovery order deterministic for a fixed first rank.
func (s *Solver) safeRankFrom(file, from int) (int, bool) {
	for rank := from; rank < s.n; rank++ {
		if !s.tracker.IsAttacked(file, rank) {
			return rank, true
		}
	}
	return 0, false
}

func (s *Solver) place(file, rank int) {
	s.tracker.AddQueen(file, rank)
	s.stack.Push(rank)
	s.stats.Placements++
}

// record books a completed placement: bump the count, and copy the
// stack once if anyone wants the solution itself.
func (s *Solver) record(res *queens.Result) {
	res.Count++
	s.stats.Solutions++

	if !s.collect && s.emitter == nil {
		return
	}
	sol := s.stack.Ranks()
	if s.collect {
		res.Solutions = append(res.Solutions, sol)
	}
	if s.emitter != nil {
		s.emitter.Emit(sol)
	}
}
