package board

import (
	"errors"

	"github.com/csc14us/n-queens/internal/queens"
)

// ErrInvalidSize is returned when a tracker is requested for a board
// smaller than 1×1.
var ErrInvalidSize = errors.New("board size must be at least 1")

// Tracker records which ranks, files, and diagonals are currently
// attacked by placed queens. It answers attack queries in O(1) after
// O(1) updates.
//
// A Tracker is exclusively owned by a single search for the whole run.
// None of its methods are safe for concurrent use, and none need to be:
// searches never share trackers.
type Tracker struct {
	n          int    // Board size, fixed at construction
	ranks      []bool // ranks[r]: some queen occupies rank r
	files      []bool // files[f]: some queen occupies file f
	rightDiags []bool // rightDiags[r-f+n-1]: rising diagonal attacked
	leftDiags  []bool // leftDiags[r+f]: falling diagonal attacked
}

// New creates a tracker for an n×n board with no squares attacked.
// Returns ErrInvalidSize if n < 1.
func New(n int) (*Tracker, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}
	return &Tracker{
		n:          n,
		ranks:      make([]bool, n),
		files:      make([]bool, n),
		rightDiags: make([]bool, 2*n-1),
		leftDiags:  make([]bool, 2*n-1),
	}, nil
}

// Size returns the board size the tracker was built for.
func (t *Tracker) Size() int {
	return t.n
}

// AddQueen marks the rank, file, and both diagonals through
// (file, rank) as attacked.
func (t *Tracker) AddQueen(file, rank int) {
	t.ranks[rank] = true
	t.files[file] = true
	t.rightDiags[rank-file+t.n-1] = true
	t.leftDiags[rank+file] = true
}

// RemoveQueen unmarks the four flags set by AddQueen for (file, rank).
//
// This is the fast unmark: it is only correct while no other placed
// queen shares the square's rank, file, or either diagonal, so that
// exactly one queen justified each flag. The backtracking search
// guarantees this because it never holds two mutually attacking queens
// at once. Calling RemoveQueen outside that discipline can clear flags
// still owed to another queen.
func (t *Tracker) RemoveQueen(file, rank int) {
	t.ranks[rank] = false
	t.files[file] = false
	t.rightDiags[rank-file+t.n-1] = false
	t.leftDiags[rank+file] = false
}

// IsAttacked reports whether (file, rank) is attacked by any placed
// queen. O(1).
func (t *Tracker) IsAttacked(file, rank int) bool {
	return t.ranks[rank] ||
		t.files[file] ||
		t.rightDiags[rank-file+t.n-1] ||
		t.leftDiags[rank+file]
}

// AttackedSquares scans the whole board and returns every attacked
// square. This is a diagnostic helper, O(N²); the search loop never
// calls it.
func (t *Tracker) AttackedSquares() []queens.Square {
	var attacked []queens.Square
	for file := 0; file < t.n; file++ {
		for rank := 0; rank < t.n; rank++ {
			if t.IsAttacked(file, rank) {
				attacked = append(attacked, queens.SquareOf(file, rank, t.n))
			}
		}
	}
	return attacked
}

// Clear resets all four arrays so the tracker can be reused for a
// fresh search. Allocating a new tracker per search makes this
// unnecessary, but reuse avoids the allocations.
func (t *Tracker) Clear() {
	for i := range t.ranks {
		t.ranks[i] = false
		t.files[i] = false
	}
	for i := range t.rightDiags {
		t.rightDiags[i] = false
		t.leftDiags[i] = false
	}
}
