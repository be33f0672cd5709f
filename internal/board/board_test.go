package board

import (
	"testing"

	"github.com/csc14us/n-queens/internal/queens"
)

// TestNew tests tracker construction and size validation
func TestNew(t *testing.T) {
	t.Run("valid sizes", func(t *testing.T) {
		for _, n := range []int{1, 2, 8, 20} {
			tracker, err := New(n)
			if err != nil {
				t.Fatalf("New(%d) failed: %v", n, err)
			}
			if tracker.Size() != n {
				t.Errorf("Expected size %d, got %d", n, tracker.Size())
			}
		}
	})

	t.Run("invalid sizes", func(t *testing.T) {
		for _, n := range []int{0, -1, -8} {
			if _, err := New(n); err != ErrInvalidSize {
				t.Errorf("New(%d): expected ErrInvalidSize, got %v", n, err)
			}
		}
	})

	t.Run("new tracker has no attacked squares", func(t *testing.T) {
		tracker, _ := New(5)
		for file := 0; file < 5; file++ {
			for rank := 0; rank < 5; rank++ {
				if tracker.IsAttacked(file, rank) {
					t.Errorf("Fresh tracker reports (%d,%d) attacked", file, rank)
				}
			}
		}
		if squares := tracker.AttackedSquares(); len(squares) != 0 {
			t.Errorf("Fresh tracker reports %d attacked squares", len(squares))
		}
	})
}

// TestAddQueen verifies that a placed queen attacks exactly its rank,
// file, and diagonals
func TestAddQueen(t *testing.T) {
	tracker, _ := New(5)
	tracker.AddQueen(2, 2) // Center of a 5x5 board

	for file := 0; file < 5; file++ {
		for rank := 0; rank < 5; rank++ {
			sameRank := rank == 2
			sameFile := file == 2
			sameDiag := rank-file == 0 || rank+file == 4
			want := sameRank || sameFile || sameDiag

			if got := tracker.IsAttacked(file, rank); got != want {
				t.Errorf("IsAttacked(%d,%d) = %v, want %v", file, rank, got, want)
			}
		}
	}
}

// TestRemoveQueen verifies the add-then-remove round trip on an
// otherwise empty tracker leaves nothing attacked
func TestRemoveQueen(t *testing.T) {
	tracker, _ := New(8)

	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			tracker.AddQueen(file, rank)
			tracker.RemoveQueen(file, rank)

			if tracker.IsAttacked(file, rank) {
				t.Errorf("(%d,%d) still attacked after removal", file, rank)
			}
			if squares := tracker.AttackedSquares(); len(squares) != 0 {
				t.Fatalf("%d squares still attacked after removing (%d,%d)", len(squares), file, rank)
			}
		}
	}
}

// TestRemoveQueenPreservesOthers checks removal with a second
// non-attacking queen on the board: its lines must survive
func TestRemoveQueenPreservesOthers(t *testing.T) {
	tracker, _ := New(4)

	// (0,1) and (1,3) do not attack each other, so fast removal of
	// either is within its precondition.
	tracker.AddQueen(0, 1)
	tracker.AddQueen(1, 3)
	tracker.RemoveQueen(1, 3)

	if !tracker.IsAttacked(0, 1) {
		t.Error("Queen square (0,1) no longer attacked")
	}
	if !tracker.IsAttacked(3, 1) {
		t.Error("Rank of remaining queen no longer attacked")
	}
	if !tracker.IsAttacked(0, 3) {
		t.Error("File of remaining queen no longer attacked")
	}
	if !tracker.IsAttacked(2, 3) {
		t.Error("Diagonal of remaining queen no longer attacked")
	}
	if tracker.IsAttacked(3, 3) {
		t.Error("Square attacked only by the removed queen still marked")
	}
}

// TestAttackedSquares verifies the diagnostic full scan
func TestAttackedSquares(t *testing.T) {
	tracker, _ := New(3)
	tracker.AddQueen(0, 0)

	// A corner queen on 3x3 attacks its rank, file, and the main
	// diagonal: 7 distinct squares including its own.
	squares := tracker.AttackedSquares()
	if len(squares) != 7 {
		t.Fatalf("Expected 7 attacked squares, got %d: %v", len(squares), squares)
	}

	seen := make(map[queens.Square]bool, len(squares))
	for _, sq := range squares {
		seen[sq] = true
	}
	for _, want := range []struct{ file, rank int }{
		{0, 0}, {0, 1}, {0, 2}, {1, 0}, {2, 0}, {1, 1}, {2, 2},
	} {
		if !seen[queens.SquareOf(want.file, want.rank, 3)] {
			t.Errorf("Missing attacked square (%d,%d)", want.file, want.rank)
		}
	}
}

// TestClear verifies a cleared tracker behaves like a fresh one
func TestClear(t *testing.T) {
	tracker, _ := New(6)
	tracker.AddQueen(0, 0)
	tracker.AddQueen(1, 2)
	tracker.AddQueen(2, 4)

	tracker.Clear()

	if squares := tracker.AttackedSquares(); len(squares) != 0 {
		t.Errorf("Expected no attacked squares after Clear, got %d", len(squares))
	}
	for file := 0; file < 6; file++ {
		for rank := 0; rank < 6; rank++ {
			if tracker.IsAttacked(file, rank) {
				t.Errorf("(%d,%d) attacked after Clear", file, rank)
			}
		}
	}
}

// TestSizeOne covers the 1x1 boundary board
func TestSizeOne(t *testing.T) {
	tracker, err := New(1)
	if err != nil {
		t.Fatalf("New(1) failed: %v", err)
	}
	if tracker.IsAttacked(0, 0) {
		t.Error("Empty 1x1 board reports its square attacked")
	}
	tracker.AddQueen(0, 0)
	if !tracker.IsAttacked(0, 0) {
		t.Error("1x1 board square not attacked after placement")
	}
}
