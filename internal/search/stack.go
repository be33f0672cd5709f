package search

import "github.com/csc14us/n-queens/internal/queens"

// Stack is a fixed-capacity LIFO of rank indices, one entry per
// occupied file. Entry i is the rank of the queen on file i, so the
// stack depth always equals the number of files currently holding a
// queen, which is the current search column.
//
// Capacity equals the board size and never needs to grow: search depth
// cannot exceed N. Pushing past capacity or popping an empty stack is
// an algorithmic bug, not a runtime condition, and panics.
type Stack struct {
	ranks []int // Backing array, len == capacity
	top   int   // Number of entries; ranks[top-1] is the top
}

// NewStack creates an empty stack with the given fixed capacity.
func NewStack(capacity int) *Stack {
	return &Stack{ranks: make([]int, capacity)}
}

// Push appends a rank. Panics if the stack is full.
func (s *Stack) Push(rank int) {
	if s.top == len(s.ranks) {
		panic("search: push on full stack")
	}
	s.ranks[s.top] = rank
	s.top++
}

// Pop removes and returns the most recently pushed rank.
// Panics if the stack is empty.
func (s *Stack) Pop() int {
	if s.top == 0 {
		panic("search: pop on empty stack")
	}
	s.top--
	return s.ranks[s.top]
}

// Top returns the most recently pushed rank without removing it.
// Panics if the stack is empty.
func (s *Stack) Top() int {
	if s.top == 0 {
		panic("search: top on empty stack")
	}
	return s.ranks[s.top-1]
}

// Empty reports whether the stack holds no entries.
func (s *Stack) Empty() bool {
	return s.top == 0
}

// Size returns the current depth.
func (s *Stack) Size() int {
	return s.top
}

// Ranks returns an ordered copy of the current contents, bottom first.
// The copy is what becomes a Solution when the stack is full.
func (s *Stack) Ranks() queens.Solution {
	out := make(queens.Solution, s.top)
	copy(out, s.ranks[:s.top])
	return out
}
