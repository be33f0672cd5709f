package coordinator

import (
	"fmt"
	"io"
	"sync"

	"github.com/csc14us/n-queens/internal/queens"
	"github.com/csc14us/n-queens/internal/render"
)

// solutionPrinter numbers and prints solutions as they are discovered.
// It is the single piece of mutable state shared between concurrently
// running searches: the displayed ordinal comes from a counter that
// must increment and print inside one critical section, or concurrent
// finds could interleave lines or reuse an ordinal.
//
// The counter orders output only. It has no bearing on search
// correctness, and the ordinals reflect discovery timing across the
// pool, not any canonical solution order.
type solutionPrinter struct {
	mu  sync.Mutex
	seq uint64
	out io.Writer
}

// newSolutionPrinter creates a printer writing to out, starting at
// ordinal 1. The printer is handed to every search at construction;
// nothing reaches it through package state.
func newSolutionPrinter(out io.Writer) *solutionPrinter {
	return &solutionPrinter{out: out}
}

// Emit implements search.Emitter.
func (p *solutionPrinter) Emit(sol queens.Solution) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seq++
	fmt.Fprintf(p.out, "solution %d: %s\n", p.seq, render.Algebraic(sol))
}
