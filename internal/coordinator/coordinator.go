package coordinator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/csc14us/n-queens/internal/queens"
	"github.com/csc14us/n-queens/internal/search"
)

var (
	// ErrInvalidBoardSize is returned for board sizes below 1.
	ErrInvalidBoardSize = errors.New("board size must be at least 1")
	// ErrInvalidWorkers is returned for worker counts below 1.
	ErrInvalidWorkers = errors.New("worker count must be at least 1")
)

// Config describes one solve request.
type Config struct {
	// BoardSize is the board dimension N. Must be >= 1.
	BoardSize int

	// Workers caps the number of concurrently running searches. Must
	// be >= 1. The effective pool size is min(BoardSize, Workers),
	// since there are never more than BoardSize partitions.
	Workers int

	// FirstOnly returns after the first solution instead of
	// enumerating the whole space. This mode runs partitions
	// sequentially in ascending first-rank order so that "first" is
	// deterministic rather than scheduler-dependent.
	FirstOnly bool

	// Collect retains every solution in the returned Result. When
	// false only the count comes back.
	Collect bool

	// Emit prints each solution to Out as it is discovered, numbered
	// by a counter shared across all running searches.
	Emit bool

	// Out is the destination for emitted solutions. Defaults to
	// os.Stdout.
	Out io.Writer
}

// Validate checks the configuration and reports every violation at
// once. A non-nil error means Solve will do no work.
func (c Config) Validate() error {
	var err error
	if c.BoardSize < 1 {
		err = multierr.Append(err, fmt.Errorf("%w: got %d", ErrInvalidBoardSize, c.BoardSize))
	}
	if c.Workers < 1 {
		err = multierr.Append(err, fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.Workers))
	}
	return err
}

// Coordinator partitions the N-queens search space by first-queen
// rank, dispatches the partitions across a bounded pool of independent
// searches, and merges their partial results.
//
// A Coordinator is safe for repeated and concurrent Solve calls: the
// worker pool lives and dies inside each call, and the only state the
// Coordinator itself keeps is the stats of the most recent run,
// guarded by its mutex.
type Coordinator struct {
	mu    sync.Mutex
	stats search.Stats // Aggregated counters from the last Solve
}

// New creates a Coordinator.
func New() *Coordinator {
	return &Coordinator{}
}

// Solve runs the search described by cfg and returns the merged
// result.
//
// In exhaustive mode the work splits into exactly BoardSize searches,
// one per possible file-0 rank, scheduled on a pool of at most
// min(BoardSize, Workers) goroutines. Each search owns all of its
// mutable state; Solve blocks at the final join and merges the
// per-rank results in ascending rank order. The merge order is an
// implementation convenience, not a contract — use
// Result.SortSolutions for a defined order.
//
// In first-solution mode no pool is used: ranks are tried strictly
// ascending, each search bounded to its first hit, and Solve returns
// as soon as any search finds one. Exhaustive runs always go to
// completion; ctx is plumbed to the pool for conventional reasons but
// individual searches are pure CPU loops and do not observe it.
//
// Configuration errors are reported before any work starts.
func (c *Coordinator) Solve(ctx context.Context, cfg Config) (queens.Result, error) {
	if err := cfg.Validate(); err != nil {
		return queens.Result{}, fmt.Errorf("solve: %w", err)
	}

	var emitter search.Emitter
	if cfg.Emit {
		out := cfg.Out
		if out == nil {
			out = os.Stdout
		}
		emitter = newSolutionPrinter(out)
	}

	if cfg.FirstOnly {
		return c.solveFirst(cfg, emitter)
	}
	return c.solveAll(ctx, cfg, emitter)
}

// Stats returns the aggregated search counters from the most recent
// Solve call.
func (c *Coordinator) Stats() search.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// solveAll is the exhaustive path: one search per first rank, bounded
// pool, merge after the join.
func (c *Coordinator) solveAll(ctx context.Context, cfg Config, emitter search.Emitter) (queens.Result, error) {
	n := cfg.BoardSize
	opts := search.Options{Collect: cfg.Collect, Emitter: emitter}

	// Per-rank slots; each goroutine writes only its own index, so the
	// slice needs no lock.
	partials := make([]queens.Result, n)
	stats := make([]search.Stats, n)

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(min(n, cfg.Workers))

	for rank := 0; rank < n; rank++ {
		g.Go(func() error {
			solver, err := search.NewSolver(n, rank, opts)
			if err != nil {
				return err
			}
			partials[rank] = solver.Run()
			stats[rank] = solver.Stats()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// Unreachable after Validate, but a defect here should surface.
		return queens.Result{}, fmt.Errorf("solve: %w", err)
	}

	var res queens.Result
	var total search.Stats
	for rank := 0; rank < n; rank++ {
		res.Merge(partials[rank])
		total.Placements += stats[rank].Placements
		total.Backtracks += stats[rank].Backtracks
		total.Solutions += stats[rank].Solutions
	}
	c.setStats(total)
	return res, nil
}

// solveFirst is the deterministic short-circuit: partitions run one at
// a time in ascending rank order, each stopping at its first solution,
// and the first nonzero result wins.
func (c *Coordinator) solveFirst(cfg Config, emitter search.Emitter) (queens.Result, error) {
	n := cfg.BoardSize
	opts := search.Options{FirstOnly: true, Collect: cfg.Collect, Emitter: emitter}

	var total search.Stats
	for rank := 0; rank < n; rank++ {
		solver, err := search.NewSolver(n, rank, opts)
		if err != nil {
			return queens.Result{}, fmt.Errorf("solve: %w", err)
		}
		res := solver.Run()

		st := solver.Stats()
		total.Placements += st.Placements
		total.Backtracks += st.Backtracks
		total.Solutions += st.Solutions

		if res.Count > 0 {
			c.setStats(total)
			return res, nil
		}
	}
	c.setStats(total)
	return queens.Result{}, nil
}

func (c *Coordinator) setStats(s search.Stats) {
	c.mu.Lock()
	c.stats = s
	c.mu.Unlock()
}
