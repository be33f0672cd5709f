// Command queens enumerates, counts, or finds the first of all
// placements of N non-attacking queens on an N×N board.
//
// The solver core lives in internal/; this binary is the thin
// collaborator around it: flag and config-file parsing, elapsed-time
// reporting, and board rendering.
//
// Usage:
//
//	queens -n 8                 count all solutions for 8 queens
//	queens -n 8 --list          also print each solution
//	queens -n 8 --board         render each solution as a grid
//	queens -n 20 --first        stop at the first solution
//	queens -n 14 -w 4 --print   4 workers, print solutions as found
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/csc14us/n-queens/internal/coordinator"
	"github.com/csc14us/n-queens/internal/render"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("queens: %v", err)
	}
}

// options is the flag surface. A YAML config file may supply defaults
// for any of these; flags set explicitly on the command line win.
type options struct {
	Size    int    `yaml:"size"`
	Workers int    `yaml:"workers"`
	First   bool   `yaml:"first"`
	List    bool   `yaml:"list"`
	Board   bool   `yaml:"board"`
	Print   bool   `yaml:"print"`
	Stats   bool   `yaml:"stats"`
	Config  string `yaml:"-"`
}

func newRootCmd() *cobra.Command {
	opts := options{
		Size:    8,
		Workers: runtime.NumCPU(),
	}

	cmd := &cobra.Command{
		Use:          "queens",
		Short:        "Enumerate non-attacking N-queens placements",
		Long:         "queens counts all placements of N non-attacking queens on an N×N\nboard, partitioning the search across workers by the first queen's rank.",
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return applyConfigFile(cmd, &opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Size, "size", "n", opts.Size, "board size N")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", opts.Workers, "max concurrent searches")
	cmd.Flags().BoolVar(&opts.First, "first", opts.First, "stop at the first solution")
	cmd.Flags().BoolVar(&opts.List, "list", opts.List, "list solutions in algebraic notation")
	cmd.Flags().BoolVar(&opts.Board, "board", opts.Board, "render each solution as a board")
	cmd.Flags().BoolVar(&opts.Print, "print", opts.Print, "print solutions as they are discovered")
	cmd.Flags().BoolVar(&opts.Stats, "stats", opts.Stats, "report search statistics")
	cmd.Flags().StringVar(&opts.Config, "config", "", "YAML config file with flag defaults")

	return cmd
}

// applyConfigFile loads defaults from the --config file, if any.
// Values from the file fill in only flags the user did not set
// explicitly, so the command line always has the last word.
func applyConfigFile(cmd *cobra.Command, opts *options) error {
	if opts.Config == "" {
		return nil
	}
	raw, err := os.ReadFile(opts.Config)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fromFile options
	if err := yaml.Unmarshal(raw, &fromFile); err != nil {
		return fmt.Errorf("parse config %s: %w", opts.Config, err)
	}

	flags := cmd.Flags()
	if !flags.Changed("size") && fromFile.Size != 0 {
		opts.Size = fromFile.Size
	}
	if !flags.Changed("workers") && fromFile.Workers != 0 {
		opts.Workers = fromFile.Workers
	}
	if !flags.Changed("first") {
		opts.First = opts.First || fromFile.First
	}
	if !flags.Changed("list") {
		opts.List = opts.List || fromFile.List
	}
	if !flags.Changed("board") {
		opts.Board = opts.Board || fromFile.Board
	}
	if !flags.Changed("print") {
		opts.Print = opts.Print || fromFile.Print
	}
	if !flags.Changed("stats") {
		opts.Stats = opts.Stats || fromFile.Stats
	}
	return nil
}

func run(cmd *cobra.Command, opts options) error {
	out := cmd.OutOrStdout()

	cfg := coordinator.Config{
		BoardSize: opts.Size,
		Workers:   opts.Workers,
		FirstOnly: opts.First,
		Collect:   opts.List || opts.Board,
		Emit:      opts.Print,
		Out:       out,
	}

	coord := coordinator.New()
	start := time.Now()
	res, err := coord.Solve(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if opts.First {
		if res.Count == 0 {
			fmt.Fprintf(out, "no solution for a %dx%d board (%s)\n", opts.Size, opts.Size, elapsed.Round(time.Microsecond))
		} else {
			fmt.Fprintf(out, "first solution for %dx%d found in %s\n", opts.Size, opts.Size, elapsed.Round(time.Microsecond))
		}
	} else {
		fmt.Fprintf(out, "%dx%d board: %d solutions in %s\n", opts.Size, opts.Size, res.Count, elapsed.Round(time.Microsecond))
	}

	for i, sol := range res.Solutions {
		if opts.List {
			fmt.Fprintf(out, "%d: %s\n", i+1, render.Algebraic(sol))
		}
		if opts.Board {
			fmt.Fprintln(out, render.Board(sol))
		}
	}

	if opts.Stats {
		st := coord.Stats()
		fmt.Fprintf(out, "placements=%d backtracks=%d solutions=%d workers<=%d\n",
			st.Placements, st.Backtracks, st.Solutions, min(opts.Size, opts.Workers))
	}
	return nil
}
