// Command treedepth reads a PACE 2020 graph and searches for a
// low-depth tree-depth decomposition, printing the best one found (or
// the one in progress, if interrupted) in PACE decomposition format.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/treedepth/pace"
	"github.com/katalvlaran/treedepth/search"
	"github.com/katalvlaran/treedepth/statuslog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	inputPath string
	seed      int64
	status    bool
	verbose   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "treedepth",
		Short: "Compute a low-depth tree-depth decomposition of a graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.inputPath, "input", "i", "", "read graph from file (default: standard input)")
	cmd.Flags().Int64VarP(&opts.seed, "seed", "s", 0, "RNG seed")
	cmd.Flags().BoolVar(&opts.status, "status", false, "write a status line to stderr on each improvement")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "as --status, plus a line for every candidate produced")

	defaultHelp := cmd.HelpFunc()
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		defaultHelp(c, args)
		os.Exit(1)
	})
	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	in := os.Stdin
	if opts.inputPath != "" {
		f, err := os.Open(opts.inputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	g, err := pace.Read(in)
	if err != nil {
		return err
	}

	logger := statuslog.New(os.Stderr, logLevel(opts))

	best := search.NewBest()
	installInterruptHandler(best, logger)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	seeds := workerSeeds(opts.seed, workerCount())
	onImprove := func(d *search.Decomposition) {
		logger.Improved(d.Depth)
	}
	onCandidate := func(depth int) {
		logger.Candidate(depth)
	}
	if err := search.Run(ctx, g, seeds, best, onImprove, onCandidate); err != nil {
		return err
	}

	return writeResult(os.Stdout, best, logger)
}

func logLevel(opts *options) statuslog.Level {
	switch {
	case opts.verbose:
		return statuslog.Verbose
	case opts.status:
		return statuslog.Status
	default:
		return statuslog.Silent
	}
}

// workerCount picks a small fixed worker pool size; the CLI has no flag
// for it.
func workerCount() int {
	return 4
}

func workerSeeds(base int64, count int) []int64 {
	seeds := make([]int64, count)
	for i := range seeds {
		seeds[i] = base + int64(i)
	}
	return seeds
}

func writeResult(w *os.File, best *search.Best, logger *statuslog.Logger) error {
	d := best.Get()
	if d == nil {
		logger.Notice("no decomposition found")
		return nil
	}
	return pace.Write(w, d.Parent, d.Depth)
}

// installInterruptHandler arranges for SIGINT/SIGTERM to write whatever
// decomposition Best currently holds and exit immediately. The write
// itself goes through pace.Write on a buffered writer over the raw stdout
// file descriptor rather than a signal-safe syscall.Write of a
// pre-formatted buffer, since Best's content (and therefore its encoded
// size) isn't known in advance of the signal; this trades strict
// async-signal-safety for the ability to actually report the result, and
// is acceptable here because the process exits immediately afterward
// regardless of any partial state the formatting left behind.
func installInterruptHandler(best *search.Best, logger *statuslog.Logger) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ch
		writeResult(os.Stdout, best, logger)
		os.Exit(0)
	}()
}
