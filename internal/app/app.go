// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/maxgmarin/polyscan/core/window"
	"github.com/maxgmarin/polyscan/internal/cli"
	"github.com/maxgmarin/polyscan/internal/cmdutil"
	"github.com/maxgmarin/polyscan/internal/pipeline"
	"github.com/maxgmarin/polyscan/internal/summary"
	"github.com/maxgmarin/polyscan/internal/version"
	"github.com/maxgmarin/polyscan/internal/writers"
)

// RunContext drives one polyscan invocation: parse flags, resolve the
// scan parameters, stream matches through the writer goroutine, report.
// stdout carries only match records; all diagnostics go to stderr.
//
// Exit codes: 0 success (also on broken pipe), 2 configuration errors,
// 3 runtime I/O or writer errors, 130 canceled, and the configured
// --no-match-exit-code when the scan succeeds with zero matches.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("polyscan")
	fs.SetOutput(io.Discard)

	flushUsage := func() int {
		fs.SetOutput(outw)
		fs.Usage()
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	if len(argv) == 0 {
		return flushUsage()
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return flushUsage()
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Version {
		fmt.Fprintf(outw, "polyscan version %s\n", version.Version)
		if e := outw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
			fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	logger := cmdutil.NewLogger(stderr, opts.Quiet, opts.Verbose)

	params, err := window.ResolveParams(opts.WindowSize, opts.Percentage, opts.Nucleotide)
	if err != nil {
		logger.Error("invalid scan parameters", "err", err)
		return 2
	}
	logger.Debug("parameters resolved",
		"window", params.Size, "percentage", params.Percent,
		"threshold", params.Threshold,
		"nucleotide", params.Target.String(), "complement", params.Comp.String())

	inCh, writeErr := writers.StartMatchWriter(outw, opts.Output, 256)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	stats, perr := pipeline.ForEachMatch(ctx, opts.SeqFiles, params, func(m window.Match) error {
		// Checked first so cancellation wins even while the writer
		// still has buffer space.
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		select {
		case inCh <- m:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		logger.Error("write failed", "err", werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		logger.Error("flush failed", "err", e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		logger.Error("scan failed", "err", perr)
		return 3
	}

	logger.Info("scan complete",
		"files", stats.Files, "records", stats.Records,
		"skipped", stats.SkippedRecords, "windows", stats.Windows,
		"matches", stats.Matches, "plus", stats.PlusMatches, "minus", stats.MinusMatches)

	if opts.SummaryPath != "" {
		if err := summary.New(params, stats).WriteFile(opts.SummaryPath); err != nil {
			logger.Error("summary write failed", "err", err)
			return 3
		}
		logger.Debug("summary written", "path", opts.SummaryPath)
	}

	if stats.Matches == 0 {
		return opts.NoMatchExitCode
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
