// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"github.com/maxgmarin/polyscan/internal/cliutil"
	"github.com/maxgmarin/polyscan/internal/output"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	SeqFiles []string

	// Scan
	WindowSize int
	Percentage float64
	Nucleotide string

	// Output
	Output          string // bed|gff3|json|jsonl
	SummaryPath     string
	NoMatchExitCode int

	// Misc
	Quiet   bool
	Verbose bool
	Version bool
}

// sliceValue appends each value to a *[]string (for --fasta/-f).
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return fmt.Sprint(*s.dst)
}
func (s *sliceValue) Set(v string) error { *s.dst = append(*s.dst, v); return nil }

// NewFlagSet returns a FlagSet with the grouped usage/help installed.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	installUsage(fs, name)
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse(argv []string) (Options, error) { return ParseArgs(NewFlagSet("polyscan"), argv) }

// ParseArgs registers and parses all flags, returns an Options struct.
// Bare positionals are taken as FASTA paths, with glob expansion.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	// Input
	fa := &sliceValue{dst: &o.SeqFiles}
	fs.Var(fa, "fasta", "FASTA file(s) (repeatable) or '-'")
	fs.Var(fa, "f", "alias of --fasta")

	// Scan
	fs.IntVar(&o.WindowSize, "window-size", 10, "length of the sliding window [10]")
	fs.IntVar(&o.WindowSize, "w", 10, "alias of --window-size")
	fs.Float64Var(&o.Percentage, "percentage", 80.0, "percentage of the nucleotide required per window [80]")
	fs.Float64Var(&o.Percentage, "p", 80.0, "alias of --percentage")
	fs.StringVar(&o.Nucleotide, "nucleotide", "A", "nucleotide base to search for (A, C, G, T or N) [A]")
	fs.StringVar(&o.Nucleotide, "n", "A", "alias of --nucleotide")

	// Output
	fs.StringVar(&o.Output, "output", output.FormatBED, "output: bed | gff3 | json | jsonl [bed]")
	fs.StringVar(&o.Output, "o", output.FormatBED, "alias of --output")
	fs.StringVar(&o.SummaryPath, "summary", "", "write a JSON run summary to this path")
	fs.IntVar(&o.NoMatchExitCode, "no-match-exit-code", 0, "exit code when no window passes [0]")

	// Misc
	fs.BoolVar(&o.Quiet, "quiet", false, "errors only on stderr [false]")
	fs.BoolVar(&o.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&o.Verbose, "verbose", false, "debug logging on stderr [false]")
	fs.BoolVar(&o.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&o.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "h", false, "show this help [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return o, err
		}
		o.SeqFiles = append(o.SeqFiles, exp...)
	}
	return o, validate(&o)
}

// validate applies the CLI invariants. The nucleotide selector itself is
// resolved (and rejected) by window.ResolveParams, not here.
func validate(o *Options) error {
	if len(o.SeqFiles) == 0 {
		return errors.New("at least one FASTA file is required (--fasta or a positional path)")
	}
	if o.WindowSize < 1 {
		return errors.New("--window-size must be ≥ 1")
	}
	if o.Percentage < 50.0 || o.Percentage > 100.0 {
		return errors.New("--percentage must be between 50.0 and 100.0")
	}
	if !output.KnownFormat(o.Output) {
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	if o.Quiet && o.Verbose {
		return errors.New("--quiet conflicts with --verbose")
	}
	return nil
}
