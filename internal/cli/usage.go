// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"

	"github.com/maxgmarin/polyscan/internal/version"
)

// installUsage wires the grouped help text onto fs. Defaults are read
// back from the registered flags so the help never drifts from the code.
func installUsage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – sliding-window nucleotide frequency scanner\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s [options] genome.fa[.gz|.bz2|.xz|.zst]\n", name)
		fmt.Fprintf(out, "  %s -n T -w 15 -p 90 - < genome.fa\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -f, --fasta file            FASTA file(s) (repeatable) or '-' for STDIN;")
		fmt.Fprintln(out, "                              bare positionals work too, globs included")

		fmt.Fprintln(out, "\nScan:")
		fmt.Fprintf(out, "  -w, --window-size int       Length of the sliding window [%s]\n", def("window-size"))
		fmt.Fprintf(out, "  -p, --percentage float      Required %% of the base per window, 50-100 [%s]\n", def("percentage"))
		fmt.Fprintf(out, "  -n, --nucleotide string     Base to search for (A, C, G, T or N); its\n")
		fmt.Fprintf(out, "                              complement is reported on the '-' strand [%s]\n", def("nucleotide"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: bed | gff3 | json | jsonl [%s]\n", def("output"))
		fmt.Fprintln(out, "      --summary file          Write a JSON run summary to file")
		fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when no window passes [%s]\n", def("no-match-exit-code"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Errors only on stderr [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --verbose               Debug logging on stderr [%s]\n", def("verbose"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
