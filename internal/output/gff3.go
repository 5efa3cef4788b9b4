// internal/output/gff3.go
package output

import (
	"fmt"
	"io"

	"github.com/maxgmarin/polyscan/core/window"
)

// GFF3Writer renders matches as GFF3 feature lines. GFF3 uses 1-based
// closed coordinates, so a half-open [start,end) window becomes
// (start+1, end). IDs count matches per sequence so repeated windows on
// the same contig stay unique.
type GFF3Writer struct {
	w       io.Writer
	started bool
	nth     map[string]int
}

func NewGFF3Writer(w io.Writer) *GFF3Writer {
	return &GFF3Writer{w: w, nth: make(map[string]int)}
}

// Write emits one feature line, preceded by the version pragma on first
// use.
func (g *GFF3Writer) Write(m window.Match) error {
	if !g.started {
		if _, err := fmt.Fprintln(g.w, "##gff-version 3"); err != nil {
			return err
		}
		g.started = true
	}
	g.nth[m.SequenceID]++
	_, err := fmt.Fprintf(g.w, "%s\tpolyscan\tpoly_tract\t%d\t%d\t%d\t%s\t.\tID=%s_%d;base=%c\n",
		m.SequenceID, m.Start+1, m.End, Score(m.Percent), m.Strand,
		m.SequenceID, g.nth[m.SequenceID], m.Base)
	return err
}
