// internal/output/bed.go
package output

import (
	"fmt"
	"io"

	"github.com/maxgmarin/polyscan/core/window"
)

// WriteBED emits one match as a 6-column BED row:
// chrom, start, end, name, score, strand. The layout is a fixed external
// contract: no header, 0-based half-open coordinates, name is always the
// user's chosen base (never the complement) and score is the ceiled
// percentage.
func WriteBED(w io.Writer, m window.Match) error {
	_, err := fmt.Fprintf(w, "%s\t%d\t%d\t%c\t%d\t%s\n",
		m.SequenceID, m.Start, m.End, m.Base, Score(m.Percent), m.Strand)
	return err
}
