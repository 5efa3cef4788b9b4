package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/maxgmarin/polyscan/core/window"
	"github.com/maxgmarin/polyscan/internal/jsonlutil"
	"github.com/maxgmarin/polyscan/internal/output"
	"github.com/maxgmarin/polyscan/pkg/api"
)

// StartMatchWriter spins up the writer goroutine for one run. Matches
// are serialized in channel order, which the pipeline guarantees is
// emission order. bed/gff3/jsonl stream row by row; json buffers, since
// the array form needs the full set before encoding.
//
// Close the returned channel when the scan is done, then read the final
// error from the second channel.
func StartMatchWriter(out io.Writer, format string, bufSize int) (chan<- window.Match, <-chan error) {
	if format == output.FormatJSONL {
		return jsonlutil.Start(out, bufSize, func(enc *json.Encoder, m window.Match) error {
			return enc.Encode(api.FromMatch(m))
		}, IsBrokenPipe)
	}

	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan window.Match, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case output.FormatBED:
			for m := range in {
				if err == nil {
					err = output.WriteBED(out, m)
				}
			}
		case output.FormatGFF3:
			gw := output.NewGFF3Writer(out)
			for m := range in {
				if err == nil {
					err = gw.Write(m)
				}
			}
		case output.FormatJSON:
			var buf []window.Match
			for m := range in {
				buf = append(buf, m)
			}
			err = output.WriteJSON(out, buf)
		default:
			// Drain so the sender never blocks on an unknown format.
			for range in {
			}
			err = fmt.Errorf("unsupported output %q", format)
		}
		errCh <- err
	}()

	return in, errCh
}
