// internal/output/json.go
package output

import (
	"io"

	"github.com/maxgmarin/polyscan/core/window"
	"github.com/maxgmarin/polyscan/internal/jsonutil"
	"github.com/maxgmarin/polyscan/pkg/api"
)

// WriteJSON emits all matches as one pretty-printed array of v1 wire
// objects. An empty run yields [] rather than null.
func WriteJSON(w io.Writer, ms []window.Match) error {
	rows := make([]api.MatchV1, 0, len(ms))
	for _, m := range ms {
		rows = append(rows, api.FromMatch(m))
	}
	return jsonutil.EncodePretty(w, rows)
}
