// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"

	"github.com/maxgmarin/polyscan/core/fasta"
	"github.com/maxgmarin/polyscan/core/window"
)

// Stats summarizes one scan run.
type Stats struct {
	Files          int            `json:"files"`
	Records        int            `json:"records"`
	SkippedRecords int            `json:"skipped_records"` // shorter than the window
	Windows        int            `json:"windows"`
	Matches        int            `json:"matches"`
	PlusMatches    int            `json:"plus_matches"`
	MinusMatches   int            `json:"minus_matches"`
	PerRecord      map[string]int `json:"per_record,omitempty"`
}

// ForEachMatch scans every record of every file with p and calls visit
// once per match, in emission order: files in argument order, records in
// file order, windows by increasing start, "+" before "-" within a
// window. Records are scanned one at a time and never reordered.
//
// The first error (open, read, visit, cancellation) aborts the run and
// is returned along with the stats gathered so far.
func ForEachMatch(ctx context.Context, files []string, p window.Params, visit func(window.Match) error) (Stats, error) {
	stats := Stats{PerRecord: make(map[string]int)}
	for _, path := range files {
		stats.Files++
		src := path
		err := fasta.StreamPathCtx(ctx, path, func(rec fasta.Record) error {
			stats.Records++
			if p.Size <= 0 || len(rec.Seq) < p.Size {
				stats.SkippedRecords++
				return nil
			}
			stats.Windows += len(rec.Seq) - p.Size + 1
			return window.Scan(rec.ID, rec.Seq, p, func(m window.Match) error {
				m.SourceFile = src
				stats.Matches++
				if m.Strand == "+" {
					stats.PlusMatches++
				} else {
					stats.MinusMatches++
				}
				stats.PerRecord[rec.ID]++
				return visit(m)
			})
		})
		if err != nil {
			return stats, fmt.Errorf("%s: %w", path, err)
		}
	}
	return stats, nil
}
