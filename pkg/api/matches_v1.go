// pkg/api/matches_v1.go
package api

import (
	"math"

	"github.com/maxgmarin/polyscan/core/window"
)

// MatchV1 is the stable JSON/JSONL schema for window matches.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type MatchV1 struct {
	SourceFile string  `json:"source_file,omitempty"`
	SequenceID string  `json:"sequence_id"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Base       string  `json:"base"` // user's chosen base, on both strands
	Percentage float64 `json:"percentage"`
	Score      int     `json:"score"` // ceil(Percentage), same as the BED score column
	Strand     string  `json:"strand"`
}

// FromMatch converts a domain match to its wire form.
func FromMatch(m window.Match) MatchV1 {
	return MatchV1{
		SourceFile: m.SourceFile,
		SequenceID: m.SequenceID,
		Start:      m.Start,
		End:        m.End,
		Base:       string(m.Base),
		Percentage: m.Percent,
		Score:      int(math.Ceil(m.Percent)),
		Strand:     m.Strand,
	}
}
