// internal/summary/summary.go
package summary

import (
	"os"

	"github.com/maxgmarin/polyscan/core/window"
	"github.com/maxgmarin/polyscan/internal/jsonutil"
	"github.com/maxgmarin/polyscan/internal/pipeline"
)

// ParamsV1 records the resolved scan configuration in a run summary.
type ParamsV1 struct {
	WindowSize int     `json:"window_size"`
	Percentage float64 `json:"percentage"`
	Threshold  int     `json:"threshold"`
	Nucleotide string  `json:"nucleotide"`
	Complement string  `json:"complement"`
}

// Summary is the JSON document written by --summary.
type Summary struct {
	Params ParamsV1       `json:"params"`
	Stats  pipeline.Stats `json:"stats"`
}

// New bundles resolved parameters and run stats into a Summary.
func New(p window.Params, st pipeline.Stats) Summary {
	return Summary{
		Params: ParamsV1{
			WindowSize: p.Size,
			Percentage: p.Percent,
			Threshold:  p.Threshold,
			Nucleotide: p.Target.String(),
			Complement: p.Comp.String(),
		},
		Stats: st,
	}
}

// WriteFile serializes the summary as pretty JSON to path.
func (s Summary) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := jsonutil.EncodePretty(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
