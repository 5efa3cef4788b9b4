// core/window/params.go
package window

import (
	"math"

	"github.com/maxgmarin/polyscan/core/dna"
)

// Params holds one resolved scan configuration. Resolve once per run and
// treat as immutable; the zero value scans nothing.
type Params struct {
	Size      int     // window width in bases
	Percent   float64 // requested minimum frequency, 0-100
	Threshold int     // minimum per-window count, ceil(Percent/100*Size)
	Target    dna.Symbol
	Comp      dna.Symbol
	Base      byte // canonical letter carried into every Match
}

// ResolveParams turns user inputs into scan parameters. The threshold is
// the ceiling of percent/100*size, so fractional counts round up: 51% of
// a 3-base window needs 2 bases, 79.01% of 100 needs 80. A size of zero
// (or less) yields Params under which Scan emits nothing.
func ResolveParams(size int, percent float64, nucleotide string) (Params, error) {
	target, err := dna.Parse(nucleotide)
	if err != nil {
		return Params{}, err
	}
	return Params{
		Size:      size,
		Percent:   percent,
		Threshold: int(math.Ceil(percent / 100.0 * float64(size))),
		Target:    target,
		Comp:      target.Complement(),
		Base:      target.Byte(),
	}, nil
}
