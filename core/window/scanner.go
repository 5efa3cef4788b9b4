// core/window/scanner.go
package window

import "github.com/maxgmarin/polyscan/core/dna"

// freqTable counts window bytes per symbol. Unrecognized bytes are not
// counted anywhere, so the slots can sum to less than the window size.
type freqTable [dna.NumSymbols]int

func (f *freqTable) add(b byte) {
	if s, ok := dna.Classify(b); ok {
		f[s]++
	}
}

// remove saturates at zero so a slot never goes negative.
func (f *freqTable) remove(b byte) {
	if s, ok := dna.Classify(b); ok && f[s] > 0 {
		f[s]--
	}
}

// Scan slides a p.Size-wide window across seq and calls visit for every
// strand whose count reaches p.Threshold: "+" when the target symbol
// passes, "-" when its complement does, in that order per window, with
// windows in increasing start order. The counts are maintained
// incrementally; each slide evicts the byte leaving on the left and adds
// the byte entering on the right before evaluating.
//
// Sequences shorter than the window (and non-positive sizes) produce no
// matches and no error. A non-nil error from visit aborts the scan and
// is returned as-is.
func Scan(seqID string, seq []byte, p Params, visit func(Match) error) error {
	if p.Size <= 0 || len(seq) < p.Size {
		return nil
	}

	var freq freqTable
	for _, b := range seq[:p.Size] {
		freq.add(b)
	}
	if err := emit(seqID, 0, &freq, p, visit); err != nil {
		return err
	}

	for start := 1; start <= len(seq)-p.Size; start++ {
		freq.remove(seq[start-1])
		freq.add(seq[start+p.Size-1])
		if err := emit(seqID, start, &freq, p, visit); err != nil {
			return err
		}
	}
	return nil
}

// emit checks both strands at one window position. When Target == Comp
// (selector N) both checks read the same slot and a passing window
// produces two Matches.
func emit(seqID string, start int, f *freqTable, p Params, visit func(Match) error) error {
	if f[p.Target] >= p.Threshold {
		if err := visit(newMatch(seqID, start, f[p.Target], p, "+")); err != nil {
			return err
		}
	}
	if f[p.Comp] >= p.Threshold {
		if err := visit(newMatch(seqID, start, f[p.Comp], p, "-")); err != nil {
			return err
		}
	}
	return nil
}

func newMatch(seqID string, start, count int, p Params, strand string) Match {
	return Match{
		SequenceID: seqID,
		Start:      start,
		End:        start + p.Size,
		Base:       p.Base,
		Percent:    float64(count) / float64(p.Size) * 100.0,
		Strand:     strand,
	}
}
