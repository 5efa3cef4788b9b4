// core/window/match.go
package window

// Match is one window position that met the threshold on one strand.
// Base is always the caller's chosen nucleotide, never its complement;
// Strand records which of the two counts passed. When the target is N
// (its own complement) a passing window yields a "+" and a "-" Match
// with the same Percent; downstream must not deduplicate them.
type Match struct {
	SequenceID string
	Start      int // 0-based, inclusive
	End        int // exclusive; Start+Size
	Base       byte
	Percent    float64 // full precision; serializers apply the ceiling
	Strand     string  // "+" target count passed, "-" complement count passed
	SourceFile string  // originating FASTA path, filled by the pipeline
}
