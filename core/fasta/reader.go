// core/fasta/reader.go
package fasta

// Record is one parsed FASTA sequence. Seq holds the raw bases exactly
// as read (original case, no validation); consumers decide what counts.
type Record struct {
	ID  string
	Seq []byte
}
