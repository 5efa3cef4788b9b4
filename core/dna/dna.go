// core/dna/dna.go
package dna

import (
	"fmt"
	"strings"
)

// Symbol is one of the five nucleotide classes the scanner counts.
type Symbol uint8

const (
	A Symbol = iota
	C
	G
	T
	N

	// NumSymbols sizes frequency tables indexed by Symbol.
	NumSymbols = 5
)

var classes [256]int8

func init() {
	for i := range classes {
		classes[i] = -1
	}
	classes['A'], classes['a'] = int8(A), int8(A)
	classes['C'], classes['c'] = int8(C), int8(C)
	classes['G'], classes['g'] = int8(G), int8(G)
	classes['T'], classes['t'] = int8(T), int8(T)
	classes['N'], classes['n'] = int8(N), int8(N)
}

// Classify maps a sequence byte to its Symbol, case-insensitively.
// ok is false for any other byte; such bytes are never counted.
func Classify(b byte) (Symbol, bool) {
	c := classes[b]
	if c < 0 {
		return 0, false
	}
	return Symbol(c), true
}

var complement = [NumSymbols]Symbol{A: T, C: G, G: C, T: A, N: N}

// Complement returns the Watson-Crick partner; N pairs with itself.
func (s Symbol) Complement() Symbol { return complement[s] }

var letters = [NumSymbols]byte{A: 'A', C: 'C', G: 'G', T: 'T', N: 'N'}

// Byte returns the canonical upper-case letter for s.
func (s Symbol) Byte() byte { return letters[s] }

func (s Symbol) String() string { return string(letters[s]) }

// Parse resolves a user-supplied nucleotide selector: exactly one
// character (after trimming) from A/C/G/T/N, either case.
func Parse(s string) (Symbol, error) {
	t := strings.TrimSpace(s)
	if len(t) != 1 {
		return 0, fmt.Errorf("nucleotide must be a single character, got %q", s)
	}
	sym, ok := Classify(t[0])
	if !ok {
		return 0, fmt.Errorf("unsupported nucleotide %q (expected one of A, C, G, T, N)", s)
	}
	return sym, nil
}
