// Package alphabet implements the symbol tables for each sequence type a NAF
// archive can declare: the 4-bit IUPAC nucleotide codes for dna/rna, and the
// byte-per-symbol protein and text alphabets.
//
// Nucleotide symbols are packed as the bitwise OR of their constituent bases
// (A=1, C=2, G=4, T/U=8), so every IUPAC ambiguity code is the union of the
// bases it can stand for and N (or a gap) round-trips as 15 (or 0). This is
// the same nibble assignment used by most 4-bit packed sequence formats, and
// it is why two symbols per byte, low nibble first, is enough to hold any
// IUPAC code losslessly.
package alphabet

import (
	"github.com/althonos/nafcodec/errs"
	"github.com/althonos/nafcodec/format"
)

// nibble values: bit 0 = A, bit 1 = C, bit 2 = G, bit 3 = T/U.
const (
	bitA = 1 << 0
	bitC = 1 << 1
	bitG = 1 << 2
	bitT = 1 << 3
)

// dnaEncode maps an uppercase DNA symbol to its 4-bit nibble. T is accepted,
// U is not: callers that want RNA semantics must use rnaEncode instead, so a
// sequence tagged dna never silently swaps T for U or vice versa.
var dnaEncode = map[byte]byte{
	'-': 0,
	'A': bitA,
	'C': bitC,
	'M': bitA | bitC,
	'G': bitG,
	'R': bitA | bitG,
	'S': bitC | bitG,
	'V': bitA | bitC | bitG,
	'T': bitT,
	'W': bitA | bitT,
	'Y': bitC | bitT,
	'H': bitA | bitC | bitT,
	'K': bitG | bitT,
	'D': bitA | bitG | bitT,
	'B': bitC | bitG | bitT,
	'N': bitA | bitC | bitG | bitT,
}

// rnaEncode is dnaEncode with U in place of T.
var rnaEncode = map[byte]byte{
	'-': 0,
	'A': bitA,
	'C': bitC,
	'M': bitA | bitC,
	'G': bitG,
	'R': bitA | bitG,
	'S': bitC | bitG,
	'V': bitA | bitC | bitG,
	'U': bitT,
	'W': bitA | bitT,
	'Y': bitC | bitT,
	'H': bitA | bitC | bitT,
	'K': bitG | bitT,
	'D': bitA | bitG | bitT,
	'B': bitC | bitG | bitT,
	'N': bitA | bitC | bitG | bitT,
}

var dnaDecode = inverse(dnaEncode)
var rnaDecode = inverse(rnaEncode)

func inverse(m map[byte]byte) [16]byte {
	var out [16]byte
	for symbol, nibble := range m {
		out[nibble] = symbol
	}

	return out
}

// proteinAlphabet is the extended IUPAC amino acid alphabet: the 20 standard
// residues plus the ambiguity codes B, Z, J, X, the non-standard residues U
// (selenocysteine), O (pyrrolysine), and the stop codon marker '*'.
var proteinAlphabet = buildSet("ABCDEFGHIKLMNPQRSTVWYXZJUO*")

func buildSet(symbols string) [256]bool {
	var out [256]bool
	for i := 0; i < len(symbols); i++ {
		out[symbols[i]] = true
	}

	return out
}

// EncodeSymbol maps an uppercase sequence symbol to its on-wire
// representation: a 4-bit nibble (0-15) for dna/rna, or the symbol's own byte
// value for protein/text. It returns errs.ErrInvalidSymbol if symbol does not
// belong to t's alphabet.
//
// Callers are responsible for folding case before calling EncodeSymbol; soft
// masking is conveyed out of band by the mask run stream, never by the
// symbol table itself.
func EncodeSymbol(t format.SequenceType, symbol byte) (byte, error) {
	switch t {
	case format.SequenceDNA:
		if v, ok := dnaEncode[symbol]; ok {
			return v, nil
		}
	case format.SequenceRNA:
		if v, ok := rnaEncode[symbol]; ok {
			return v, nil
		}
	case format.SequenceProtein:
		if proteinAlphabet[symbol] {
			return symbol, nil
		}
	case format.SequenceText:
		return symbol, nil
	}

	return 0, errs.ErrInvalidSymbol
}

// DecodeSymbol is the inverse of EncodeSymbol: it maps an on-wire nibble or
// byte back to the uppercase symbol it represents.
func DecodeSymbol(t format.SequenceType, value byte) (byte, error) {
	switch t {
	case format.SequenceDNA:
		if value > 15 {
			return 0, errs.ErrInvalidSymbol
		}

		if s := dnaDecode[value]; s != 0 {
			return s, nil
		}

		if value == 0 {
			return '-', nil
		}
	case format.SequenceRNA:
		if value > 15 {
			return 0, errs.ErrInvalidSymbol
		}

		if s := rnaDecode[value]; s != 0 {
			return s, nil
		}

		if value == 0 {
			return '-', nil
		}
	case format.SequenceProtein:
		if proteinAlphabet[value] {
			return value, nil
		}
	case format.SequenceText:
		return value, nil
	}

	return 0, errs.ErrInvalidSymbol
}

// PackNibbles packs a slice of already-encoded nibble values two to a byte,
// low nibble first, matching the byte layout used by the sequence stream.
// The nibble cursor this builds on runs continuously across record
// boundaries, so PackNibbles takes an explicit starting parity rather than
// always beginning at a byte boundary. If startHigh is true, dst must already
// hold the byte whose high nibble is pending (the call that set it returned
// high=true).
func PackNibbles(dst []byte, nibbles []byte, startHigh bool) ([]byte, bool) {
	high := startHigh

	for _, n := range nibbles {
		if high {
			dst[len(dst)-1] |= n << 4
			high = false
		} else {
			dst = append(dst, n)
			high = true
		}
	}

	return dst, high
}

// UnpackNibble extracts the nibble at logical position i (0-indexed, low
// nibble first) from a packed byte slice.
func UnpackNibble(packed []byte, i int) byte {
	b := packed[i/2]
	if i%2 == 0 {
		return b & 0x0F
	}

	return b >> 4
}
