// Package format defines the small enumerations shared by the NAF header,
// block index and alphabet packages.
package format

// SequenceType identifies the alphabet a NAF archive's sequence stream is
// encoded with. The numeric values match the one-byte sequence type code in
// the archive header.
type SequenceType uint8

const (
	// SequenceDNA is the 4-bit IUPAC nucleotide alphabet with T.
	SequenceDNA SequenceType = 0
	// SequenceRNA is the 4-bit IUPAC nucleotide alphabet with U instead of T.
	SequenceRNA SequenceType = 1
	// SequenceProtein is the protein alphabet, stored one byte per symbol.
	SequenceProtein SequenceType = 2
	// SequenceText is an arbitrary-byte alphabet, stored one byte per symbol.
	SequenceText SequenceType = 3
)

// String implements fmt.Stringer.
func (t SequenceType) String() string {
	switch t {
	case SequenceDNA:
		return "dna"
	case SequenceRNA:
		return "rna"
	case SequenceProtein:
		return "protein"
	case SequenceText:
		return "text"
	default:
		return "unknown"
	}
}

// Valid reports whether t is one of the four defined sequence type codes.
func (t SequenceType) Valid() bool {
	switch t {
	case SequenceDNA, SequenceRNA, SequenceProtein, SequenceText:
		return true
	default:
		return false
	}
}

// Packed reports whether the sequence stream for t is 4-bit nibble packed
// (two symbols per byte) rather than one byte per symbol.
//
// Only the nucleotide alphabets (dna, rna) are nibble-packed; protein and
// text are stored one byte per symbol.
func (t SequenceType) Packed() bool {
	return t == SequenceDNA || t == SequenceRNA
}

// CompressionType identifies the compression applied to a temporary column
// spill. Unlike the archive's own streams (always Zstandard on the wire),
// spills are an internal implementation detail and may use a cheaper codec.
type CompressionType uint8

const (
	// CompressionNone stores spilled bytes uncompressed.
	CompressionNone CompressionType = 0
	// CompressionZstd compresses with Zstandard, used for archive blocks.
	CompressionZstd CompressionType = 1
	// CompressionLZ4 compresses with LZ4, used for fast in-memory spills.
	CompressionLZ4 CompressionType = 2
)

// String implements fmt.Stringer.
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// Field identifies one of the six columnar streams a NAF archive may carry.
// The iota order matches the archive's fixed block order.
type Field uint8

const (
	FieldIDs Field = iota
	FieldComments
	FieldLengths
	FieldMask
	FieldSequence
	FieldQuality

	fieldCount = int(FieldQuality) + 1
)

// String implements fmt.Stringer.
func (f Field) String() string {
	switch f {
	case FieldIDs:
		return "ids"
	case FieldComments:
		return "comments"
	case FieldLengths:
		return "lengths"
	case FieldMask:
		return "mask"
	case FieldSequence:
		return "sequence"
	case FieldQuality:
		return "quality"
	default:
		return "unknown"
	}
}

// FieldCount is the number of distinct columnar streams a NAF archive can
// carry.
const FieldCount = fieldCount

// FieldSet is a bitmask over the six Field values, used both by the Encoder
// (which columns are active) and the Decoder (which columns a caller wants
// materialized).
type FieldSet uint8

// AllFields selects every column.
const AllFields FieldSet = (1 << fieldCount) - 1

// Has reports whether s selects f.
func (s FieldSet) Has(f Field) bool {
	return s&(1<<f) != 0
}

// With returns s with f selected.
func (s FieldSet) With(f Field) FieldSet {
	return s | (1 << f)
}

// Without returns s with f cleared.
func (s FieldSet) Without(f Field) FieldSet {
	return s &^ (1 << f)
}
