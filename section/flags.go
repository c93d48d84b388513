package section

import (
	"github.com/althonos/nafcodec/errs"
	"github.com/althonos/nafcodec/format"
)

// Flags is the one-byte bitfield that follows the version byte in a NAF
// archive header. Bit 0 is reserved and bit 1 marks a title; each of bits 2
// to 7 marks whether one of the six fixed-order columnar streams is present.
type Flags uint8

const (
	// FlagReserved is bit 0, the extended format indicator. No archive this
	// codec produces or accepts sets it.
	FlagReserved Flags = 1 << 0
	// FlagTitle marks a header carrying an advisory title string. Only
	// meaningful when Header.Version is 2.
	FlagTitle Flags = 1 << 1
	// FlagIDs marks the presence of the ids block.
	FlagIDs Flags = 1 << 2
	// FlagComments marks the presence of the comments block.
	FlagComments Flags = 1 << 3
	// FlagLengths marks the presence of the lengths block.
	FlagLengths Flags = 1 << 4
	// FlagMask marks the presence of the soft-mask run-length block.
	FlagMask Flags = 1 << 5
	// FlagSequence marks the presence of the packed sequence block.
	FlagSequence Flags = 1 << 6
	// FlagQuality marks the presence of the quality block. v1 archives must
	// leave this bit clear.
	FlagQuality Flags = 1 << 7
)

// fieldBit maps each format.Field to its Flags bit, in the archive's fixed
// block order.
var fieldBit = [format.FieldCount]Flags{
	format.FieldIDs:      FlagIDs,
	format.FieldComments: FlagComments,
	format.FieldLengths:  FlagLengths,
	format.FieldMask:     FlagMask,
	format.FieldSequence: FlagSequence,
	format.FieldQuality:  FlagQuality,
}

// BitFor returns the Flags bit corresponding to f.
func BitFor(f format.Field) Flags {
	return fieldBit[f]
}

// Has reports whether f sets every bit in bits.
func (f Flags) Has(bits Flags) bool {
	return f&bits == bits
}

// With returns f with bits set.
func (f Flags) With(bits Flags) Flags {
	return f | bits
}

// Without returns f with bits cleared.
func (f Flags) Without(bits Flags) Flags {
	return f &^ bits
}

// HasField reports whether the block for f is present.
func (f Flags) HasField(field format.Field) bool {
	return f.Has(BitFor(field))
}

// WithField returns f with the block for field marked present.
func (f Flags) WithField(field format.Field) Flags {
	return f.With(BitFor(field))
}

// Validate checks the structural constraints on a decoded Flags value for
// the given archive version: the reserved bit must be clear, and the quality
// and title bits (v2 features) must be clear in a v1 archive.
func (f Flags) Validate(version uint8) error {
	if f.Has(FlagReserved) {
		return errs.ErrFormat
	}

	if version == 1 && f&(FlagQuality|FlagTitle) != 0 {
		return errs.ErrFormat
	}

	return nil
}
