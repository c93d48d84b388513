// Package record defines the in-memory representation of one NAF archive
// entry, the unit both Encoder.Push and Decoder.Next operate on.
package record

import (
	"fmt"

	"github.com/althonos/nafcodec/errs"
)

// Record is one archive entry. Every field is optional; which ones are
// populated on decode depends on which columns the archive carries and
// which the caller selected, and on encode depends on which columns the
// Encoder was configured to write.
//
// Sequence holds symbols in their original case: a lowercase letter marks a
// soft-masked position, conveyed on the wire by the mask run stream rather
// than by the symbol table itself. Quality holds one byte per symbol
// (Phred+33 or any other single-byte scale the caller chooses); it is a
// format version 2 feature.
type Record struct {
	ID       string
	Comment  string
	Length   uint64
	Sequence []byte
	Quality  []byte
}

// Validate checks the cross-field length relationships a Record must
// satisfy before Encoder.Push will accept it: a Quality stream requires a
// Sequence of the same length, and a non-zero declared Length must match an
// actually-present Sequence.
func (r Record) Validate() error {
	if r.Quality != nil {
		if r.Sequence == nil {
			return errs.ErrMissingField
		}

		if len(r.Quality) != len(r.Sequence) {
			return fmt.Errorf("%w: %d quality scores, %d sequence symbols", errs.ErrLengthMismatch, len(r.Quality), len(r.Sequence))
		}
	}

	if r.Sequence != nil && r.Length != 0 && uint64(len(r.Sequence)) != r.Length {
		return fmt.Errorf("%w: declared length %d, got %d symbols", errs.ErrSequenceMismatch, r.Length, len(r.Sequence))
	}

	return nil
}

// EffectiveLength returns the record's length for the lengths stream: the
// declared Length if set, otherwise the length of Sequence.
func (r Record) EffectiveLength() uint64 {
	if r.Length != 0 {
		return r.Length
	}

	return uint64(len(r.Sequence))
}
