// Package errs defines the sentinel errors shared across the nafcodec packages.
//
// Callers should compare against these with errors.Is, since call sites wrap
// them with fmt.Errorf("...: %w", ...) to attach positional or contextual
// detail.
package errs

import "errors"

var (
	// ErrBadMagic is returned when the archive does not start with the NAF
	// magic bytes.
	ErrBadMagic = errors.New("naf: bad magic number")

	// ErrUnsupportedVersion is returned when the header's version byte is not
	// one this codec recognizes.
	ErrUnsupportedVersion = errors.New("naf: unsupported format version")

	// ErrFormat is returned for structural violations: reserved flag bits set,
	// an unknown sequence type code, or a block present without the stream it
	// logically depends on (e.g. sequence without lengths).
	ErrFormat = errors.New("naf: malformed archive")

	// ErrTruncated is returned when a sub-stream reaches EOF before its
	// expected per-record quantum has been consumed.
	ErrTruncated = errors.New("naf: truncated stream")

	// ErrInvalidSymbol is returned when a decoded nibble or byte falls outside
	// the alphabet of the archive's declared sequence type.
	ErrInvalidSymbol = errors.New("naf: invalid symbol for sequence type")

	// ErrLengthMismatch is returned when two already-present streams
	// disagree on a shared length: a Record's Quality and Sequence must
	// have the same number of entries, and a decoded sequence stream's
	// declared byte size must match the number of symbols every record
	// actually consumed from it. See ErrSequenceMismatch for the distinct
	// declared-vs-submitted check on a single record.
	ErrLengthMismatch = errors.New("naf: length mismatch")

	// ErrDecompression is returned when the underlying Zstandard decoder
	// reports an error.
	ErrDecompression = errors.New("naf: decompression failed")

	// ErrMissingField is returned by the Encoder when an active column
	// receives a record with that field unset.
	ErrMissingField = errors.New("naf: missing required field")

	// ErrClosed is returned when Push or Close is called on an Encoder that
	// has already been closed.
	ErrClosed = errors.New("naf: codec already closed")

	// ErrVarintOverflow is returned when a varint's accumulated shift would
	// exceed 64 bits.
	ErrVarintOverflow = errors.New("naf: varint overflow")

	// ErrSequenceMismatch is returned by Record.Validate when a record's own
	// declared Length field does not match the number of symbols in the
	// Sequence submitted alongside it. Distinct from ErrLengthMismatch,
	// which compares two streams against each other rather than a single
	// record's metadata against its own payload.
	ErrSequenceMismatch = errors.New("naf: sequence length mismatch")
)
