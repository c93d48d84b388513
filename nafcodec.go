package nafcodec

import (
	"io"

	"github.com/althonos/nafcodec/decoder"
	"github.com/althonos/nafcodec/encoder"
	"github.com/althonos/nafcodec/errs"
	"github.com/althonos/nafcodec/format"
	"github.com/althonos/nafcodec/record"
)

// Re-exported so callers rarely need to import the record and format
// packages directly for ordinary use.
type (
	// Record is one archive entry. See the record package for field docs.
	Record = record.Record
	// SequenceType identifies a NAF archive's declared alphabet.
	SequenceType = format.SequenceType
	// FieldSet selects a subset of a Record's columns.
	FieldSet = format.FieldSet
	// Field identifies one of the six columnar streams an archive may carry.
	Field = format.Field
)

// Field identifiers, re-exported from the format package.
const (
	FieldIDs      = format.FieldIDs
	FieldComments = format.FieldComments
	FieldLengths  = format.FieldLengths
	FieldMask     = format.FieldMask
	FieldSequence = format.FieldSequence
	FieldQuality  = format.FieldQuality
)

// Sequence type codes, re-exported from the format package.
const (
	SequenceDNA     = format.SequenceDNA
	SequenceRNA     = format.SequenceRNA
	SequenceProtein = format.SequenceProtein
	SequenceText    = format.SequenceText
)

// AllFields selects every column.
const AllFields = format.AllFields

// Error sentinels, re-exported from the errs package. Compare with
// errors.Is.
var (
	ErrBadMagic           = errs.ErrBadMagic
	ErrUnsupportedVersion = errs.ErrUnsupportedVersion
	ErrFormat             = errs.ErrFormat
	ErrTruncated          = errs.ErrTruncated
	ErrInvalidSymbol      = errs.ErrInvalidSymbol
	ErrLengthMismatch     = errs.ErrLengthMismatch
	ErrDecompression      = errs.ErrDecompression
	ErrMissingField       = errs.ErrMissingField
	ErrClosed             = errs.ErrClosed
)

// Decoder reads records from a NAF archive. See the decoder package.
type Decoder = decoder.Decoder

// DecoderOption configures a Decoder. See decoder.WithFields.
type DecoderOption = decoder.Option

// WithFields restricts a Decoder to materializing only the given fields.
func WithFields(fields FieldSet) DecoderOption {
	return decoder.WithFields(fields)
}

// Encoder writes records to a NAF archive. See the encoder package.
type Encoder = encoder.Encoder

// EncoderOption configures an Encoder. See the encoder package for the full
// set (WithVersion, WithFields, WithLineLength, WithSeparator, WithTitle,
// WithSpillFactory, WithDuplicateTracking).
type EncoderOption = encoder.Option

// Open parses src's header and block index and returns a Decoder ready to
// iterate its records. src must be seekable (an *os.File or *bytes.Reader
// both satisfy decoder.Source), since the archive interleaves several
// independently-compressed columns that the Decoder seeks between.
func Open(src decoder.Source, opts ...DecoderOption) (*Decoder, error) {
	return decoder.New(src, opts...)
}

// Create returns an Encoder that will write a NAF archive to dst once
// Close is called. seqType fixes the alphabet the sequence column (if
// active) is encoded against.
func Create(dst io.Writer, seqType SequenceType, opts ...EncoderOption) (*Encoder, error) {
	return encoder.New(dst, seqType, opts...)
}
