package section

import (
	"bytes"
	"io"

	"github.com/althonos/nafcodec/errs"
	"github.com/althonos/nafcodec/format"
	"github.com/althonos/nafcodec/varint"
)

// byteReader adapts an io.Reader to io.ByteReader one byte at a time,
// without bufio's read-ahead buffering. ParseHeader is called against a
// seekable archive source whose position must land exactly at the first
// byte past the logical header once parsing returns, since the block index
// that follows is read from that same position; a buffering reader would
// silently consume bytes belonging to the first block.
type byteReader struct {
	r   io.Reader
	buf [1]byte
}

func (b *byteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(b.r, b.buf[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return 0, io.EOF
		}

		return 0, err
	}

	return b.buf[0], nil
}

// MagicBytes is the 3-byte sequence every NAF archive begins with.
var MagicBytes = [3]byte{0x01, 0xF9, 0xEC}

const (
	// VersionV1 is the original archive version: ids through sequence,
	// quality and title never present.
	VersionV1 uint8 = 0x01
	// VersionV2 adds the quality stream, the name-separator byte, and the
	// optional title extension.
	VersionV2 uint8 = 0x02
)

// Header is the fixed prelude of a NAF archive: magic, version, flags,
// sequence type, and the advisory formatting fields, followed by the
// sequence count and the advisory maximum unmasked run length.
type Header struct {
	Version      uint8
	Flags        Flags
	SequenceType format.SequenceType
	LineLength   uint8
	Separator    byte
	// Title is the advisory header string carried when Flags has FlagTitle
	// set (v2 only). Empty when the bit is clear.
	Title        string
	NumSequences uint64
	MaxRun       uint64
}

// ParseHeader reads and validates a Header from the start of r.
//
// It returns errs.ErrBadMagic if the magic bytes don't match,
// errs.ErrUnsupportedVersion if the version byte isn't VersionV1 or
// VersionV2, and errs.ErrFormat for an invalid sequence type code, a set
// reserved flag bit, or a v2-only bit set in a v1 archive.
func ParseHeader(r io.Reader) (Header, error) {
	br := &byteReader{r: r}

	var h Header

	var magic [3]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Header{}, errs.ErrTruncated
		}

		return Header{}, err
	}

	if magic != MagicBytes {
		return Header{}, errs.ErrBadMagic
	}

	fields := make([]byte, 5)
	if _, err := io.ReadFull(r, fields); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Header{}, errs.ErrTruncated
		}

		return Header{}, err
	}

	h.Version = fields[0]
	if h.Version != VersionV1 && h.Version != VersionV2 {
		return Header{}, errs.ErrUnsupportedVersion
	}

	h.Flags = Flags(fields[1])
	if err := h.Flags.Validate(h.Version); err != nil {
		return Header{}, err
	}

	h.SequenceType = format.SequenceType(fields[2])
	if !h.SequenceType.Valid() {
		return Header{}, errs.ErrFormat
	}

	h.LineLength = fields[3]
	h.Separator = fields[4]

	if h.Version == VersionV2 && h.Flags.Has(FlagTitle) {
		title, err := readCString(br)
		if err != nil {
			return Header{}, err
		}

		h.Title = title
	}

	n, err := varint.Decode(br)
	if err != nil {
		return Header{}, err
	}

	h.NumSequences = n

	maxRun, err := varint.Decode(br)
	if err != nil {
		return Header{}, err
	}

	h.MaxRun = maxRun

	return h, nil
}

// WriteHeader writes h to w in wire format.
func WriteHeader(w io.Writer, h Header) error {
	if err := h.Flags.Validate(h.Version); err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.Write(MagicBytes[:])
	buf.WriteByte(h.Version)
	buf.WriteByte(byte(h.Flags))
	buf.WriteByte(byte(h.SequenceType))
	buf.WriteByte(h.LineLength)
	buf.WriteByte(h.Separator)

	if h.Version == VersionV2 && h.Flags.Has(FlagTitle) {
		buf.WriteString(h.Title)
		buf.WriteByte(0)
	}

	buf.Write(varint.Encode(h.NumSequences))
	buf.Write(varint.Encode(h.MaxRun))

	_, err := w.Write(buf.Bytes())

	return err
}

// readCString reads bytes up to and including a terminating 0x00 byte,
// returning the string without the terminator.
func readCString(r io.ByteReader) (string, error) {
	var buf bytes.Buffer

	for {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				return "", errs.ErrTruncated
			}

			return "", err
		}

		if b == 0 {
			return buf.String(), nil
		}

		buf.WriteByte(b)
	}
}
