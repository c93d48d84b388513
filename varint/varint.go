// Package varint implements the unsigned little-endian base-128 variable
// length integer encoding used throughout the NAF container format: block
// sizes, sequence counts, per-record lengths and mask run lengths.
//
// Each byte carries 7 payload bits with the continuation bit (0x80) set on
// every byte but the last. Encoding is canonical: no trailing zero-valued
// continuation groups. Unlike a zigzag varint, there is no sign folding step,
// since NAF's lengths and sizes are never negative.
package varint

import (
	"bufio"
	"io"

	"github.com/althonos/nafcodec/errs"
)

// MaxLen is the maximum number of bytes a 64-bit unsigned value can occupy
// when varint-encoded.
const MaxLen = 10

// Append encodes v and appends its bytes to dst, returning the extended
// slice.
func Append(dst []byte, v uint64) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}

	return append(dst, byte(v))
}

// Encode returns v encoded as a standalone varint byte slice.
func Encode(v uint64) []byte {
	var buf [MaxLen]byte
	return append([]byte(nil), Append(buf[:0], v)...)
}

// Decode reads a single varint from r.
//
// It returns errs.ErrTruncated if r reaches EOF before a terminating byte,
// and errs.ErrVarintOverflow if the value would require more than 64 bits.
func Decode(r io.ByteReader) (uint64, error) {
	var (
		result uint64
		shift  uint
	)

	for {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				return 0, errs.ErrTruncated
			}

			return 0, err
		}

		if shift >= 64 {
			return 0, errs.ErrVarintOverflow
		}

		payload := uint64(b & 0x7F)
		if shift == 63 && payload > 1 {
			return 0, errs.ErrVarintOverflow
		}

		result |= payload << shift
		if b&0x80 == 0 {
			return result, nil
		}

		shift += 7
	}
}

// DecodeBytes reads a single varint from the head of b, returning the decoded
// value and the number of bytes consumed.
func DecodeBytes(b []byte) (uint64, int, error) {
	br := &sliceByteReader{b: b}

	v, err := Decode(br)
	if err != nil {
		return 0, 0, err
	}

	return v, br.pos, nil
}

type sliceByteReader struct {
	b   []byte
	pos int
}

func (r *sliceByteReader) ReadByte() (byte, error) {
	if r.pos >= len(r.b) {
		return 0, io.EOF
	}

	b := r.b[r.pos]
	r.pos++

	return b, nil
}

// NewReader wraps r in a buffered io.ByteReader suitable for repeated Decode
// calls, the way the Decoder reads one varint per record from the lengths
// and mask streams.
func NewReader(r io.Reader) *bufio.Reader {
	return bufio.NewReader(r)
}
