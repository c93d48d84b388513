package varint

import (
	"bytes"
	"testing"

	"github.com/althonos/nafcodec/errs"
	"github.com/stretchr/testify/require"
)

func TestAppend_RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 129, 16383, 16384, 1 << 32, ^uint64(0)}

	for _, v := range values {
		enc := Encode(v)
		require.LessOrEqual(t, len(enc), MaxLen)

		got, n, err := DecodeBytes(enc)
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.Equal(t, len(enc), n)
	}
}

func TestEncode_Canonical(t *testing.T) {
	// 300 = 0b1_0010_1100 -> low 7 bits 0101100 with continuation, then 10
	require.Equal(t, []byte{0xAC, 0x02}, Encode(300))
	require.Equal(t, []byte{0x00}, Encode(0))
	require.Equal(t, []byte{0x7F}, Encode(127))
	require.Equal(t, []byte{0x80, 0x01}, Encode(128))
}

func TestDecode_Truncated(t *testing.T) {
	r := bytes.NewReader([]byte{0x80, 0x80})
	_, err := Decode(r)
	require.ErrorIs(t, err, errs.ErrTruncated)
}

func TestDecode_Overflow(t *testing.T) {
	// 10 continuation bytes, all carrying non-zero payload, overflow 64 bits.
	overflow := bytes.Repeat([]byte{0xFF}, 10)
	overflow = append(overflow, 0xFF)
	r := bytes.NewReader(overflow)
	_, err := Decode(r)
	require.ErrorIs(t, err, errs.ErrVarintOverflow)
}

func TestAppend_Grows(t *testing.T) {
	dst := []byte{0xAB}
	dst = Append(dst, 128)
	require.Equal(t, []byte{0xAB, 0x80, 0x01}, dst)
}
