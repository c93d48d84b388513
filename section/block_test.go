package section

import (
	"bytes"
	"testing"

	"github.com/althonos/nafcodec/format"
	"github.com/stretchr/testify/require"
)

type seekableBuffer struct {
	*bytes.Reader
}

func newSeekable(b []byte) *seekableBuffer {
	return &seekableBuffer{bytes.NewReader(b)}
}

func TestScanIndex_FixedOrder(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteBlockHeader(&buf, 10, 5))
	buf.Write(bytes.Repeat([]byte{0xAA}, 5))

	require.NoError(t, WriteBlockHeader(&buf, 20, 8))
	buf.Write(bytes.Repeat([]byte{0xBB}, 8))

	present := FlagIDs | FlagSequence

	entries, err := ScanIndex(newSeekable(buf.Bytes()), present)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.Equal(t, format.FieldIDs, entries[0].Field)
	require.Equal(t, uint64(10), entries[0].OriginalSize)
	require.Equal(t, uint64(5), entries[0].CompressedSize)

	require.Equal(t, format.FieldSequence, entries[1].Field)
	require.Equal(t, uint64(20), entries[1].OriginalSize)
	require.Equal(t, uint64(8), entries[1].CompressedSize)

	// offset of second block should be right after the first block's payload
	require.Equal(t, entries[0].Offset+int64(entries[0].CompressedSize)+2, entries[1].Offset)
}

func TestScanIndex_SkipsAbsentFields(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBlockHeader(&buf, 4, 4))
	buf.Write([]byte{1, 2, 3, 4})

	present := FlagLengths

	entries, err := ScanIndex(newSeekable(buf.Bytes()), present)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, format.FieldLengths, entries[0].Field)
}

func TestLookup(t *testing.T) {
	entries := []BlockIndexEntry{
		{Field: format.FieldIDs, Offset: 0},
		{Field: format.FieldSequence, Offset: 42},
	}

	e, ok := Lookup(entries, format.FieldSequence)
	require.True(t, ok)
	require.Equal(t, int64(42), e.Offset)

	_, ok = Lookup(entries, format.FieldQuality)
	require.False(t, ok)
}
