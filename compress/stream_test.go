package compress

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStream_RoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("ACGTACGTNNNN"), 500)

	frame, err := NewZstdCompressor().Compress(payload)
	require.NoError(t, err)

	r, err := StreamReader(bytes.NewReader(frame))
	require.NoError(t, err)
	defer r.Close()

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestStream_IndependentOverSubrange(t *testing.T) {
	codec := NewZstdCompressor()

	a, err := codec.Compress([]byte("first block payload"))
	require.NoError(t, err)

	b, err := codec.Compress([]byte("second block payload, different contents"))
	require.NoError(t, err)

	// Concatenate as if they were two adjacent archive blocks, then open
	// each via an independent bounded reader over its own subrange.
	combined := append(append([]byte(nil), a...), b...)

	ra, err := StreamReader(bytes.NewReader(combined[:len(a)]))
	require.NoError(t, err)
	gotA, err := io.ReadAll(ra)
	require.NoError(t, err)
	require.Equal(t, "first block payload", string(gotA))

	rb, err := StreamReader(bytes.NewReader(combined[len(a):]))
	require.NoError(t, err)
	gotB, err := io.ReadAll(rb)
	require.NoError(t, err)
	require.Equal(t, "second block payload, different contents", string(gotB))
}
