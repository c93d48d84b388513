package mask

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeAll(t *testing.T, stream []byte, n int) []bool {
	t.Helper()

	c := NewCursor(bytes.NewReader(stream))
	out := make([]bool, n)

	for i := 0; i < n; i++ {
		v, err := c.Next()
		require.NoError(t, err)
		out[i] = v
	}

	return out
}

func TestRoundTrip_StartsUnmasked(t *testing.T) {
	masks := []bool{false, false, false, true, true, false, false}

	a := NewAccumulator()
	for _, m := range masks {
		a.Push(m)
	}

	got := decodeAll(t, a.Bytes(), len(masks))
	require.Equal(t, masks, got)
}

func TestRoundTrip_StartsMasked(t *testing.T) {
	masks := []bool{true, true, false, false, true}

	a := NewAccumulator()
	for _, m := range masks {
		a.Push(m)
	}

	got := decodeAll(t, a.Bytes(), len(masks))
	require.Equal(t, masks, got)
}

func TestRoundTrip_AllUnmasked(t *testing.T) {
	masks := make([]bool, 10)

	a := NewAccumulator()
	for _, m := range masks {
		a.Push(m)
	}

	got := decodeAll(t, a.Bytes(), len(masks))
	require.Equal(t, masks, got)
}

func TestRoundTrip_SpansMultiplePushSequences(t *testing.T) {
	// Simulates a record boundary: two separate batches pushed into the
	// same accumulator, runs must still merge across the "boundary".
	a := NewAccumulator()
	for _, m := range []bool{false, false, true} {
		a.Push(m)
	}

	for _, m := range []bool{true, true, false} {
		a.Push(m)
	}

	want := []bool{false, false, true, true, true, false}
	got := decodeAll(t, a.Bytes(), len(want))
	require.Equal(t, want, got)
}

func TestEmptyAccumulator(t *testing.T) {
	a := NewAccumulator()
	require.Nil(t, a.Bytes())
}
