package nafcodec_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/althonos/nafcodec"
)

func TestOpenCreate_RoundTrip(t *testing.T) {
	var buf bytes.Buffer

	enc, err := nafcodec.Create(&buf, nafcodec.SequenceDNA)
	require.NoError(t, err)

	require.NoError(t, enc.Push(nafcodec.Record{ID: "seq1", Sequence: []byte("ACGT"), Quality: []byte("IIII"), Length: 4}))
	require.NoError(t, enc.Close())

	dec, err := nafcodec.Open(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer dec.Close()

	rec, err := dec.Next()
	require.NoError(t, err)
	require.Equal(t, "seq1", rec.ID)
	require.Equal(t, []byte("ACGT"), rec.Sequence)

	_, err = dec.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestOpenCreate_FieldSelection(t *testing.T) {
	var buf bytes.Buffer

	enc, err := nafcodec.Create(&buf, nafcodec.SequenceDNA)
	require.NoError(t, err)

	require.NoError(t, enc.Push(nafcodec.Record{
		ID: "seq1", Comment: "note", Sequence: []byte("ACGT"), Quality: []byte("IIII"), Length: 4,
	}))
	require.NoError(t, enc.Close())

	dec, err := nafcodec.Open(bytes.NewReader(buf.Bytes()), nafcodec.WithFields(
		nafcodec.AllFields.Without(nafcodec.FieldQuality),
	))
	require.NoError(t, err)
	defer dec.Close()

	rec, err := dec.Next()
	require.NoError(t, err)
	require.Equal(t, "seq1", rec.ID)
	require.Nil(t, rec.Quality)
}
