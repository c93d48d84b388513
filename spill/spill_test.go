package spill

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemorySpill_RoundTrip_Uncompressed(t *testing.T) {
	s := NewMemorySpill(false)
	defer s.Close()

	payload := []byte("ACGTACGTACGT")
	n, err := s.Write(payload)
	require.NoError(t, err)
	require.Equal(t, len(payload), n)
	require.Equal(t, len(payload), s.Len())

	r, err := s.Reader()
	require.NoError(t, err)
	defer r.Close()

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestMemorySpill_RoundTrip_CompressedAcrossChunks(t *testing.T) {
	s := NewMemorySpill(true)
	defer s.Close()

	payload := bytes.Repeat([]byte("ACGTACGTNNNN"), 20000) // forces multiple chunk flushes
	_, err := s.Write(payload)
	require.NoError(t, err)
	require.Equal(t, len(payload), s.Len())

	r, err := s.Reader()
	require.NoError(t, err)
	defer r.Close()

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestMemorySpill_RoundTrip_MultipleWrites(t *testing.T) {
	s := NewMemorySpill(true)
	defer s.Close()

	var want bytes.Buffer
	for i := 0; i < 10; i++ {
		chunk := bytes.Repeat([]byte{byte('A' + i)}, 10000)
		want.Write(chunk)
		_, err := s.Write(chunk)
		require.NoError(t, err)
	}

	r, err := s.Reader()
	require.NoError(t, err)
	defer r.Close()

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, want.Bytes(), got)
}

func TestFileSpill_RoundTrip(t *testing.T) {
	s, err := NewFileSpill(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	payload := []byte("ACGTNNNNACGT")
	_, err = s.Write(payload)
	require.NoError(t, err)
	require.Equal(t, len(payload), s.Len())

	r, err := s.Reader()
	require.NoError(t, err)
	defer r.Close()

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestFileSpill_CloseRemovesFile(t *testing.T) {
	s, err := NewFileSpill(t.TempDir())
	require.NoError(t, err)

	name := s.f.Name()
	require.NoError(t, s.Close())

	_, err = os.Open(name)
	require.Error(t, err)
	require.True(t, os.IsNotExist(err))
}
