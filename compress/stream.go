package compress

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// StreamReader opens r, a bounded byte range already positioned at the
// start of a Zstandard frame, as an independent decompressing reader. The
// returned reader is lazy: no decompression work happens until the caller
// actually reads from it, matching the archive's per-column decoder design
// where a block is only opened if its field was selected.
//
// Close releases the decoder's background resources; it does not close r.
func StreamReader(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}

	return &streamReader{dec: dec}, nil
}

type streamReader struct {
	dec *zstd.Decoder
}

func (s *streamReader) Read(p []byte) (int, error) {
	return s.dec.Read(p)
}

func (s *streamReader) Close() error {
	s.dec.Close()

	return nil
}
