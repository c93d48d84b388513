package spill

import (
	"bytes"
	"io"

	"github.com/althonos/nafcodec/compress"
	"github.com/althonos/nafcodec/internal/pool"
)

// memoryChunkSize is the amount of buffered column data MemorySpill holds
// before flushing it through the LZ4 codec, when compression is enabled.
const memoryChunkSize = 1 << 16 // 64KiB

// MemorySpill buffers a column entirely in memory. With compression
// disabled it is a thin wrapper over a pooled growable buffer. With
// compression enabled, full chunks are flushed through an LZ4 codec as they
// fill, bounding the spill's resident memory to roughly one chunk plus the
// compressed history regardless of total column size.
type MemorySpill struct {
	buf    *pool.ByteBuffer
	codec  compress.Codec
	chunks [][]byte
	total  int
}

// NewMemorySpill returns an empty MemorySpill. When compressed is true,
// buffered data is LZ4-compressed in chunks as it accumulates.
func NewMemorySpill(compressed bool) *MemorySpill {
	m := &MemorySpill{buf: pool.NewByteBuffer(pool.ColumnBufferDefaultSize)}

	if compressed {
		m.codec = compress.NewLZ4Compressor()
	}

	return m
}

var _ Spill = (*MemorySpill)(nil)

// Write implements io.Writer.
func (m *MemorySpill) Write(p []byte) (int, error) {
	n := len(p)
	m.total += n
	m.buf.MustWrite(p)

	if m.codec != nil {
		for m.buf.Len() >= memoryChunkSize {
			if err := m.flushChunk(memoryChunkSize); err != nil {
				return n, err
			}
		}
	}

	return n, nil
}

// flushChunk compresses the first size bytes of the buffer, appends the
// result to chunks, and shifts the remaining bytes to the front.
func (m *MemorySpill) flushChunk(size int) error {
	compressed, err := m.codec.Compress(m.buf.Slice(0, size))
	if err != nil {
		return err
	}

	m.chunks = append(m.chunks, append([]byte(nil), compressed...))

	rest := append([]byte(nil), m.buf.Bytes()[size:]...)
	m.buf.Reset()
	m.buf.MustWrite(rest)

	return nil
}

// Len implements Spill.
func (m *MemorySpill) Len() int {
	return m.total
}

// Reader implements Spill.
func (m *MemorySpill) Reader() (io.ReadCloser, error) {
	if m.codec == nil {
		return io.NopCloser(bytes.NewReader(append([]byte(nil), m.buf.Bytes()...))), nil
	}

	if m.buf.Len() > 0 {
		if err := m.flushChunk(m.buf.Len()); err != nil {
			return nil, err
		}
	}

	return &chunkReader{codec: m.codec, chunks: m.chunks}, nil
}

// Close implements Spill.
func (m *MemorySpill) Close() error {
	pool.PutColumnBuffer(m.buf)
	m.chunks = nil

	return nil
}

// chunkReader lazily decompresses MemorySpill's LZ4 chunks in order, never
// holding more than one decompressed chunk in memory at a time.
type chunkReader struct {
	codec  compress.Codec
	chunks [][]byte
	idx    int
	cur    *bytes.Reader
}

func (c *chunkReader) Read(p []byte) (int, error) {
	for {
		if c.cur != nil {
			n, err := c.cur.Read(p)
			if n > 0 || err != io.EOF {
				return n, err
			}

			c.cur = nil
		}

		if c.idx >= len(c.chunks) {
			return 0, io.EOF
		}

		decompressed, err := c.codec.Decompress(c.chunks[c.idx])
		if err != nil {
			return 0, err
		}

		c.idx++
		c.cur = bytes.NewReader(decompressed)
	}
}

func (c *chunkReader) Close() error {
	return nil
}
