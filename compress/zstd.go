package compress

// ZstdCompressor provides whole-buffer Zstandard compression. The Encoder
// uses it directly to frame each finished column as its archive block (the
// whole column is already resident in memory by then). Column spills do not
// use it: spill.MemorySpill compresses with LZ4 when compression is enabled.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
