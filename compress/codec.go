package compress

// Compressor compresses a complete in-memory buffer and returns the
// compressed result. It is used for the Encoder's in-memory scratch spills,
// which compress their buffered bytes one chunk at a time, and for framing a
// finished archive block in one call.
type Compressor interface {
	// Compress compresses data and returns the compressed result.
	//
	// The returned slice is newly allocated; the input slice is not
	// modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a complete in-memory buffer.
type Decompressor interface {
	// Decompress decompresses data and returns the original content.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines Compressor and Decompressor.
type Codec interface {
	Compressor
	Decompressor
}
