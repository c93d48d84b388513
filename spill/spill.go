// Package spill provides the Encoder's temporary per-column storage: an
// append-only sink while records are being pushed, then a forward-only
// reader once the column is finalized. A column never needs random access
// to its own spill, only a single sequential pass when the Encoder is closed, so both
// implementations optimize for sequential append and sequential read.
package spill

import "io"

// Spill is one column's scratch storage during encoding. Write must not be
// called after Reader; Reader may only be called once.
type Spill interface {
	io.Writer

	// Len reports the number of bytes written so far.
	Len() int

	// Reader returns a forward-only reader over everything written so far
	// and finalizes the spill for reading. The Spill must not be written to
	// again after this call.
	Reader() (io.ReadCloser, error)

	// Close releases any resources (scratch files, pooled buffers) held by
	// the spill. Safe to call after Reader, and safe to call without ever
	// calling Reader (e.g. on an aborted encode).
	Close() error
}

// Factory creates a new, empty Spill for one column. The Encoder calls it
// once per active field.
type Factory func() (Spill, error)
