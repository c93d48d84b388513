// Package mask implements the soft-mask run-length stream: the alternating
// sequence of unmasked/masked run lengths that records which decoded symbols
// should be presented in lowercase.
//
// The run stream always starts in the unmasked state. If a sequence's first
// symbol is itself masked, the stream begins with a zero-length unmasked
// run so the alternation still holds. Runs span record boundaries: the
// cursor and accumulator both track state across as many records as the
// caller drives them through, and the stream is only closed out once, at
// the very end of encoding.
package mask

import (
	"io"

	"github.com/althonos/nafcodec/varint"
)

// Cursor decodes a mask run-length stream one symbol at a time.
type Cursor struct {
	r         io.ByteReader
	remaining uint64
	masked    bool // mask state of the run currently being consumed
	upcoming  bool // mask state the next run read will carry
}

// NewCursor returns a Cursor reading run lengths from r.
func NewCursor(r io.ByteReader) *Cursor {
	return &Cursor{r: r}
}

// Next reports whether the next symbol is masked, advancing the run-length
// state as needed. It is an error to call Next more times than there are
// symbols in the archive; callers must stop at the record lengths' total.
func (c *Cursor) Next() (bool, error) {
	for c.remaining == 0 {
		n, err := varint.Decode(c.r)
		if err != nil {
			return false, err
		}

		c.masked = c.upcoming
		c.upcoming = !c.upcoming
		c.remaining = n
		// A zero-length run only flips parity; loop until a run with
		// at least one symbol is reached.
	}

	c.remaining--

	return c.masked, nil
}

// Accumulator builds a mask run-length stream from a sequence of per-symbol
// masked flags, emitting a varint each time the masked state changes.
type Accumulator struct {
	dst     []byte
	run     uint64
	masked  bool
	started bool
}

// NewAccumulator returns an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Push records the mask state of the next symbol.
func (a *Accumulator) Push(masked bool) {
	if !a.started {
		a.started = true
		a.masked = masked
		a.run = 1

		if masked {
			// Stream must start unmasked; emit a zero-length leading
			// unmasked run before beginning the masked run.
			a.dst = varint.Append(a.dst, 0)
		}

		return
	}

	if masked == a.masked {
		a.run++
		return
	}

	a.dst = varint.Append(a.dst, a.run)
	a.masked = masked
	a.run = 1
}

// Bytes returns the encoded run-length stream so far, including the
// in-progress run. Callers should call Bytes only once encoding is
// complete; it is safe to call on an empty Accumulator (returns nil).
func (a *Accumulator) Bytes() []byte {
	if !a.started {
		return a.dst
	}

	return varint.Append(append([]byte(nil), a.dst...), a.run)
}
