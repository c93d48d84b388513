package decoder

import "io"

// symbolReader pulls one on-wire symbol value at a time out of a byte
// stream. For packed (nibble) alphabets it yields 4-bit values, low nibble
// first, with the pending high nibble persisting across calls regardless of
// record boundaries, matching the archive's continuous nibble cursor. For
// unpacked (byte-per-symbol) alphabets it yields whole bytes and carries no
// cross-call state at all.
type symbolReader struct {
	r       io.Reader
	packed  bool
	cur     byte
	pending bool
}

// newSymbolReader returns a reader over r. When packed is true, symbols are
// unpacked two to a byte (dna/rna); otherwise each symbol occupies a whole
// byte (protein/text).
func newSymbolReader(r io.Reader, packed bool) *symbolReader {
	return &symbolReader{r: r, packed: packed}
}

// Next returns the next symbol value: 0-15 for a packed alphabet, 0-255
// otherwise.
func (n *symbolReader) Next() (byte, error) {
	if !n.packed {
		var b [1]byte
		if _, err := io.ReadFull(n.r, b[:]); err != nil {
			if err == io.ErrUnexpectedEOF {
				err = io.EOF
			}

			return 0, err
		}

		return b[0], nil
	}

	if n.pending {
		n.pending = false

		return n.cur >> 4, nil
	}

	var b [1]byte
	if _, err := io.ReadFull(n.r, b[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}

		return 0, err
	}

	n.cur = b[0]
	n.pending = true

	return n.cur & 0x0F, nil
}
