package decoder

import (
	"io"
	"iter"

	"github.com/althonos/nafcodec/record"
)

// Records returns a range-over-func iterator yielding every record in
// order, paired with the error (if any) that stopped iteration. Iteration
// stops after the first non-nil error, exactly like a direct Next() loop;
// io.EOF is not yielded.
func (d *Decoder) Records() iter.Seq2[record.Record, error] {
	return func(yield func(record.Record, error) bool) {
		for {
			rec, err := d.Next()
			if err == io.EOF {
				return
			}

			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}
