// Package decoder implements the NAF archive reader: header and block-index
// parsing, one independent Zstandard stream per selected present column,
// and a forward-only iterator assembling per-record tuples from those
// columns in lockstep.
package decoder

import (
	"bufio"
	"fmt"
	"io"

	"github.com/althonos/nafcodec/alphabet"
	"github.com/althonos/nafcodec/compress"
	"github.com/althonos/nafcodec/errs"
	"github.com/althonos/nafcodec/format"
	"github.com/althonos/nafcodec/internal/options"
	"github.com/althonos/nafcodec/mask"
	"github.com/althonos/nafcodec/record"
	"github.com/althonos/nafcodec/section"
	"github.com/althonos/nafcodec/varint"
)

// streamReader opens r as an independent Zstandard decompressing reader.
func streamReader(r io.Reader) (io.ReadCloser, error) {
	return compress.StreamReader(r)
}

// varintDecode reads one varint, translating its own ErrTruncated through
// unchanged (Decode already returns errs.ErrTruncated on EOF).
func varintDecode(r io.ByteReader) (uint64, error) {
	return varint.Decode(r)
}

// Source is the seekable, random-access byte source a Decoder reads an
// archive from. Both *os.File and *bytes.Reader satisfy it. The Decoder
// opens one independent column reader per selected stream over this same
// source: each column reader performs its own bounded ReadAt-style access,
// so columns can be advanced in any interleaving without disturbing one
// another's position.
type Source interface {
	io.ReaderAt
	io.ReadSeeker
}

// Decoder reads records from a NAF archive.
type Decoder struct {
	src    Source
	header section.Header
	index  []section.BlockIndexEntry
	cfg    *Config

	ids      *bufio.Reader
	comments *bufio.Reader
	lengths  *bufio.Reader
	maskCur  *mask.Cursor
	seq      *symbolReader
	quality  *bufio.Reader

	closers []io.Closer

	needLengths bool
	needMask    bool
	haveSeq     bool
	haveQual    bool
	haveIDs     bool
	haveComment bool
	haveLengths bool

	seqSymbolsConsumed uint64
	seqOriginalSize    uint64

	recordsRead uint64
	err         error
	closed      bool
}

// New parses the archive header and block index from src and opens one
// stream reader per column selected by opts (default: every present
// column).
func New(src Source, opts ...Option) (*Decoder, error) {
	h, err := section.ParseHeader(src)
	if err != nil {
		return nil, err
	}

	index, err := section.ScanIndex(src, h.Flags)
	if err != nil {
		return nil, err
	}

	if h.Flags.HasField(format.FieldSequence) && !h.Flags.HasField(format.FieldLengths) {
		return nil, fmt.Errorf("%w: sequence present without lengths", errs.ErrFormat)
	}

	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	d := &Decoder{src: src, header: h, index: index, cfg: cfg}

	want := func(f format.Field) bool {
		return h.Flags.HasField(f) && cfg.Fields.Has(f)
	}

	d.haveIDs = want(format.FieldIDs)
	d.haveComment = want(format.FieldComments)
	d.haveSeq = want(format.FieldSequence)
	d.haveQual = want(format.FieldQuality)
	d.haveLengths = want(format.FieldLengths)
	d.needLengths = h.Flags.HasField(format.FieldLengths) && (d.haveSeq || d.haveQual || d.haveLengths)
	d.needMask = h.Flags.HasField(format.FieldMask) && d.haveSeq

	if d.haveIDs {
		r, err := d.openBuffered(format.FieldIDs)
		if err != nil {
			return nil, err
		}

		d.ids = r
	}

	if d.haveComment {
		r, err := d.openBuffered(format.FieldComments)
		if err != nil {
			return nil, err
		}

		d.comments = r
	}

	if d.needLengths {
		r, err := d.openBuffered(format.FieldLengths)
		if err != nil {
			return nil, err
		}

		d.lengths = r
	}

	if d.needMask {
		r, err := d.openBuffered(format.FieldMask)
		if err != nil {
			return nil, err
		}

		d.maskCur = mask.NewCursor(r)
	}

	if d.haveSeq {
		entry, ok := section.Lookup(index, format.FieldSequence)
		if !ok {
			return nil, fmt.Errorf("%w: sequence flagged present but missing from block index", errs.ErrFormat)
		}

		d.seqOriginalSize = entry.OriginalSize

		rc, err := d.openRaw(entry)
		if err != nil {
			return nil, err
		}

		d.seq = newSymbolReader(rc, h.SequenceType.Packed())
	}

	if d.haveQual {
		r, err := d.openBuffered(format.FieldQuality)
		if err != nil {
			return nil, err
		}

		d.quality = r
	}

	return d, nil
}

// openRaw opens the column for field over a bounded section of src and
// wraps it in the Zstandard stream reader, tracking it for Close.
func (d *Decoder) openRaw(entry section.BlockIndexEntry) (io.Reader, error) {
	sr := io.NewSectionReader(d.srcReaderAt(), entry.Offset, int64(entry.CompressedSize))

	rc, err := streamReader(sr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrDecompression, err)
	}

	d.closers = append(d.closers, rc)

	return rc, nil
}

func (d *Decoder) openBuffered(field format.Field) (*bufio.Reader, error) {
	entry, ok := section.Lookup(d.index, field)
	if !ok {
		return nil, fmt.Errorf("%w: %s flagged present but missing from block index", errs.ErrFormat, field)
	}

	r, err := d.openRaw(entry)
	if err != nil {
		return nil, err
	}

	return bufio.NewReader(r), nil
}

func (d *Decoder) srcReaderAt() io.ReaderAt {
	return d.src
}

// Header returns the parsed archive header.
func (d *Decoder) Header() section.Header {
	return d.header
}

// BlockSizes returns the parsed block index: one entry per present stream,
// with its offset and original/compressed sizes. Available immediately
// after New, before any record is read.
func (d *Decoder) BlockSizes() []section.BlockIndexEntry {
	return d.index
}

// Next returns the next record. It returns io.EOF once every declared
// record has been returned. Once Next returns a non-EOF error, the Decoder
// is poisoned: every subsequent call returns that same error.
func (d *Decoder) Next() (record.Record, error) {
	if d.err != nil {
		return record.Record{}, d.err
	}

	if d.recordsRead >= d.header.NumSequences {
		if err := d.checkLengthInvariant(); err != nil {
			d.err = err

			return record.Record{}, err
		}

		return record.Record{}, io.EOF
	}

	rec, err := d.next()
	if err != nil {
		d.err = err

		return record.Record{}, err
	}

	d.recordsRead++

	return rec, nil
}

func (d *Decoder) next() (record.Record, error) {
	var rec record.Record

	if d.haveIDs {
		s, err := readCString(d.ids)
		if err != nil {
			return rec, err
		}

		rec.ID = s
	}

	if d.haveComment {
		s, err := readCString(d.comments)
		if err != nil {
			return rec, err
		}

		rec.Comment = s
	}

	var length uint64

	if d.needLengths {
		n, err := varintDecode(d.lengths)
		if err != nil {
			return rec, err
		}

		length = n
	}

	if d.haveLengths {
		rec.Length = length
	}

	if d.haveSeq {
		seq := make([]byte, length)

		for i := range seq {
			nib, err := d.seq.Next()
			if err != nil {
				if err == io.EOF {
					err = errs.ErrTruncated
				}

				return rec, err
			}

			sym, err := alphabet.DecodeSymbol(d.header.SequenceType, nib)
			if err != nil {
				return rec, err
			}

			seq[i] = sym
		}

		d.seqSymbolsConsumed += length

		if d.needMask {
			for i := range seq {
				masked, err := d.maskCur.Next()
				if err != nil {
					return rec, err
				}

				if masked && seq[i] >= 'A' && seq[i] <= 'Z' {
					seq[i] += 'a' - 'A'
				}
			}
		}

		rec.Sequence = seq
	}

	if d.haveQual {
		q := make([]byte, length)
		if _, err := io.ReadFull(d.quality, q); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return rec, errs.ErrTruncated
			}

			return rec, err
		}

		rec.Quality = q
	}

	return rec, nil
}

// checkLengthInvariant verifies that the sequence stream's declared
// original size (in bytes) matches the number of symbols actually consumed
// across all records. Run once the last record has been read.
func (d *Decoder) checkLengthInvariant() error {
	if !d.haveSeq {
		return nil
	}

	want := d.seqSymbolsConsumed
	if d.header.SequenceType.Packed() {
		want = (want + 1) / 2
	}

	if want != d.seqOriginalSize {
		return fmt.Errorf("%w: sequence stream is %d bytes, records consumed %d symbols", errs.ErrLengthMismatch, d.seqOriginalSize, d.seqSymbolsConsumed)
	}

	return nil
}

// Close releases every opened column reader. It is safe to call more than
// once.
func (d *Decoder) Close() error {
	if d.closed {
		return nil
	}

	d.closed = true

	var first error

	for _, c := range d.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}
