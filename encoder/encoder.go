// Package encoder implements the NAF archive writer: it accepts records in
// order, spills each active column into its own temporary storage, and on
// Close compresses and concatenates the columns into a single well-formed
// archive, preceded by a header whose counts were only known once every
// record had been seen.
package encoder

import (
	"fmt"
	"io"

	"github.com/althonos/nafcodec/alphabet"
	"github.com/althonos/nafcodec/compress"
	"github.com/althonos/nafcodec/errs"
	"github.com/althonos/nafcodec/format"
	"github.com/althonos/nafcodec/internal/dedup"
	"github.com/althonos/nafcodec/internal/options"
	"github.com/althonos/nafcodec/internal/pool"
	"github.com/althonos/nafcodec/mask"
	"github.com/althonos/nafcodec/record"
	"github.com/althonos/nafcodec/section"
	"github.com/althonos/nafcodec/spill"
	"github.com/althonos/nafcodec/varint"
)

// Stats summarizes an Encoder's accumulated state. It is advisory only and
// never affects the archive bytes already written or about to be written.
type Stats struct {
	RecordCount  uint64
	TotalSymbols uint64
	MaxRun       uint64
	// Duplicates is only meaningful when the Encoder was constructed with
	// WithDuplicateTracking(true) (the default).
	Duplicates uint64
}

// Encoder writes records to a NAF archive.
type Encoder struct {
	dst io.Writer
	cfg *Config

	spills map[format.Field]spill.Spill

	maskAcc *mask.Accumulator
	dedup   *dedup.Tracker

	seqPendingByte byte
	seqPendingHigh bool

	count        uint64
	totalSymbols uint64
	maxRun       uint64
	curUnmasked  uint64

	closed bool
}

func (c *Config) active(f format.Field) bool {
	return c.Fields.Has(f)
}

// New creates an Encoder writing to dst. seqType fixes the alphabet the
// sequence column (if active) is encoded against for the lifetime of the
// Encoder.
func New(dst io.Writer, seqType format.SequenceType, opts ...Option) (*Encoder, error) {
	cfg := defaultConfig()
	cfg.SequenceType = seqType

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if cfg.Version != section.VersionV1 && cfg.Version != section.VersionV2 {
		return nil, errs.ErrUnsupportedVersion
	}

	if cfg.Version == section.VersionV1 && (cfg.active(format.FieldQuality) || cfg.Title != "") {
		return nil, fmt.Errorf("%w: quality column and title require format version 2", errs.ErrFormat)
	}

	if !cfg.SequenceType.Valid() {
		return nil, fmt.Errorf("%w: invalid sequence type %d", errs.ErrFormat, cfg.SequenceType)
	}

	e := &Encoder{dst: dst, cfg: cfg, spills: make(map[format.Field]spill.Spill)}

	for _, f := range section.FieldOrder {
		if !cfg.active(f) {
			continue
		}

		s, err := cfg.SpillFactory()
		if err != nil {
			return nil, err
		}

		e.spills[f] = s
	}

	if cfg.active(format.FieldMask) {
		e.maskAcc = mask.NewAccumulator()
	}

	if cfg.TrackDuplicates {
		e.dedup = dedup.NewTracker()
	}

	return e, nil
}

// Push appends one record to every active column.
//
// Returns errs.ErrMissingField if the Sequence or Quality column is active
// and the corresponding field of rec is nil, and errs.ErrClosed if the
// Encoder has already been closed.
func (e *Encoder) Push(rec record.Record) error {
	if e.closed {
		return errs.ErrClosed
	}

	if err := rec.Validate(); err != nil {
		return err
	}

	if e.cfg.active(format.FieldSequence) && rec.Sequence == nil {
		return errs.ErrMissingField
	}

	if e.cfg.active(format.FieldQuality) && rec.Quality == nil {
		return errs.ErrMissingField
	}

	if e.cfg.active(format.FieldIDs) {
		if _, err := io.WriteString(e.spills[format.FieldIDs], rec.ID+"\x00"); err != nil {
			return err
		}
	}

	if e.cfg.active(format.FieldComments) {
		if _, err := io.WriteString(e.spills[format.FieldComments], rec.Comment+"\x00"); err != nil {
			return err
		}
	}

	length := rec.EffectiveLength()

	if e.cfg.active(format.FieldLengths) {
		if _, err := e.spills[format.FieldLengths].Write(varint.Encode(length)); err != nil {
			return err
		}
	}

	if e.cfg.active(format.FieldSequence) {
		if e.dedup != nil {
			e.dedup.Observe(rec.Sequence)
		}

		if err := e.pushSequence(rec.Sequence); err != nil {
			return err
		}
	}

	if e.cfg.active(format.FieldQuality) {
		if _, err := e.spills[format.FieldQuality].Write(rec.Quality); err != nil {
			return err
		}
	}

	e.count++

	return nil
}

// pushSequence encodes each symbol of seq, updates the mask accumulator and
// the longest-unmasked-run tracker when the mask column is active, and
// writes packed (dna/rna) or raw (protein/text) bytes to the sequence
// spill.
func (e *Encoder) pushSequence(seq []byte) error {
	packed := e.cfg.SequenceType.Packed()
	trackMask := e.cfg.active(format.FieldMask)

	for _, b := range seq {
		masked := b >= 'a' && b <= 'z'
		upper := b
		if masked {
			upper -= 'a' - 'A'
		}

		value, err := alphabet.EncodeSymbol(e.cfg.SequenceType, upper)
		if err != nil {
			return err
		}

		if trackMask {
			e.maskAcc.Push(masked)

			if masked {
				if e.curUnmasked > e.maxRun {
					e.maxRun = e.curUnmasked
				}

				e.curUnmasked = 0
			} else {
				e.curUnmasked++
			}
		}

		if err := e.writeSymbol(value, packed); err != nil {
			return err
		}

		e.totalSymbols++
	}

	return nil
}

// writeSymbol appends one encoded symbol to the sequence spill, packing two
// to a byte (low nibble first) for packed alphabets and carrying the
// pending high nibble across calls so record boundaries never waste a
// nibble. For unpacked alphabets every symbol is its own byte.
func (e *Encoder) writeSymbol(value byte, packed bool) error {
	s := e.spills[format.FieldSequence]

	if !packed {
		_, err := s.Write([]byte{value})

		return err
	}

	if e.seqPendingHigh {
		b := e.seqPendingByte | (value << 4)
		e.seqPendingHigh = false

		_, err := s.Write([]byte{b})

		return err
	}

	e.seqPendingByte = value
	e.seqPendingHigh = true

	return nil
}

// Stats returns a snapshot of the Encoder's accumulated counters. Safe to
// call at any time, including before Close.
func (e *Encoder) Stats() Stats {
	s := Stats{
		RecordCount:  e.count,
		TotalSymbols: e.totalSymbols,
		MaxRun:       e.observedMaxRun(),
	}

	if e.dedup != nil {
		s.Duplicates = e.dedup.Duplicates()
	}

	return s
}

func (e *Encoder) observedMaxRun() uint64 {
	if e.curUnmasked > e.maxRun {
		return e.curUnmasked
	}

	return e.maxRun
}

// Close finalizes the archive: it flushes any pending partial sequence
// byte, closes out the mask run stream, writes the header, then compresses
// and writes each active column in the fixed block order. Close is not
// idempotent; calling it twice returns errs.ErrClosed on the second call.
func (e *Encoder) Close() error {
	if e.closed {
		return errs.ErrClosed
	}

	e.closed = true

	defer e.closeSpills()

	if e.cfg.active(format.FieldSequence) && e.cfg.SequenceType.Packed() && e.seqPendingHigh {
		if _, err := e.spills[format.FieldSequence].Write([]byte{e.seqPendingByte}); err != nil {
			return err
		}

		e.seqPendingHigh = false
	}

	if e.cfg.active(format.FieldMask) {
		if _, err := e.spills[format.FieldMask].Write(e.maskAcc.Bytes()); err != nil {
			return err
		}
	}

	h := section.Header{
		Version:      e.cfg.Version,
		Flags:        e.flags(),
		SequenceType: e.cfg.SequenceType,
		LineLength:   e.cfg.LineLength,
		Separator:    e.cfg.Separator,
		Title:        e.cfg.Title,
		NumSequences: e.count,
		MaxRun:       e.observedMaxRun(),
	}

	if err := section.WriteHeader(e.dst, h); err != nil {
		return err
	}

	for _, f := range section.FieldOrder {
		if !e.cfg.active(f) {
			continue
		}

		if err := e.writeBlock(f); err != nil {
			return err
		}
	}

	return nil
}

func (e *Encoder) flags() section.Flags {
	var f section.Flags

	for _, field := range section.FieldOrder {
		if e.cfg.active(field) {
			f = f.WithField(field)
		}
	}

	if e.cfg.Version == section.VersionV2 && e.cfg.Title != "" {
		f = f.With(section.FlagTitle)
	}

	return f
}

// writeBlock drains the spill for field into a contiguous buffer,
// compresses it in one call through ZstdCompressor, and writes its
// size-prefixed block to e.dst.
func (e *Encoder) writeBlock(field format.Field) error {
	s := e.spills[field]
	originalSize := uint64(s.Len())

	r, err := s.Reader()
	if err != nil {
		return err
	}

	defer r.Close()

	raw := pool.GetArchiveBuffer()
	defer pool.PutArchiveBuffer(raw)

	if _, err := io.Copy(raw, r); err != nil {
		return err
	}

	compressed, err := compress.NewZstdCompressor().Compress(raw.Bytes())
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrDecompression, err)
	}

	if err := section.WriteBlockHeader(e.dst, originalSize, uint64(len(compressed))); err != nil {
		return err
	}

	_, err = e.dst.Write(compressed)

	return err
}

func (e *Encoder) closeSpills() {
	for _, s := range e.spills {
		_ = s.Close()
	}
}

