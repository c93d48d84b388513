package section

import (
	"io"

	"github.com/althonos/nafcodec/format"
	"github.com/althonos/nafcodec/varint"
)

// FieldOrder is the fixed order in which blocks appear after the header:
// ids, comments, lengths, mask, sequence, quality.
var FieldOrder = [format.FieldCount]format.Field{
	format.FieldIDs,
	format.FieldComments,
	format.FieldLengths,
	format.FieldMask,
	format.FieldSequence,
	format.FieldQuality,
}

// BlockIndexEntry describes one present block: its field, the byte offset
// of its compressed payload within the archive, and its original
// (decompressed) and compressed sizes.
type BlockIndexEntry struct {
	Field          format.Field
	Offset         int64
	OriginalSize   uint64
	CompressedSize uint64
}

// ScanIndex walks r, which must be positioned immediately after the header,
// reading the (original_size, compressed_size) VarInt pair for each block
// that present marks active and skipping over its compressed bytes via
// Seek. It does not decompress anything; the returned entries' Offset
// fields are the byte positions, relative to the start of r's underlying
// stream, at which each block's compressed payload begins.
//
// r must be an io.ReadSeeker positioned with io.SeekCurrent semantics; the
// offsets recorded are absolute only if the caller started at position 0.
func ScanIndex(r io.ReadSeeker, present Flags) ([]BlockIndexEntry, error) {
	var entries []BlockIndexEntry

	for _, field := range FieldOrder {
		if !present.HasField(field) {
			continue
		}

		br := &byteReader{r: r}

		originalSize, err := varint.Decode(br)
		if err != nil {
			return nil, err
		}

		compressedSize, err := varint.Decode(br)
		if err != nil {
			return nil, err
		}

		offset, err := r.Seek(0, io.SeekCurrent)
		if err != nil {
			return nil, err
		}

		entries = append(entries, BlockIndexEntry{
			Field:          field,
			Offset:         offset,
			OriginalSize:   originalSize,
			CompressedSize: compressedSize,
		})

		if compressedSize > 0 {
			if _, err := r.Seek(int64(compressedSize), io.SeekCurrent); err != nil {
				return nil, err
			}
		}
	}

	return entries, nil
}

// WriteBlockHeader writes a block's (original_size, compressed_size) VarInt
// pair to w, ahead of its compressed payload.
func WriteBlockHeader(w io.Writer, originalSize, compressedSize uint64) error {
	var buf []byte
	buf = varint.Append(buf, originalSize)
	buf = varint.Append(buf, compressedSize)

	_, err := w.Write(buf)

	return err
}

// Lookup returns the entry for field, and whether it was found.
func Lookup(entries []BlockIndexEntry, field format.Field) (BlockIndexEntry, bool) {
	for _, e := range entries {
		if e.Field == field {
			return e, true
		}
	}

	return BlockIndexEntry{}, false
}
