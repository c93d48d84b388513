// Package compress provides the compression codecs used by the archive
// format and by the encoder's temporary column spills.
//
// Two distinct usages:
//
//  1. Archive blocks. Every NAF block is a standalone Zstandard frame (no
//     external dictionary). The decoder reads one lazily via StreamReader,
//     since a block is only opened if its field was selected and must not
//     be materialized before the caller asks for the first record. The
//     encoder writes one by compressing its already-finalized column
//     through ZstdCompressor.Compress in a single call.
//  2. Column spills. Before a column is finalized into a block, the
//     Encoder may optionally compress its temporary spill (see the spill
//     package) to bound memory/disk use while still accumulating records.
//     This is whole-buffer compression through the Compressor/Decompressor
//     interfaces, independent of the archive's own Zstandard framing, and
//     may use a cheaper algorithm (LZ4) since it is never the on-wire
//     format.
//
// LZ4Compressor and ZstdCompressor both implement Codec.
package compress
