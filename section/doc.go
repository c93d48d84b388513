// Package section defines the low-level binary structures and constants of
// the NAF archive container: the fixed header, the flags bitfield, and the
// per-block index entries that precede each compressed column.
//
// # Overview
//
// The section package defines three categories of types:
//
//  1. Header: the fixed prelude (magic, version, flags, sequence type, the
//     advisory formatting fields, the title extension, sequence count, and
//     the advisory maximum unmasked run length).
//  2. Flags: the one-byte bitfield marking which of the six columnar blocks
//     are present, in the archive's fixed order.
//  3. BlockIndexEntry: one entry per present block, giving its field, byte
//     offset, and original/compressed sizes, as scanned by ScanIndex.
//
// # Archive Structure
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header                                                   │
//	│  - Magic (3 bytes): 0x01 0xF9 0xEC                       │
//	│  - Version (1 byte), Flags (1 byte)                      │
//	│  - SequenceType (1 byte), LineLength (1 byte)             │
//	│  - Separator (1 byte)                                     │
//	│  - Title (variable, v2 + FlagTitle only): NUL-terminated  │
//	│  - NumSequences (varint), MaxRun (varint)                 │
//	├─────────────────────────────────────────────────────────┤
//	│ Block: ids       (varint sizes + zstd frame, if present) │
//	├─────────────────────────────────────────────────────────┤
//	│ Block: comments  (varint sizes + zstd frame, if present) │
//	├─────────────────────────────────────────────────────────┤
//	│ Block: lengths   (varint sizes + zstd frame, if present) │
//	├─────────────────────────────────────────────────────────┤
//	│ Block: mask      (varint sizes + zstd frame, if present) │
//	├─────────────────────────────────────────────────────────┤
//	│ Block: sequence  (varint sizes + zstd frame, if present) │
//	├─────────────────────────────────────────────────────────┤
//	│ Block: quality   (varint sizes + zstd frame, if present) │
//	└─────────────────────────────────────────────────────────┘
//
// Blocks appear in exactly this order regardless of which flags are set;
// absent blocks simply contribute no bytes. ScanIndex walks them in this
// fixed order, reading each present block's two size varints and seeking
// past its compressed payload without decompressing it.
package section
