// Package nafcodec implements a streaming codec for the Nucleotide Archive
// Format (NAF): a binary container bundling several independently
// Zstandard-compressed columns (identifiers, comments, per-record lengths,
// an optional soft-mask run-length stream, a 4-bit-packed sequence stream,
// and an optional quality stream) into one archive.
//
// # Basic usage
//
// Decoding an archive:
//
//	f, _ := os.Open("sequences.naf")
//	defer f.Close()
//
//	dec, err := nafcodec.Open(f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer dec.Close()
//
//	for rec, err := range dec.Records() {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(rec.ID, string(rec.Sequence))
//	}
//
// Encoding one:
//
//	f, _ := os.Create("sequences.naf")
//	defer f.Close()
//
//	enc, err := nafcodec.Create(f, format.SequenceDNA)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	enc.Push(record.Record{ID: "seq1", Sequence: []byte("ACGT"), Quality: []byte("IIII"), Length: 4})
//	enc.Close()
//
// # Package structure
//
// This package provides thin top-level wrappers (Open, Create) around the
// decoder and encoder packages, convenient for the common case. For
// fine-grained control over field selection, spill storage, or compression,
// use the decoder and encoder packages directly; nafcodec re-exports their
// Option types and the shared record, format and errs types so most callers
// never need to import those packages by name.
package nafcodec
