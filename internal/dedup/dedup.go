// Package dedup tracks repeated sequence content seen by the Encoder so that
// Stats() can report a duplicate count. Unlike the hash collision problem,
// duplicates here are advisory only: two records hashing equal are assumed
// identical for the purpose of the counter, but encoding proceeds unchanged
// even when that assumption happens to be wrong. Nothing about the archive's
// on-wire bytes depends on this package.
package dedup

import "github.com/cespare/xxhash/v2"

// Tracker counts how many times each distinct sequence byte string has been
// observed, keyed by its xxHash64 digest.
type Tracker struct {
	seen       map[uint64]int
	duplicates uint64
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[uint64]int)}
}

// Observe records one occurrence of data and reports whether its hash had
// already been seen before this call.
func (t *Tracker) Observe(data []byte) bool {
	h := xxhash.Sum64(data)
	count := t.seen[h]
	t.seen[h] = count + 1

	if count > 0 {
		t.duplicates++

		return true
	}

	return false
}

// Duplicates returns the number of Observe calls whose hash had already been
// seen.
func (t *Tracker) Duplicates() uint64 {
	return t.duplicates
}

// Distinct returns the number of distinct hashes observed.
func (t *Tracker) Distinct() int {
	return len(t.seen)
}

// Reset clears all tracked state, allowing the Tracker to be reused.
func (t *Tracker) Reset() {
	for k := range t.seen {
		delete(t.seen, k)
	}
	t.duplicates = 0
}
