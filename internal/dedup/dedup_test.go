package dedup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTracker_ObserveFirstIsNotDuplicate(t *testing.T) {
	tr := NewTracker()
	require.False(t, tr.Observe([]byte("ACGT")))
	require.Equal(t, uint64(0), tr.Duplicates())
	require.Equal(t, 1, tr.Distinct())
}

func TestTracker_ObserveRepeatIsDuplicate(t *testing.T) {
	tr := NewTracker()
	require.False(t, tr.Observe([]byte("ACGT")))
	require.True(t, tr.Observe([]byte("ACGT")))
	require.True(t, tr.Observe([]byte("ACGT")))
	require.Equal(t, uint64(2), tr.Duplicates())
	require.Equal(t, 1, tr.Distinct())
}

func TestTracker_DistinctSequencesDoNotCollide(t *testing.T) {
	tr := NewTracker()
	require.False(t, tr.Observe([]byte("ACGT")))
	require.False(t, tr.Observe([]byte("TTTT")))
	require.False(t, tr.Observe([]byte("GGGG")))
	require.Equal(t, uint64(0), tr.Duplicates())
	require.Equal(t, 3, tr.Distinct())
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker()
	tr.Observe([]byte("ACGT"))
	tr.Observe([]byte("ACGT"))
	tr.Reset()
	require.Equal(t, uint64(0), tr.Duplicates())
	require.Equal(t, 0, tr.Distinct())
	require.False(t, tr.Observe([]byte("ACGT")))
}
