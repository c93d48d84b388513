package record

import (
	"testing"

	"github.com/althonos/nafcodec/errs"
	"github.com/stretchr/testify/require"
)

func TestValidate_EmptyRecordOK(t *testing.T) {
	require.NoError(t, Record{}.Validate())
}

func TestValidate_QualityWithoutSequence(t *testing.T) {
	r := Record{Quality: []byte{40, 40}}
	require.ErrorIs(t, r.Validate(), errs.ErrMissingField)
}

func TestValidate_QualityLengthMismatch(t *testing.T) {
	r := Record{Sequence: []byte("ACGT"), Quality: []byte{40, 40}}
	require.ErrorIs(t, r.Validate(), errs.ErrLengthMismatch)
}

func TestValidate_DeclaredLengthMismatch(t *testing.T) {
	r := Record{Sequence: []byte("ACGT"), Length: 10}
	require.ErrorIs(t, r.Validate(), errs.ErrSequenceMismatch)
}

func TestValidate_ConsistentRecordOK(t *testing.T) {
	r := Record{
		ID:       "seq1",
		Sequence: []byte("ACGTacgt"),
		Quality:  []byte{40, 40, 40, 40, 40, 40, 40, 40},
		Length:   8,
	}
	require.NoError(t, r.Validate())
}

func TestEffectiveLength(t *testing.T) {
	require.Equal(t, uint64(4), Record{Sequence: []byte("ACGT")}.EffectiveLength())
	require.Equal(t, uint64(100), Record{Length: 100}.EffectiveLength())
	require.Equal(t, uint64(0), Record{}.EffectiveLength())
}
