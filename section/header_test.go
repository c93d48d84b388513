package section

import (
	"bytes"
	"testing"

	"github.com/althonos/nafcodec/errs"
	"github.com/althonos/nafcodec/format"
	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip_V1(t *testing.T) {
	h := Header{
		Version:      VersionV1,
		Flags:        FlagIDs | FlagLengths | FlagSequence,
		SequenceType: format.SequenceDNA,
		LineLength:   80,
		Separator:    ' ',
		NumSequences: 3,
		MaxRun:       12,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, h))

	got, err := ParseHeader(&buf)
	require.NoError(t, err)
	require.Equal(t, h, got)
}

func TestHeaderRoundTrip_V2WithTitle(t *testing.T) {
	h := Header{
		Version:      VersionV2,
		Flags:        FlagTitle | FlagIDs | FlagComments | FlagLengths | FlagMask | FlagSequence | FlagQuality,
		SequenceType: format.SequenceProtein,
		LineLength:   60,
		Separator:    ' ',
		Title:        "example archive",
		NumSequences: 0,
		MaxRun:       0,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, h))

	got, err := ParseHeader(&buf)
	require.NoError(t, err)
	require.Equal(t, h, got)
}

func TestParseHeader_BadMagic(t *testing.T) {
	_, err := ParseHeader(bytes.NewReader([]byte{0x00, 0x00, 0x00, 0x01, 0, 0, 80, ' ', 0, 0}))
	require.ErrorIs(t, err, errs.ErrBadMagic)
}

func TestParseHeader_UnsupportedVersion(t *testing.T) {
	data := append(MagicBytes[:], 0x03, 0, 0, 80, ' ', 0, 0)
	_, err := ParseHeader(bytes.NewReader(data))
	require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
}

func TestParseHeader_ReservedBitSet(t *testing.T) {
	data := append(MagicBytes[:], VersionV1, byte(FlagReserved), 0, 80, ' ', 0, 0)
	_, err := ParseHeader(bytes.NewReader(data))
	require.ErrorIs(t, err, errs.ErrFormat)
}

func TestParseHeader_QualityFlagInV1(t *testing.T) {
	data := append(MagicBytes[:], VersionV1, byte(FlagQuality), 0, 80, ' ', 0, 0)
	_, err := ParseHeader(bytes.NewReader(data))
	require.ErrorIs(t, err, errs.ErrFormat)
}

func TestParseHeader_TitleFlagInV1(t *testing.T) {
	data := append(MagicBytes[:], VersionV1, byte(FlagTitle), 0, 80, ' ', 0, 0)
	_, err := ParseHeader(bytes.NewReader(data))
	require.ErrorIs(t, err, errs.ErrFormat)
}

func TestParseHeader_InvalidSequenceType(t *testing.T) {
	data := append(MagicBytes[:], VersionV1, 0, 9, 80, ' ', 0, 0)
	_, err := ParseHeader(bytes.NewReader(data))
	require.ErrorIs(t, err, errs.ErrFormat)
}

func TestParseHeader_Truncated(t *testing.T) {
	_, err := ParseHeader(bytes.NewReader(MagicBytes[:2]))
	require.ErrorIs(t, err, errs.ErrTruncated)
}

func TestParseHeader_StopsExactlyAtHeaderEnd(t *testing.T) {
	h := Header{
		Version:      VersionV1,
		Flags:        FlagIDs,
		SequenceType: format.SequenceText,
		LineLength:   80,
		Separator:    ' ',
		NumSequences: 1,
		MaxRun:       0,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, h))
	buf.WriteString("trailing-payload")

	r := bytes.NewReader(buf.Bytes())
	_, err := ParseHeader(r)
	require.NoError(t, err)

	rest, err := bytesReadAll(r)
	require.NoError(t, err)
	require.Equal(t, "trailing-payload", string(rest))
}

func bytesReadAll(r *bytes.Reader) ([]byte, error) {
	buf := make([]byte, r.Len())
	_, err := r.Read(buf)

	return buf, err
}
