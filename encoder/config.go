package encoder

import (
	"github.com/althonos/nafcodec/format"
	"github.com/althonos/nafcodec/internal/options"
	"github.com/althonos/nafcodec/section"
	"github.com/althonos/nafcodec/spill"
)

// Config holds an Encoder's construction-time settings.
type Config struct {
	// Version is the archive format version to write: section.VersionV1 or
	// section.VersionV2. Only v2 may carry a quality column or a title.
	Version uint8
	// SequenceType is the alphabet the sequence column is encoded with.
	SequenceType format.SequenceType
	// Fields selects which columns the Encoder writes. Pushing a record
	// with an unset Sequence/Quality for an active column is
	// errs.ErrMissingField; submitting a field for an inactive column is
	// silently ignored.
	Fields format.FieldSet
	// LineLength is the advisory re-wrap width recorded in the header.
	LineLength uint8
	// Separator is the advisory id/comment separator byte recorded in the
	// header.
	Separator byte
	// Title is an advisory header string, round-tripped verbatim. Only
	// meaningful (and only written) when Version is section.VersionV2.
	Title string
	// SpillFactory creates the temporary per-column storage. Defaults to an
	// uncompressed in-memory spill per column.
	SpillFactory spill.Factory
	// TrackDuplicates enables the xxHash-based advisory duplicate-sequence
	// counter surfaced by Encoder.Stats.
	TrackDuplicates bool
}

func defaultConfig() *Config {
	return &Config{
		Version:         section.VersionV2,
		Fields:          format.AllFields,
		LineLength:      80,
		Separator:       ' ',
		SpillFactory:    func() (spill.Spill, error) { return spill.NewMemorySpill(false), nil },
		TrackDuplicates: true,
	}
}

// Option configures an Encoder, applied in New.
type Option = options.Option[*Config]

// WithVersion selects the archive format version to write.
func WithVersion(v uint8) Option {
	return options.NoError(func(c *Config) { c.Version = v })
}

// WithFields selects which columns the Encoder writes.
func WithFields(fields format.FieldSet) Option {
	return options.NoError(func(c *Config) { c.Fields = fields })
}

// WithLineLength sets the advisory re-wrap width recorded in the header.
func WithLineLength(n uint8) Option {
	return options.NoError(func(c *Config) { c.LineLength = n })
}

// WithSeparator sets the advisory id/comment separator byte.
func WithSeparator(b byte) Option {
	return options.NoError(func(c *Config) { c.Separator = b })
}

// WithTitle sets the advisory header title string, written only under
// section.VersionV2.
func WithTitle(title string) Option {
	return options.NoError(func(c *Config) { c.Title = title })
}

// WithSpillFactory overrides the temporary column storage factory, e.g. to
// use spill.NewFileSpill for archives too large to hold every column in
// memory at once.
func WithSpillFactory(f spill.Factory) Option {
	return options.NoError(func(c *Config) { c.SpillFactory = f })
}

// WithDuplicateTracking toggles the advisory duplicate-sequence counter.
func WithDuplicateTracking(enabled bool) Option {
	return options.NoError(func(c *Config) { c.TrackDuplicates = enabled })
}
