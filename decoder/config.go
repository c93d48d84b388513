package decoder

import (
	"github.com/althonos/nafcodec/format"
	"github.com/althonos/nafcodec/internal/options"
)

// Config holds a Decoder's construction-time settings.
type Config struct {
	// Fields selects which record fields the Decoder materializes. Streams
	// present in the archive but not selected here are skipped without
	// decompression, except where another selected field forces them open
	// (lengths for sequence/quality, mask for sequence).
	Fields format.FieldSet
}

func defaultConfig() *Config {
	return &Config{Fields: format.AllFields}
}

// Option configures a Decoder, applied in New.
type Option = options.Option[*Config]

// WithFields restricts the Decoder to materializing only the given fields.
func WithFields(fields format.FieldSet) Option {
	return options.NoError(func(c *Config) { c.Fields = fields })
}
