package hexcmd

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Pavel7004/goHidCmd/pkg/domain"
)

const (
	DefaultPrefix = "./hidtool write"

	// DeviceMaxBytes is the user payload hidtool fits into one report.
	// Anything past it is dropped by hidtool without an error.
	DeviceMaxBytes = 253
)

type Builder struct {
	Prefix   string
	MaxBytes int

	log zerolog.Logger
}

func NewBuilder(prefix string, maxBytes int, log zerolog.Logger) *Builder {
	return &Builder{
		Prefix:   prefix,
		MaxBytes: maxBytes,
		log:      log,
	}
}

// Build reads the token file at path and returns the hidtool command line for
// it. Nothing is returned unless every token is valid hex.
func (b *Builder) Build(path string) (string, error) {
	r := NewTokenReader(path, b.log)

	if err := r.Open(); err != nil {
		b.log.Error().Err(err).Str("file", path).Msg("Failed to open input")
		return "", err
	}
	defer func() {
		if err := r.Close(); err != nil {
			b.log.Warn().Err(err).Str("file", path).Msg("Failed to close input")
		}
	}()

	tokens, err := r.ReadTokens()
	if err != nil {
		return "", err
	}

	if err := Validate(tokens); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			for _, t := range verr.Invalid {
				b.log.Debug().
					Str("token", t.Text).
					Uint("line", t.Line).
					Uint("column", t.Column).
					Msg("Rejected non-hex token")
			}
		}
		return "", err
	}

	if b.MaxBytes > 0 && len(tokens) > b.MaxBytes {
		return "", fmt.Errorf("%w: got %d values, limit is %d", ErrTooManyBytes, len(tokens), b.MaxBytes)
	}
	if len(tokens) > DeviceMaxBytes {
		b.log.Warn().
			Int("values", len(tokens)).
			Int("device_limit", DeviceMaxBytes).
			Msg("hidtool drops values past the device limit")
	}

	return Format(b.Prefix, tokens), nil
}

// Format joins tokens with commas after prefix. An empty list still keeps the
// separating space.
func Format(prefix string, tokens domain.TokenList) string {
	return prefix + " " + tokens.Join(",")
}
