package csv

import (
	"github.com/ncobase/taskboard/config"
	"github.com/ncobase/taskboard/types"
)

type options struct {
	quoteAware bool
	timeLayout string
}

// Option configures the codec
type Option func(*options)

// WithQuoteAware parses rows with a quote aware reader so quoted commas survive
func WithQuoteAware(enabled bool) Option {
	return func(o *options) { o.quoteAware = enabled }
}

// WithTimeLayout sets the Created At pattern used on export
func WithTimeLayout(layout string) Option {
	return func(o *options) {
		if layout != "" {
			o.timeLayout = layout
		}
	}
}

// FromConfig applies the board csv section
func FromConfig(c *config.CSV) Option {
	return func(o *options) {
		if c == nil {
			return
		}
		o.quoteAware = c.QuoteAware
		if c.TimeLayout != "" {
			o.timeLayout = c.TimeLayout
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{timeLayout: types.DefaultLayout24h}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
