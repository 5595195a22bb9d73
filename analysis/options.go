package analysis

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultStrictRecheck is the default for WithStrictRecheck.
const DefaultStrictRecheck = true

// DefaultOptions returns Options with a no-op logger, UUID report IDs and
// strict recheck enabled.
func DefaultOptions() Options {
	return Options{
		Logger:        zap.NewNop(),
		NewID:         uuid.NewString,
		StrictRecheck: DefaultStrictRecheck,
	}
}

// WithLogger sets the structured logger. A nil logger is an option violation.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.err = ErrOptionViolation
			return
		}
		o.Logger = l
	}
}

// WithIDGenerator replaces the report ID generator. A nil func is an option violation.
func WithIDGenerator(fn func() string) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = ErrOptionViolation
			return
		}
		o.NewID = fn
	}
}

// WithStrictRecheck toggles the RECHECK assertion.
func WithStrictRecheck(strict bool) Option {
	return func(o *Options) {
		o.StrictRecheck = strict
	}
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
