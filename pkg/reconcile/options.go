package reconcile

import (
	"github.com/rs/zerolog"

	"github.com/codemeta/propmerge/pkg/errors"
)

type options struct {
	logger *zerolog.Logger
	strict bool
}

// Option is a function that configures a Reconciler.
type Option func(*options) error

func newOptions(opts ...Option) (*options, error) {
	o := &options{strict: true}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithLogger sets the logger used for merge diagnostics. Without it the
// logger carried by the context passed to Tables is used.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return &errors.ValidationError{
				Field:   "logger",
				Message: "cannot be nil",
			}
		}
		o.logger = logger
		return nil
	}
}

// WithStrict controls what happens when a version declares the same property
// twice. Strict reconciliation (the default) fails with an
// errors.DuplicateVersionError; otherwise the repeated row is logged and
// dropped.
func WithStrict(strict bool) Option {
	return func(o *options) error {
		o.strict = strict
		return nil
	}
}
