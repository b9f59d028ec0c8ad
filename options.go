package propmerge

import (
	"github.com/rs/zerolog"

	"github.com/codemeta/propmerge/pkg/errors"
	"github.com/codemeta/propmerge/pkg/save"
)

// config holds the paths and output settings of a Merger.
type config struct {
	root       string
	inputDir   string
	outputFile string
	format     *save.Format
	strict     bool
	logger     *zerolog.Logger
}

// Option is a function that configures a Merger
type Option func(*config) error

// WithRoot sets the repository root that relative input and output paths
// are resolved against.
func WithRoot(root string) Option {
	return func(c *config) error {
		if root == "" {
			return errors.NewValidationError("root", root, "cannot be empty")
		}
		c.root = root
		return nil
	}
}

// WithInputDir sets the directory holding the v<version>.csv tables.
func WithInputDir(dir string) Option {
	return func(c *config) error {
		if dir == "" {
			return errors.NewValidationError("input", dir, "cannot be empty")
		}
		c.inputDir = dir
		return nil
	}
}

// WithOutputFile sets the generated data file.
func WithOutputFile(path string) Option {
	return func(c *config) error {
		if path == "" {
			return errors.NewValidationError("output", path, "cannot be empty")
		}
		c.outputFile = path
		return nil
	}
}

// WithFormat forces the output format. By default it follows the output
// file extension.
func WithFormat(format save.Format) Option {
	return func(c *config) error {
		if !format.IsValid() {
			return errors.NewValidationError("format", format, "unsupported output format")
		}
		c.format = &format
		return nil
	}
}

// WithLogger sets the logger. By default the logger carried by the context
// of each call is used.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithStrict controls whether a property declared twice by one version
// aborts the run (the default) or is dropped with a warning.
func WithStrict(strict bool) Option {
	return func(c *config) error {
		c.strict = strict
		return nil
	}
}
