package save

import (
	"strings"

	"github.com/codemeta/propmerge/pkg/errors"
)

// Format of the generated data file.
type Format int

// Format constants.
const (
	FormatJSON Format = iota
	FormatYAML
)

// IsValid checks if the format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

// ParseFormat converts a format name or file extension (".json", "yml") to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return 0, errors.NewValidationError("format", s, "must be one of: json, yaml")
	}
}

// Options is the configuration for save.
type Options struct {
	format Format
	indent string
}

// Format returns the format for the save options.
func (o *Options) Format() Format {
	return o.format
}

// Indent returns the indentation used for JSON output.
func (o *Options) Indent() string {
	return o.indent
}

// Defaults returns the default save options.
func Defaults() *Options {
	return &Options{
		format: FormatJSON,
		indent: "  ",
	}
}

// Option is a function that configures save options.
type Option func(*Options)

// Apply applies the given options to the save options.
func (o *Options) Apply(opts ...Option) *Options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithFormat sets the output format.
func WithFormat(format Format) Option {
	return func(o *Options) {
		o.format = format
	}
}

// WithIndent sets the JSON indentation.
func WithIndent(indent string) Option {
	return func(o *Options) {
		o.indent = indent
	}
}
