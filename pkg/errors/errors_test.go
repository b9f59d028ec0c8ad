package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/codemeta/propmerge/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("property", "author")
		assert.Equal(t, "property author not found", err.Error())
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("version", "v9.0")
		wrapped := errors.Join(errors.New("failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("format", "xml", "unsupported")
		assert.Equal(t, "validation failed for field format: unsupported", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "invalid configuration"}
		assert.Equal(t, "validation failed: invalid configuration", err.Error())
	})
}

func TestDuplicateVersionError(t *testing.T) {
	err := pkgerrors.NewDuplicateVersionError("v3.0", "schema:CreativeWork", "author", "Person")

	assert.Contains(t, err.Error(), "v3.0")
	assert.Contains(t, err.Error(), "author")
	assert.True(t, pkgerrors.IsDuplicate(err))
	assert.False(t, pkgerrors.IsValidationError(err))

	var dup *pkgerrors.DuplicateVersionError
	require.True(t, errors.As(pkgerrors.WrapResource("reconcile", "items", "", err), &dup))
	assert.Equal(t, "author", dup.Property)
}

func TestStaleError(t *testing.T) {
	err := &pkgerrors.StaleError{Path: "data/properties_description.json"}
	assert.Contains(t, err.Error(), "data/properties_description.json")
	assert.True(t, pkgerrors.IsStale(err))
}

func TestConfigError(t *testing.T) {
	base := errors.New("no such file")
	err := pkgerrors.NewConfigError("viper", "cannot read config", base)

	assert.Equal(t, "configuration error in viper: cannot read config", err.Error())
	assert.ErrorIs(t, err, base)

	err = &pkgerrors.ConfigError{Message: "bad"}
	assert.Equal(t, "configuration error: bad", err.Error())
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name string
		err  *pkgerrors.ParseError
		want string
	}{
		{
			name: "with position",
			err:  &pkgerrors.ParseError{Format: "csv", File: "v3.0.csv", Line: 4, Column: 2, Message: "bad quote"},
			want: "parse error in csv at v3.0.csv:4:2: bad quote",
		},
		{
			name: "file only",
			err:  &pkgerrors.ParseError{Format: "version", File: "vX.csv", Message: "not a number"},
			want: "parse error in version file vX.csv: not a number",
		},
		{
			name: "no file",
			err:  &pkgerrors.ParseError{Format: "json", Message: "unexpected EOF"},
			want: "json parse error: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.True(t, pkgerrors.IsValidationError(tt.err))
		})
	}
}

func TestIOError(t *testing.T) {
	base := errors.New("permission denied")
	err := pkgerrors.NewIOError("write", "/tmp/out.json", base)

	assert.Equal(t, "IO error during write of /tmp/out.json: permission denied", err.Error())
	assert.ErrorIs(t, err, base)

	noPath := pkgerrors.NewIOError("read", "", base)
	assert.Equal(t, "IO error during read: permission denied", noPath.Error())
}

func TestResourceError(t *testing.T) {
	base := errors.New("boom")
	err := pkgerrors.NewResourceError("load", "sources", "data", base)
	assert.Equal(t, "failed to load sources data: boom", err.Error())

	err = pkgerrors.NewResourceError("save", "items", "", base)
	assert.Equal(t, "failed to save items: boom", err.Error())
	assert.ErrorIs(t, err, base)
}

func TestWrapHelpers(t *testing.T) {
	assert.NoError(t, pkgerrors.WrapIO("read", "x", nil))
	assert.NoError(t, pkgerrors.WrapResource("load", "x", "", nil))
	assert.NoError(t, pkgerrors.WrapParse("csv", "x", nil))

	base := errors.New("boom")

	var ioErr *pkgerrors.IOError
	require.ErrorAs(t, pkgerrors.WrapIO("read", "x", base), &ioErr)
	assert.Equal(t, "read", ioErr.Operation)

	var parseErr *pkgerrors.ParseError
	require.ErrorAs(t, pkgerrors.WrapParse("csv", "v1.csv", base), &parseErr)
	assert.Equal(t, "v1.csv", parseErr.File)
	assert.ErrorIs(t, parseErr, base)
}
