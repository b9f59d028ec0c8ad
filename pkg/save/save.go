// Package save writes reconciled items to the data file read by the site.
//
// JSON is written as an array with two-space indentation and no HTML
// escaping, followed by a newline. Files are replaced atomically so a failed
// run never leaves partial output behind.
package save

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/codemeta/propmerge/pkg/constants"
	"github.com/codemeta/propmerge/pkg/errors"
	"github.com/codemeta/propmerge/pkg/properties"
)

// Marshal encodes items in the configured format.
func Marshal(items []properties.Item, opts ...Option) ([]byte, error) {
	options := Defaults().Apply(opts...)

	if items == nil {
		items = []properties.Item{}
	}

	switch options.Format() {
	case FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", options.Indent())
		if err := enc.Encode(items); err != nil {
			return nil, errors.WrapParse("json", "", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		data, err := yaml.MarshalWithOptions(items,
			yaml.Indent(2),
			yaml.IndentSequence(true),
		)
		if err != nil {
			return nil, errors.WrapParse("yaml", "", err)
		}
		return data, nil
	default:
		return nil, errors.NewValidationError("format", options.Format(), "unsupported output format")
	}
}

// Encode writes the encoding of items to w.
func Encode(w io.Writer, items []properties.Item, opts ...Option) error {
	data, err := Marshal(items, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return errors.WrapIO("write", "", err)
}

// WriteFile replaces the file at path with the encoding of items. Missing
// parent directories are created.
func WriteFile(path string, items []properties.Item, opts ...Option) error {
	data, err := Marshal(items, opts...)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.WrapIO("create", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.WrapIO("write", tmpName, err)
	}
	if err := tmp.Chmod(constants.FilePermissions); err != nil {
		tmp.Close()
		return errors.WrapIO("chmod", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.WrapIO("close", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.WrapIO("rename", path, err)
	}
	return nil
}

// IsFresh reports whether the file at path already holds exactly the
// encoding of items. A missing file is not fresh.
func IsFresh(path string, items []properties.Item, opts ...Option) (bool, error) {
	want, err := Marshal(items, opts...)
	if err != nil {
		return false, err
	}

	got, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.WrapIO("read", path, err)
	}

	return bytes.Equal(got, want), nil
}
