// Package sources finds and parses the per-version properties tables.
//
// A source directory holds one CSV file per CodeMeta release, named after the
// release (v2.0.csv, v3.0.csv, ...). Load returns their tables ordered from
// the newest release to the oldest, which is the order reconciliation needs.
//
// Example usage:
//
//	tables, err := sources.Load(ctx, "data/properties_description")
//	if err != nil {
//	    return err
//	}
//	for _, table := range tables {
//	    fmt.Println(table.Version, len(table.Rows))
//	}
package sources

import (
	"cmp"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/codemeta/propmerge/pkg/constants"
	"github.com/codemeta/propmerge/pkg/errors"
	"github.com/codemeta/propmerge/pkg/logging"
	"github.com/codemeta/propmerge/pkg/properties"
)

// File is a discovered properties table that has not been parsed yet.
type File struct {
	Path    string
	Version properties.Version
	Number  float64
}

// Discover lists the *.csv files directly inside dir, ordered by descending
// version number. Files with the same number keep file name order.
func Discover(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.WrapIO("read", dir, err)
	}

	var files []File
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != constants.SourceExtension {
			continue
		}

		version := properties.Version(strings.TrimSuffix(name, constants.SourceExtension))
		number, err := version.Number()
		if err != nil {
			return nil, errors.NewParseError("version", filepath.Join(dir, name),
				"file name must look like v<number>.csv", err)
		}

		files = append(files, File{
			Path:    filepath.Join(dir, name),
			Version: version,
			Number:  number,
		})
	}

	// os.ReadDir returns entries sorted by name, the stable sort keeps that for ties
	slices.SortStableFunc(files, func(a, b File) int {
		return cmp.Compare(b.Number, a.Number)
	})

	return files, nil
}

// Load discovers and parses every properties table in dir, newest version first.
func Load(ctx context.Context, dir string) ([]properties.Table, error) {
	logger := logging.FromContext(ctx)

	files, err := Discover(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		logger.Warn().Str("dir", dir).Msg("No properties tables found")
	}

	tables := make([]properties.Table, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		table, err := ReadTable(file.Path, file.Version)
		if err != nil {
			return nil, err
		}

		fctx := logging.WithFile(logging.WithVersion(ctx, file.Version.String()), file.Path)
		logging.FromContext(fctx).Debug().
			Int("rows", len(table.Rows)).
			Msg("Loaded properties table")

		tables = append(tables, table)
	}

	return tables, nil
}
