package sources

import (
	"encoding/csv"
	stderrors "errors"
	"io"
	"os"
	"strings"

	"github.com/codemeta/propmerge/pkg/constants"
	"github.com/codemeta/propmerge/pkg/errors"
	"github.com/codemeta/propmerge/pkg/properties"
)

const utf8BOM = "\ufeff"

// ReadTable parses the properties table stored at path.
func ReadTable(path string, version properties.Version) (properties.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return properties.Table{}, errors.WrapIO("open", path, err)
	}
	defer f.Close()

	rows, err := ParseRows(f, path, version)
	if err != nil {
		return properties.Table{}, err
	}

	return properties.Table{
		Version: version,
		Path:    path,
		Rows:    rows,
	}, nil
}

// ParseRows reads CSV records from r. The first record is the header; columns
// are matched by name so their order does not matter and extra columns are
// ignored. Every record must have as many fields as the header. name is only
// used in error messages.
func ParseRows(r io.Reader, name string, version properties.Version) ([]properties.Row, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, wrapCSV(name, err)
	}

	index, err := columnIndex(header, name)
	if err != nil {
		return nil, err
	}

	var rows []properties.Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapCSV(name, err)
		}

		rows = append(rows, properties.Row{
			Version:     version,
			ParentType:  record[index[constants.ColumnParentType]],
			Property:    record[index[constants.ColumnProperty]],
			Type:        record[index[constants.ColumnType]],
			Description: record[index[constants.ColumnDescription]],
		})
	}

	return rows, nil
}

// columnIndex maps each required column name to its position in header.
func columnIndex(header []string, name string) (map[string]int, error) {
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	index := make(map[string]int, len(header))
	for i, column := range header {
		if _, seen := index[column]; !seen {
			index[column] = i
		}
	}

	var missing []string
	for _, column := range constants.Columns {
		if _, ok := index[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return nil, errors.NewParseError("csv", name,
			"header is missing column(s): "+strings.Join(missing, ", "), nil)
	}

	return index, nil
}

// wrapCSV converts encoding/csv errors, keeping their position.
func wrapCSV(name string, err error) error {
	var parseErr *csv.ParseError
	if stderrors.As(err, &parseErr) {
		return &errors.ParseError{
			Format:  "csv",
			File:    name,
			Line:    parseErr.Line,
			Column:  parseErr.Column,
			Message: parseErr.Err.Error(),
			Err:     err,
		}
	}
	return errors.WrapParse("csv", name, err)
}
