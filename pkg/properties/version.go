package properties

import (
	"math"
	"strconv"
	"strings"

	"github.com/codemeta/propmerge/pkg/constants"
	"github.com/codemeta/propmerge/pkg/errors"
)

// Version identifies one CodeMeta release, e.g. "v3.0". It is the stem of
// the file the release's properties table was read from.
type Version string

// String returns the version identifier.
func (v Version) String() string {
	return string(v)
}

// Number parses the numeric part of the version. All leading "v" characters
// are stripped and the remainder is parsed as a decimal number, so "v3.0"
// sorts above "v2.10" (3.0 > 2.1).
func (v Version) Number() (float64, error) {
	s := strings.TrimLeft(string(v), constants.VersionPrefix)
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.NewParseError("version", string(v), "not a v<number> identifier", err)
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, errors.NewParseError("version", string(v), "version number must be finite", nil)
	}
	return n, nil
}
