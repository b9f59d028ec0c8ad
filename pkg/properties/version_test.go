package properties_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codemeta/propmerge/pkg/errors"
	"github.com/codemeta/propmerge/pkg/properties"
)

func TestVersionNumber(t *testing.T) {
	tests := []struct {
		version properties.Version
		want    float64
	}{
		{"v3.0", 3.0},
		{"v2.0", 2.0},
		{"v1", 1.0},
		{"vv1.5", 1.5},
		{"2.10", 2.1},
	}

	for _, tt := range tests {
		t.Run(tt.version.String(), func(t *testing.T) {
			got, err := tt.version.Number()
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestVersionNumberInvalid(t *testing.T) {
	for _, v := range []properties.Version{"latest", "v", "v3.0.1", "vnan", "vinf", ""} {
		t.Run(string(v), func(t *testing.T) {
			_, err := v.Number()
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}
