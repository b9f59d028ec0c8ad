package show

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codemeta/propmerge"
	"github.com/codemeta/propmerge/internal/appcontext"
	"github.com/codemeta/propmerge/pkg/errors"
	"github.com/codemeta/propmerge/pkg/logging"
	"github.com/codemeta/propmerge/pkg/properties"
)

var items = []properties.Item{
	{Versions: []properties.Version{"v3.0", "v2.0"}, ParentType: "schema:CreativeWork", Property: "author", Type: "Person"},
	{Versions: []properties.Version{"v2.0"}, ParentType: "codemeta:SoftwareSourceCode", Property: "embargoDate", Type: "Date"},
	{Versions: []properties.Version{"v3.0"}, ParentType: "codemeta:SoftwareSourceCode", Property: "embargoEndDate", Type: "Date"},
}

func names(filtered []properties.Item) []string {
	names := make([]string, len(filtered))
	for i, item := range filtered {
		names[i] = item.Property
	}
	return names
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		property string
		flags    Flags
		want     []string
	}{
		{"no filter", "", Flags{}, []string{"author", "embargoDate", "embargoEndDate"}},
		{"property case-insensitive", "EMBARGODATE", Flags{}, []string{"embargoDate"}},
		{"parent type", "", Flags{ParentType: "codemeta:softwaresourcecode"}, []string{"embargoDate", "embargoEndDate"}},
		{"version", "", Flags{Version: "v3.0"}, []string{"author", "embargoEndDate"}},
		{"no match", "license", Flags{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := tt.flags
			assert.Equal(t, tt.want, names(Filter(items, tt.property, &flags)))
		})
	}
}

func newApp(t *testing.T, format string) *appcontext.Mock {
	t.Helper()
	m, err := propmerge.New(
		propmerge.WithRoot("../../../../testdata/codemeta"),
		propmerge.WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)

	return &appcontext.Mock{
		MergerFunc:       func() (*propmerge.Merger, error) { return m, nil },
		OutputFormatFunc: func() string { return format },
	}
}

func TestShowCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := NewCommand(newApp(t, "yaml"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"author"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Property: author")
	assert.NotContains(t, out.String(), "readme")
}

func TestShowCommandTable(t *testing.T) {
	var out bytes.Buffer
	cmd := NewCommand(newApp(t, "table"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--in-version", "v2.0"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "embargoDate")
	assert.NotContains(t, out.String(), "embargoEndDate")
}

func TestShowCommandUnknownProperty(t *testing.T) {
	cmd := NewCommand(newApp(t, "json"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"license"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestShowCommandInvalidFormat(t *testing.T) {
	cmd := NewCommand(newApp(t, "xml"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	assert.Error(t, cmd.Execute())
}
