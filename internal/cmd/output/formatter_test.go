package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codemeta/propmerge/internal/cmd/table"
	"github.com/codemeta/propmerge/pkg/properties"
)

var items = []properties.Item{{
	Versions:    []properties.Version{"v3.0", "v2.0"},
	ParentType:  "codemeta:SoftwareSourceCode",
	Property:    "readme",
	Type:        "URL",
	Description: "link to software Readme file <README.md>",
}}

func itemsTable(wide bool) table.Data {
	return table.ItemsToTableData(items, wide)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"wide", FormatWide, false},
		{"", "", false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
	assert.Equal(t, FormatWide, DetectFormat("wide"))
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, items, itemsTable))

	out := buf.String()
	assert.Contains(t, out, `"Parent Type": "codemeta:SoftwareSourceCode"`)
	assert.Contains(t, out, "<README.md>")
	assert.True(t, strings.HasPrefix(out, "[\n  {\n"))
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatYAML, items, itemsTable))

	out := buf.String()
	assert.Contains(t, out, "Property: readme")
	assert.Contains(t, out, "- v3.0")
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatTable, items, itemsTable))

	out := buf.String()
	assert.Contains(t, out, "PROPERTY")
	assert.Contains(t, out, "readme")
	assert.Contains(t, out, "v3.0, v2.0")
	assert.NotContains(t, out, "PARENT TYPE")
}

func TestRenderWideTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatWide, items, itemsTable))

	out := buf.String()
	assert.Contains(t, out, "PARENT TYPE")
	assert.Contains(t, out, "codemeta:SoftwareSourceCode")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TableFormatter{}).Format(&buf, map[string]int{"items": 4}))
	assert.Contains(t, buf.String(), `"items": 4`)
}
