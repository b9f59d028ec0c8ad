package merge

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codemeta/propmerge"
	"github.com/codemeta/propmerge/internal/appcontext"
	"github.com/codemeta/propmerge/pkg/logging"
)

const inputDir = "../../../../testdata/codemeta/data/properties_description"

func newApp(t *testing.T, output string) *appcontext.Mock {
	t.Helper()
	input, err := filepath.Abs(inputDir)
	require.NoError(t, err)

	m, err := propmerge.New(
		propmerge.WithRoot(t.TempDir()),
		propmerge.WithInputDir(input),
		propmerge.WithOutputFile(output),
		propmerge.WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)

	return &appcontext.Mock{
		MergerFunc: func() (*propmerge.Merger, error) { return m, nil },
	}
}

func TestMergeCommand(t *testing.T) {
	app := newApp(t, "out/properties.json")
	m, err := app.Merger()
	require.NoError(t, err)

	var out bytes.Buffer
	cmd := NewCommand(app)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "4 items")

	golden, err := os.ReadFile("../../../../testdata/codemeta/data/properties_description.json")
	require.NoError(t, err)
	got, err := os.ReadFile(m.OutputFile())
	require.NoError(t, err)
	assert.Equal(t, string(golden), string(got))
}

func TestMergeCommandDryRun(t *testing.T) {
	app := newApp(t, "properties.yaml")
	m, err := app.Merger()
	require.NoError(t, err)

	var out bytes.Buffer
	cmd := NewCommand(app)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--dry-run"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Property: author")
	_, err = os.Stat(m.OutputFile())
	assert.True(t, os.IsNotExist(err))
}

func TestMergeCommandRejectsArgs(t *testing.T) {
	cmd := NewCommand(newApp(t, "properties.json"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}
