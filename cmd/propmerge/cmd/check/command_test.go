package check

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codemeta/propmerge"
	"github.com/codemeta/propmerge/internal/appcontext"
	"github.com/codemeta/propmerge/pkg/errors"
	"github.com/codemeta/propmerge/pkg/logging"
)

const fixture = "../../../../testdata/codemeta"

func newApp(t *testing.T, output string) *appcontext.Mock {
	t.Helper()
	m, err := propmerge.New(
		propmerge.WithRoot(fixture),
		propmerge.WithOutputFile(output),
		propmerge.WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)

	return &appcontext.Mock{
		MergerFunc: func() (*propmerge.Merger, error) { return m, nil },
	}
}

func TestCheckCommandFresh(t *testing.T) {
	var out bytes.Buffer
	cmd := NewCommand(newApp(t, "data/properties_description.json"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "is up to date (4 items)")
}

func TestCheckCommandStale(t *testing.T) {
	stale := filepath.Join(t.TempDir(), "properties_description.json")
	require.NoError(t, os.WriteFile(stale, []byte("[]\n"), 0o644))

	cmd := NewCommand(newApp(t, stale))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.IsStale(err))
}

func TestCheckCommandMissingOutput(t *testing.T) {
	cmd := NewCommand(newApp(t, filepath.Join(t.TempDir(), "missing.json")))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.IsStale(err))
}
