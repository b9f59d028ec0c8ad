// Package check provides the command that verifies the properties data file
// is up to date with its CSV tables.
package check

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/codemeta/propmerge"
)

// AppContext defines the interface that the check command needs from the app.
type AppContext interface {
	Merger() (*propmerge.Merger, error)
	Logger() *zerolog.Logger
}

// NewCommand creates the check command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "check",
		GroupID: "core",
		Short:   "Verify the properties data file is up to date",
		Long: `Check reconciles the CSV tables and compares the result with the output
file without writing anything. It exits with status 1 when the file is
missing or out of date, which makes it suitable for CI.`,
		Example: `  propmerge check
  propmerge check --output data/properties_description.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := app.Merger()
			if err != nil {
				return err
			}

			result, err := m.Check(cmd.Context())
			if err != nil {
				return err
			}

			app.Logger().Debug().Str("stats", result.Stats.String()).Msg("Output file is fresh")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date (%d items)\n",
				m.OutputFile(), len(result.Items))
			return err
		},
	}
}
