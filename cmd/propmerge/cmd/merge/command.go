// Package merge provides the command that regenerates the properties data file.
package merge

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/codemeta/propmerge"
	"github.com/codemeta/propmerge/pkg/save"
)

// AppContext defines the interface that the merge command needs from the app.
type AppContext interface {
	Merger() (*propmerge.Merger, error)
	Logger() *zerolog.Logger
}

// Flags holds the merge command flags.
type Flags struct {
	DryRun bool
}

// NewCommand creates the merge command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "merge",
		GroupID: "core",
		Short:   "Regenerate the properties data file",
		Long: `Merge reads every v<version>.csv table in the input directory, reconciles
the properties across versions (newest first) and writes the merged list to
the output file.

Each merged property lists the CodeMeta versions it appears in. A property
whose Type changed between versions is kept as one entry per Type.`,
		Example: `  propmerge merge                              # Regenerate data/properties_description.json
  propmerge merge --dry-run                    # Print the result instead of writing it
  propmerge merge --root ../codemeta           # Work on another checkout`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Run(cmd, app, flags)
		},
	}

	AddFlags(cmd, flags)

	return cmd
}

// AddFlags registers the merge flags on cmd. The root command uses it too,
// since running propmerge without a subcommand merges.
func AddFlags(cmd *cobra.Command, flags *Flags) {
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false,
		"print the merged output to stdout instead of writing the output file")
}

// Run executes a merge with the given flags.
func Run(cmd *cobra.Command, app AppContext, flags *Flags) error {
	ctx := cmd.Context()
	logger := app.Logger()

	m, err := app.Merger()
	if err != nil {
		return err
	}

	if flags.DryRun {
		result, err := m.Reconcile(ctx)
		if err != nil {
			return err
		}
		logger.Debug().Str("stats", result.Stats.String()).Msg("Dry run, output file not written")
		return save.Encode(cmd.OutOrStdout(), result.Items, save.WithFormat(m.Format()))
	}

	result, err := m.Merge(ctx)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", m.OutputFile(), result.Stats)
	return err
}
