// Package show provides the command that previews merged properties.
package show

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/codemeta/propmerge"
	"github.com/codemeta/propmerge/internal/cmd/output"
	"github.com/codemeta/propmerge/internal/cmd/table"
	"github.com/codemeta/propmerge/pkg/errors"
	"github.com/codemeta/propmerge/pkg/properties"
)

// AppContext defines the interface that the show command needs from the app.
type AppContext interface {
	Merger() (*propmerge.Merger, error)
	Logger() *zerolog.Logger
	OutputFormat() string
}

// Flags holds the show command flags.
type Flags struct {
	ParentType string
	Version    string
}

// NewCommand creates the show command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "show [property]",
		GroupID: "core",
		Short:   "Show merged properties",
		Long: `Show reconciles the CSV tables and renders the merged properties without
writing the output file. Property names match case-insensitively.`,
		Example: `  propmerge show                               # All properties as a table
  propmerge show author                        # One property
  propmerge show --in-version v2.0 -o yaml     # Properties present in v2.0
  propmerge show -o wide                       # Include parent types and full descriptions`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ParseFormat(app.OutputFormat())
			if err != nil {
				return err
			}

			m, err := app.Merger()
			if err != nil {
				return err
			}

			result, err := m.Reconcile(cmd.Context())
			if err != nil {
				return err
			}

			var property string
			if len(args) == 1 {
				property = args[0]
			}
			items := Filter(result.Items, property, flags)
			if len(items) == 0 && property != "" {
				return errors.NewNotFoundError("property", property)
			}

			app.Logger().Debug().
				Int("items", len(items)).
				Int("total", len(result.Items)).
				Msg("Rendering merged properties")

			return output.Render(cmd.OutOrStdout(), output.DetectFormat(string(format)), items,
				func(wide bool) table.Data {
					return table.ItemsToTableData(items, wide)
				})
		},
	}

	cmd.Flags().StringVar(&flags.ParentType, "parent-type", "", "only show properties of this parent type")
	cmd.Flags().StringVar(&flags.Version, "in-version", "", "only show properties present in this CodeMeta version")

	return cmd
}

// Filter returns the items matching property (if set) and the flag filters.
func Filter(items []properties.Item, property string, flags *Flags) []properties.Item {
	filtered := make([]properties.Item, 0, len(items))
	for _, item := range items {
		if property != "" && !strings.EqualFold(item.Property, property) {
			continue
		}
		if flags.ParentType != "" && !strings.EqualFold(item.ParentType, flags.ParentType) {
			continue
		}
		if flags.Version != "" && !item.HasVersion(properties.Version(flags.Version)) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}
