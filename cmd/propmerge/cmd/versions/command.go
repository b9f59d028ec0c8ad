// Package versions provides the command that lists the discovered
// properties tables.
package versions

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/codemeta/propmerge"
	"github.com/codemeta/propmerge/internal/cmd/output"
	"github.com/codemeta/propmerge/internal/cmd/table"
	"github.com/codemeta/propmerge/pkg/sources"
)

// AppContext defines the interface that the versions command needs from the app.
type AppContext interface {
	Merger() (*propmerge.Merger, error)
	Logger() *zerolog.Logger
	OutputFormat() string
}

// Version describes one properties table for structured output.
type Version struct {
	Version string  `json:"version" yaml:"version"`
	Number  float64 `json:"number" yaml:"number"`
	Rows    int     `json:"rows" yaml:"rows"`
	File    string  `json:"file" yaml:"file"`
}

// NewCommand creates the versions command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "versions",
		GroupID: "core",
		Short:   "List the CodeMeta versions found in the input directory",
		Long: `Versions lists the properties tables in the order they are reconciled,
newest CodeMeta version first, with the number of rows each holds.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := output.ParseFormat(app.OutputFormat())
			if err != nil {
				return err
			}

			m, err := app.Merger()
			if err != nil {
				return err
			}

			files, err := m.Sources()
			if err != nil {
				return err
			}

			srcs := make([]table.Source, 0, len(files))
			list := make([]Version, 0, len(files))
			for _, file := range files {
				t, err := sources.ReadTable(file.Path, file.Version)
				if err != nil {
					return err
				}
				srcs = append(srcs, table.Source{File: file, Rows: len(t.Rows)})
				list = append(list, Version{
					Version: file.Version.String(),
					Number:  file.Number,
					Rows:    len(t.Rows),
					File:    file.Path,
				})
			}

			app.Logger().Debug().Int("versions", len(files)).Str("dir", m.InputDir()).Msg("Listed properties tables")

			return output.Render(cmd.OutOrStdout(), output.DetectFormat(string(format)), list,
				func(bool) table.Data {
					return table.SourcesToTableData(srcs)
				})
		},
	}
}
