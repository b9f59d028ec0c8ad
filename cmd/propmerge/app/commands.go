package app

import (
	"github.com/spf13/cobra"

	"github.com/codemeta/propmerge/cmd/propmerge/cmd/check"
	"github.com/codemeta/propmerge/cmd/propmerge/cmd/merge"
	"github.com/codemeta/propmerge/cmd/propmerge/cmd/show"
	"github.com/codemeta/propmerge/cmd/propmerge/cmd/version"
	"github.com/codemeta/propmerge/cmd/propmerge/cmd/versions"
)

// NewMergeCommand creates the merge command with app dependencies.
func (a *App) NewMergeCommand() *cobra.Command {
	return merge.NewCommand(a)
}

// NewCheckCommand creates the check command with app dependencies.
func (a *App) NewCheckCommand() *cobra.Command {
	return check.NewCommand(a)
}

// NewShowCommand creates the show command with app dependencies.
func (a *App) NewShowCommand() *cobra.Command {
	return show.NewCommand(a)
}

// NewVersionsCommand creates the versions command with app dependencies.
func (a *App) NewVersionsCommand() *cobra.Command {
	return versions.NewCommand(a)
}

// NewVersionCommand creates the version command with app dependencies.
func (a *App) NewVersionCommand() *cobra.Command {
	return version.NewCommand(a)
}
