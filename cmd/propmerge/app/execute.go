package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/codemeta/propmerge/cmd/propmerge/cmd/merge"
	"github.com/codemeta/propmerge/pkg/logging"
)

// Execute runs the propmerge CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	mergeFlags := &merge.Flags{}

	rootCmd := &cobra.Command{
		Use:     "propmerge",
		Short:   "Merge CodeMeta properties tables across versions",
		Version: a.version,
		Long: `Propmerge regenerates the CodeMeta properties data file used by the site.

It reads one CSV table per CodeMeta version from data/properties_description/,
reconciles the properties across versions and writes
data/properties_description.json, where every property lists the versions it
appears in. Running propmerge without a subcommand is the same as
propmerge merge.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setupCommand,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return merge.Run(cmd, a, mergeFlags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands:",
	})

	// Global flags. Defaults come from the loaded config so that flags only
	// override the environment and config file when given.
	var configFile string
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file (default is ./.propmerge.yaml or $HOME/.propmerge.yaml)")
	pf.BoolVarP(&a.config.Verbose, "verbose", "v", a.config.Verbose, "verbose output (shortcut for --log-level=debug)")
	pf.BoolVarP(&a.config.Quiet, "quiet", "q", a.config.Quiet, "minimal output (shortcut for --log-level=warn)")
	pf.BoolVar(&a.config.NoColor, "no-color", a.config.NoColor, "disable colored output")
	pf.StringVarP(&a.config.Format, "format", "o", a.config.Format, "output format: table, json, yaml, wide")
	pf.StringVar(&a.config.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	pf.StringVar(&a.config.Root, "root", a.config.Root, "repository root (default is the nearest directory holding data/properties_description)")
	pf.StringVar(&a.config.InputDir, "input", a.config.InputDir, "directory of v<version>.csv tables, relative to the root")
	pf.StringVar(&a.config.OutputFile, "output", a.config.OutputFile, "generated data file, relative to the root; .yaml writes YAML")
	pf.BoolVar(&a.config.Strict, "strict", a.config.Strict, "fail when a version declares the same property twice")

	merge.AddFlags(rootCmd, mergeFlags)

	rootCmd.SetVersionTemplate("propmerge {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	// These flags are defined as persistent flags in createRootCommand, so errors indicate programming errors
	verbose := mustGetBool(cmd, "verbose")
	quiet := mustGetBool(cmd, "quiet")
	noColor := mustGetBool(cmd, "no-color")
	format := mustGetString(cmd, "format")
	logLevel := mustGetString(cmd, "log-level")

	if configFile := mustGetString(cmd, "config"); cmd.Flags().Changed("config") {
		if err := a.reloadConfig(cmd, configFile); err != nil {
			return err
		}
	}

	a.config.UpdateFromFlags(verbose, quiet, noColor, format, logLevel)

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger
	logging.SetDefault(logger)

	// Drop any merger built before the flags were known
	a.mu.Lock()
	a.merger = nil
	a.mu.Unlock()

	return nil
}

// reloadConfig reads an explicit --config file. Values of flags given on
// the command line are kept.
func (a *App) reloadConfig(cmd *cobra.Command, configFile string) error {
	loaded, err := LoadConfig(configFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("root") {
		loaded.Root = a.config.Root
	}
	if flags.Changed("input") {
		loaded.InputDir = a.config.InputDir
	}
	if flags.Changed("output") {
		loaded.OutputFile = a.config.OutputFile
	}
	if flags.Changed("strict") {
		loaded.Strict = a.config.Strict
	}
	if !flags.Changed("format") {
		// UpdateFromFlags only overrides a non-empty format
		a.config.Format = loaded.Format
	}

	a.config.ConfigFile = loaded.ConfigFile
	a.config.Root = loaded.Root
	a.config.InputDir = loaded.InputDir
	a.config.OutputFile = loaded.OutputFile
	a.config.Strict = loaded.Strict
	a.config.EnvLogLevel = loaded.EnvLogLevel
	a.config.LogFormat = loaded.LogFormat
	a.config.LogOutput = loaded.LogOutput
	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(a.NewMergeCommand())
	rootCmd.AddCommand(a.NewCheckCommand())
	rootCmd.AddCommand(a.NewShowCommand())
	rootCmd.AddCommand(a.NewVersionsCommand())

	// Management commands
	rootCmd.AddCommand(a.NewVersionCommand())
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
