// Package app provides the application context and dependency management
// for the propmerge CLI. It centralizes configuration, logging and the
// merger instance shared by all commands.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/codemeta/propmerge"
	"github.com/codemeta/propmerge/pkg/errors"
)

// App represents the propmerge application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Merger instance (lazy-initialized, singleton)
	mu     sync.RWMutex
	merger *propmerge.Merger
}

// New creates a new App instance with the given version information.
// Configuration is loaded from the environment, .env files and the
// default config file; options may replace it.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Merger returns the merger instance, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Merger() (*propmerge.Merger, error) {
	a.mu.RLock()
	if a.merger != nil {
		m := a.merger
		a.mu.RUnlock()
		return m, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.merger != nil {
		return a.merger, nil
	}

	m, err := propmerge.New(a.mergerOptions()...)
	if err != nil {
		return nil, errors.WrapResource("create", "merger", "", err)
	}

	a.merger = m
	return m, nil
}

// Shutdown performs graceful shutdown of the application.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.Lock()
	a.merger = nil
	a.mu.Unlock()
	return nil
}

// mergerOptions constructs merger options from the app configuration.
func (a *App) mergerOptions() []propmerge.Option {
	opts := []propmerge.Option{
		propmerge.WithLogger(a.logger),
		propmerge.WithStrict(a.config.Strict),
	}

	if a.config.Root != "" {
		opts = append(opts, propmerge.WithRoot(a.config.Root))
	}
	if a.config.InputDir != "" {
		opts = append(opts, propmerge.WithInputDir(a.config.InputDir))
	}
	if a.config.OutputFile != "" {
		opts = append(opts, propmerge.WithOutputFile(a.config.OutputFile))
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		logger := NewLogger(config)
		a.logger = &logger
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}
