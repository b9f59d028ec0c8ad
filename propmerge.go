// Package propmerge regenerates the CodeMeta properties data file.
//
// It reads one properties table per CodeMeta release from
// data/properties_description/v<version>.csv, reconciles them into a single
// list of properties annotated with the releases they appear in, and writes
// data/properties_description.json for the site templates.
//
// Example usage:
//
//	m, err := propmerge.New(propmerge.WithRoot("."))
//	if err != nil {
//	    return err
//	}
//	result, err := m.Merge(ctx)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(result.Stats)
package propmerge

import (
	"context"
	"os"
	"path/filepath"

	"github.com/codemeta/propmerge/pkg/constants"
	"github.com/codemeta/propmerge/pkg/errors"
	"github.com/codemeta/propmerge/pkg/logging"
	"github.com/codemeta/propmerge/pkg/reconcile"
	"github.com/codemeta/propmerge/pkg/save"
	"github.com/codemeta/propmerge/pkg/sources"
)

// Merger runs the load, reconcile and save pipeline for one repository.
type Merger struct {
	config *config
}

// New creates a Merger. Without options it works on the repository found
// by FindRoot from the working directory.
func New(opts ...Option) (*Merger, error) {
	c := &config{
		inputDir:   constants.DefaultInputDir,
		outputFile: constants.DefaultOutputFile,
		strict:     true,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.WrapIO("getwd", "", err)
		}
		c.root = FindRoot(wd)
	}

	if c.format == nil {
		format, err := save.ParseFormat(filepath.Ext(c.outputFile))
		if err != nil {
			return nil, err
		}
		c.format = &format
	}

	return &Merger{config: c}, nil
}

// Root returns the repository root.
func (m *Merger) Root() string {
	return m.config.root
}

// InputDir returns the absolute or root-relative input directory.
func (m *Merger) InputDir() string {
	return m.resolve(m.config.inputDir)
}

// OutputFile returns the absolute or root-relative output file.
func (m *Merger) OutputFile() string {
	return m.resolve(m.config.outputFile)
}

// Format returns the output format.
func (m *Merger) Format() save.Format {
	return *m.config.format
}

// Strict reports whether duplicate declarations abort reconciliation.
func (m *Merger) Strict() bool {
	return m.config.strict
}

// Sources lists the discovered properties tables, newest version first.
func (m *Merger) Sources() ([]sources.File, error) {
	return sources.Discover(m.InputDir())
}

// Reconcile loads every properties table and reconciles them without
// writing anything.
func (m *Merger) Reconcile(ctx context.Context) (*reconcile.Result, error) {
	return m.reconcile(m.context(ctx, "reconcile"))
}

func (m *Merger) reconcile(ctx context.Context) (*reconcile.Result, error) {
	tables, err := sources.Load(ctx, m.InputDir())
	if err != nil {
		return nil, errors.WrapResource("load", "sources", m.InputDir(), err)
	}

	r, err := reconcile.New(
		reconcile.WithLogger(logging.FromContext(ctx)),
		reconcile.WithStrict(m.config.strict),
	)
	if err != nil {
		return nil, err
	}

	result, err := r.Tables(ctx, tables)
	if err != nil {
		return nil, errors.WrapResource("reconcile", "properties", "", err)
	}
	return result, nil
}

// Merge reconciles the tables and replaces the output file.
func (m *Merger) Merge(ctx context.Context) (*reconcile.Result, error) {
	ctx = m.context(ctx, "merge")
	logger := logging.FromContext(ctx)

	result, err := m.reconcile(ctx)
	if err != nil {
		return nil, err
	}

	if err := save.WriteFile(m.OutputFile(), result.Items, save.WithFormat(m.Format())); err != nil {
		return nil, errors.WrapResource("save", "properties", m.OutputFile(), err)
	}

	logger.Info().
		Str("output", m.OutputFile()).
		Int("items", len(result.Items)).
		Int("versions", len(result.Stats.Versions)).
		Msg("Wrote properties data file")

	return result, nil
}

// Check reconciles the tables and returns an errors.StaleError when the
// output file does not hold the result.
func (m *Merger) Check(ctx context.Context) (*reconcile.Result, error) {
	ctx = m.context(ctx, "check")

	result, err := m.reconcile(ctx)
	if err != nil {
		return nil, err
	}

	fresh, err := save.IsFresh(m.OutputFile(), result.Items, save.WithFormat(m.Format()))
	if err != nil {
		return nil, err
	}
	if !fresh {
		return result, &errors.StaleError{Path: m.OutputFile()}
	}
	return result, nil
}

func (m *Merger) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.config.root, path)
}

// context attaches the configured logger, tagged with the operation.
func (m *Merger) context(ctx context.Context, operation string) context.Context {
	if m.config.logger != nil {
		ctx = logging.WithLogger(ctx, m.config.logger)
	}
	return logging.WithOperation(ctx, operation)
}

// FindRoot returns the nearest ancestor of start (start included) that
// contains the default input directory, or start itself when there is none.
func FindRoot(start string) string {
	dir, err := filepath.Abs(start)
	if err != nil {
		return start
	}
	for {
		if info, err := os.Stat(filepath.Join(dir, constants.DefaultInputDir)); err == nil && info.IsDir() {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start
		}
		dir = parent
	}
}
