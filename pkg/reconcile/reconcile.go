// Package reconcile merges the properties tables of several CodeMeta versions
// into one list of items annotated with the versions each appears in.
//
// Tables must be given newest version first. For every row the first item
// created for the same (Parent Type, Property) pair is looked up:
//
//   - identical row: the version is appended to that item
//   - Type differs once canonicalized: the row becomes a separate item
//   - same Type, other spelling or Description: the newer item's values are
//     kept and the version is appended
//
// Rows with an empty Property are skipped. A version recorded twice on an
// identical item means the version declares the property twice; this aborts
// reconciliation with an errors.DuplicateVersionError.
package reconcile

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/codemeta/propmerge/pkg/errors"
	"github.com/codemeta/propmerge/pkg/logging"
	"github.com/codemeta/propmerge/pkg/properties"
)

// Reconciler merges per-version properties tables.
type Reconciler struct {
	logger *zerolog.Logger
	strict bool
}

// New creates a Reconciler.
func New(opts ...Option) (*Reconciler, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &Reconciler{logger: options.logger, strict: options.strict}, nil
}

// Tables reconciles tables, which must be ordered newest version first.
// The returned items are sorted by Property.
func (r *Reconciler) Tables(ctx context.Context, tables []properties.Table) (*Result, error) {
	if r.logger != nil {
		ctx = logging.WithLogger(ctx, r.logger)
	}
	logger := logging.FromContext(ctx)

	start := time.Now()
	m := newMerge(logger, r.strict)

	for _, table := range tables {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m.logger = logging.FromContext(logging.WithVersion(ctx, table.Version.String()))
		if err := m.table(table); err != nil {
			return nil, err
		}
		m.stats.Versions = append(m.stats.Versions, table.Version)
	}

	items := make([]properties.Item, len(m.items))
	for i, item := range m.items {
		items[i] = *item
	}
	slices.SortStableFunc(items, func(a, b properties.Item) int {
		return cmp.Compare(a.Property, b.Property)
	})

	m.stats.Items = len(items)
	m.stats.Duration = time.Since(start)

	logger.Debug().
		Int("versions", len(tables)).
		Int("rows", m.stats.Rows).
		Int("items", m.stats.Items).
		Int("type_splits", m.stats.TypeSplits).
		Msg("Reconciled properties tables")

	return &Result{Items: items, Stats: m.stats}, nil
}

// Tables reconciles tables with a default Reconciler.
func Tables(ctx context.Context, tables []properties.Table) ([]properties.Item, error) {
	r, err := New()
	if err != nil {
		return nil, err
	}
	result, err := r.Tables(ctx, tables)
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}

// merge holds the state of a single reconciliation run.
type merge struct {
	logger *zerolog.Logger
	strict bool
	items  []*properties.Item
	// first maps a key to the index of the first item created for it; items
	// split off later by a Type divergence are never matched again.
	first map[properties.Key]int
	stats Stats
}

func newMerge(logger *zerolog.Logger, strict bool) *merge {
	return &merge{
		logger: logger,
		strict: strict,
		first:  make(map[properties.Key]int),
	}
}

func (m *merge) table(table properties.Table) error {
	for _, row := range table.Rows {
		m.stats.Rows++
		if row.Property == "" {
			m.stats.Skipped++
			continue
		}
		if row.Version == "" {
			row.Version = table.Version
		}
		if err := m.row(row); err != nil {
			return err
		}
	}
	return nil
}

func (m *merge) row(row properties.Row) error {
	idx, ok := m.first[row.Key()]
	if !ok {
		m.first[row.Key()] = len(m.items)
		m.items = append(m.items, properties.NewItem(row))
		m.stats.Created++
		return nil
	}
	existing := m.items[idx]

	if existing.Matches(row) {
		if existing.HasVersion(row.Version) {
			err := errors.NewDuplicateVersionError(
				row.Version.String(), row.ParentType, row.Property, row.Type)
			if m.strict {
				return err
			}
			m.logger.Warn().Err(err).Msg("Dropping repeated row")
			m.stats.Duplicates++
			return nil
		}
		existing.AddVersion(row.Version)
		m.stats.Merged++
		return nil
	}

	if !properties.SameType(existing.Type, row.Type) {
		m.logger.Debug().
			Str("property", row.Property).
			Str("type", row.Type).
			Str("newer_type", existing.Type).
			Msg("Type differs from newer version, keeping separate item")
		m.items = append(m.items, properties.NewItem(row))
		m.stats.Created++
		m.stats.TypeSplits++
		return nil
	}

	if existing.Type != row.Type {
		m.stats.Respelled++
	}
	if existing.Description != row.Description {
		m.stats.Redescribed++
	}
	if existing.AddVersion(row.Version) {
		m.stats.Merged++
	}
	return nil
}
