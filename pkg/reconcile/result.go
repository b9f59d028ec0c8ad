package reconcile

import (
	"fmt"
	"time"

	"github.com/codemeta/propmerge/pkg/properties"
)

// Result is the outcome of a reconciliation run.
type Result struct {
	// Items sorted by Property
	Items []properties.Item

	Stats Stats
}

// Stats counts what happened to the rows during reconciliation.
type Stats struct {
	// Versions in the order they were processed
	Versions []properties.Version

	Rows        int // rows read, including skipped ones
	Skipped     int // rows with an empty Property
	Created     int // items created, including type splits
	TypeSplits  int // items created because the Type diverged from a newer version
	Merged      int // versions appended to an existing item
	Respelled   int // rows whose Type only differed in spelling from the newer one
	Redescribed int // rows whose Description was superseded by a newer version
	Duplicates  int // repeated rows dropped by non-strict reconciliation
	Items       int

	Duration time.Duration
}

// String returns a one-line summary of the statistics.
func (s Stats) String() string {
	return fmt.Sprintf("%d versions, %d rows (%d skipped) -> %d items (%d type splits)",
		len(s.Versions), s.Rows, s.Skipped, s.Items, s.TypeSplits)
}
