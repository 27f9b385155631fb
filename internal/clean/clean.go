// Package clean implements the table transformations: deduplication,
// missing-value handling, outlier removal, dummy encoding,
// normalization, type conversion, and the auto-clean policy. Every
// operation snapshots the store's table, builds a replacement, and
// installs it through Swap, so the store's metadata and log stay
// consistent with the data. Failures are returned as values; nothing
// here panics past the boundary.
package clean

import (
	"errors"

	"github.com/chandrashekharb369/Data-cleaning-tool/internal/store"
)

// Operation errors.
var (
	ErrUnknownMethod = errors.New("unknown method")
	ErrNoColumns     = errors.New("no applicable columns")
)

// DefaultKNNNeighbors is the neighbor count for KNN imputation when the
// cleaner is not configured otherwise.
const DefaultKNNNeighbors = 5

// Cleaner applies cleaning operations against one Store. It borrows the
// store per call and keeps no table references of its own.
type Cleaner struct {
	store        *store.Store
	KNNNeighbors int
}

// New creates a Cleaner bound to a store.
func New(s *store.Store) *Cleaner {
	return &Cleaner{store: s, KNNNeighbors: DefaultKNNNeighbors}
}
