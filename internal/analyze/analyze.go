// Package analyze builds statistical reports from the current table:
// correlation structure, model-based feature ranking, quality scoring,
// heuristic insights, and describe-style summaries. Every operation
// works on a snapshot and never mutates the store.
package analyze

import (
	"errors"

	"github.com/chandrashekharb369/Data-cleaning-tool/internal/store"
)

var (
	ErrTooFewNumeric = errors.New("analyze: need at least two numeric columns")
	ErrNoFeatures    = errors.New("analyze: no numeric feature columns")
	ErrUnknownMethod = errors.New("analyze: unknown method")
)

type Analyzer struct {
	store *store.Store
}

func New(s *store.Store) *Analyzer {
	return &Analyzer{store: s}
}
