// Package store owns the working table, its pristine snapshot, derived
// metadata, and the append-only processing log. All mutation funnels
// through Swap, which replaces the table, recomputes metadata, and
// appends to the log as one write-locked unit, so readers never observe
// a half-updated table/metadata pair.
package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/chandrashekharb369/Data-cleaning-tool/internal/ingest"
	"github.com/chandrashekharb369/Data-cleaning-tool/pkg/dataset"
)

// Store holds one session's dataset. A Store has a single logical
// writer; concurrent reads are safe.
type Store struct {
	mu        sync.RWMutex
	sessionID uuid.UUID
	logger    *logrus.Logger

	data     *dataset.Table
	original *dataset.Table
	meta     Metadata
	actions  []string
}

// New creates an empty Store. A nil logger gets a default logrus logger.
func New(logger *logrus.Logger) *Store {
	if logger == nil {
		logger = logrus.New()
	}
	return &Store{
		sessionID: uuid.New(),
		logger:    logger,
	}
}

// SessionID identifies this Store instance in logs and reports.
func (s *Store) SessionID() uuid.UUID { return s.sessionID }

// Logger exposes the store's logger so the engines log through the same
// sink.
func (s *Store) Logger() *logrus.Logger { return s.logger }

// Load parses the file at path and installs it as both the working table
// and the pristine original. On failure the Store's state is untouched.
func (s *Store) Load(path string) error {
	table, err := ingest.Read(path)
	if err != nil {
		s.logger.WithError(err).WithField("path", path).Error("load failed")
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = table
	s.original = table.Clone()
	s.meta = computeMetadata(s.data)
	s.appendLog(fmt.Sprintf("Loaded data from %s", path))
	return nil
}

// LoadTable installs an in-memory table, cloning it so the caller's copy
// stays independent. Used by recipes and tests.
func (s *Store) LoadTable(t *dataset.Table, action string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = t.Clone()
	s.original = t.Clone()
	s.meta = computeMetadata(s.data)
	s.appendLog(action)
}

// Swap replaces the working table and refreshes metadata and the log in
// the same critical section. This is the single mutation point for the
// cleaning engine.
func (s *Store) Swap(t *dataset.Table, action string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = t
	s.meta = computeMetadata(s.data)
	s.appendLog(action)
}

// UpdateMetadata recomputes derived metadata from the current table.
// No-op when nothing is loaded.
func (s *Store) UpdateMetadata() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return
	}
	s.meta = computeMetadata(s.data)
}

// LogAction appends to the processing log. Never fails.
func (s *Store) LogAction(action string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendLog(action)
}

// appendLog must be called with the write lock held.
func (s *Store) appendLog(action string) {
	s.actions = append(s.actions, action)
	s.logger.WithField("session", s.sessionID.String()).Info(action)
}

// ProcessingLog returns a copy of the action log.
func (s *Store) ProcessingLog() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.actions))
	copy(out, s.actions)
	return out
}

// HasData reports whether a table is loaded.
func (s *Store) HasData() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data != nil
}

// Snapshot returns a deep copy of the working table for analysis or
// transformation. Returns ErrNoData when nothing is loaded.
func (s *Store) Snapshot() (*dataset.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil, dataset.ErrNoData
	}
	return s.data.Clone(), nil
}

// OriginalSnapshot returns a deep copy of the table captured at load
// time.
func (s *Store) OriginalSnapshot() (*dataset.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.original == nil {
		return nil, dataset.ErrNoData
	}
	return s.original.Clone(), nil
}

// Metadata returns the metadata derived from the last mutation.
func (s *Store) Metadata() Metadata {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.meta
}

// Reset restores the working table from the pristine original. No-op
// when nothing was ever loaded.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.original == nil {
		return
	}
	s.data = s.original.Clone()
	s.meta = computeMetadata(s.data)
	s.appendLog("Reset data to original state")
}
