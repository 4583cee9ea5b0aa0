package store

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gymplan/subplan-api/internal/models"
	"github.com/gymplan/subplan-api/pkg/storage"
)

// Persister loads and saves the raw JSON document the planner state lives in.
type Persister interface {
	Load() ([]byte, error)
	Save([]byte) error
}

// SaveObserver receives persistence timings; satisfied by MetricsService.
type SaveObserver interface {
	ObserveDocumentSave(duration time.Duration, failed bool)
}

// WriteResult reports the outcome of a snapshot replacement. A failed save
// never rolls back the in-memory update; the warning travels to the caller
// so it can be surfaced instead of silently swallowed.
type WriteResult struct {
	Persisted bool
	Warning   string
}

// Meta converts the result into response metadata, nil when clean.
func (r WriteResult) Meta() map[string]interface{} {
	if r.Persisted {
		return nil
	}
	return map[string]interface{}{"persistence_warning": r.Warning}
}

// Store is the single state container: one in-memory AppData snapshot and
// one write path. Every mutation builds a full replacement snapshot and
// hands it to Replace; readers always observe a complete document.
type Store struct {
	mu        sync.RWMutex
	data      *models.AppData
	persister Persister
	observer  SaveObserver
	logger    *zap.Logger
}

// New builds a store. Either persister or logger may be nil (tests).
func New(persister Persister, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{data: Seed(), persister: persister, logger: logger}
}

// SetObserver attaches a metrics observer for document saves.
func (s *Store) SetObserver(o SaveObserver) {
	s.observer = o
}

// Load reads the persisted document into memory. A missing file or a
// document that fails to decode falls back to the seeded defaults; the
// session continues either way.
func (s *Store) Load() error {
	if s.persister == nil {
		return nil
	}
	raw, err := s.persister.Load()
	if err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			s.logger.Info("no stored document, starting from seed data")
			return nil
		}
		s.logger.Warn("failed to load document, starting from seed data", zap.Error(err))
		return nil
	}
	var data models.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		s.logger.Warn("stored document is corrupt, starting from seed data", zap.Error(err))
		return nil
	}
	s.mu.Lock()
	s.data = &data
	s.mu.Unlock()
	return nil
}

// Snapshot returns the current aggregate. Callers must treat it as
// read-only and build changes on a Clone.
func (s *Store) Snapshot() *models.AppData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Replace swaps in the next snapshot and persists it best-effort. The
// in-memory copy is always updated first so it stays the source of truth
// for the rest of the session even when the save fails.
func (s *Store) Replace(next *models.AppData) WriteResult {
	s.mu.Lock()
	s.data = next
	s.mu.Unlock()

	if s.persister == nil {
		return WriteResult{Persisted: true}
	}

	start := time.Now()
	raw, err := json.Marshal(next)
	if err == nil {
		err = s.persister.Save(raw)
	}
	if s.observer != nil {
		s.observer.ObserveDocumentSave(time.Since(start), err != nil)
	}
	if err != nil {
		s.logger.Warn("failed to persist document, in-memory state kept", zap.Error(err))
		return WriteResult{Persisted: false, Warning: "changes kept in memory but could not be saved: " + err.Error()}
	}
	return WriteResult{Persisted: true}
}

// NewID returns a fresh opaque identifier.
func (s *Store) NewID() string {
	return uuid.NewString()
}
