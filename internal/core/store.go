package core

// store.go holds the ordered record collection and mirrors every mutation
// to a persistent key-value slot.
//
// Persistence is write-through: each mutating operation serializes the full
// collection and overwrites the slot before the in-memory state is swapped
// in. If the write fails the in-memory collection is left untouched, so the
// persisted snapshot always equals the store after a successful mutation.

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Slot is the single persisted location holding the serialized collection.
// Load reports ok=false when no snapshot has been written yet.
type Slot interface {
	Load() (data []byte, ok bool, err error)
	Save(data []byte) error
}

// Store is the in-memory ordered collection of records, the single source
// of truth consumed by every presentation surface.
//
// The original interaction model is single-threaded, but HTTP handlers run
// concurrently, so access is guarded by a mutex. Each mutation still runs
// to completion, snapshot write included, before the next one is admitted.
type Store struct {
	mu      sync.RWMutex
	slot    Slot
	records []Record
}

// NewStore creates a store backed by the given slot. Call LoadInitial
// before first use to hydrate it from the persisted snapshot.
func NewStore(slot Slot) *Store {
	return &Store{slot: slot}
}

// LoadInitial reads the persisted snapshot into the store. Missing or
// unparseable data initializes an empty collection; it never fails upward.
func (s *Store) LoadInitial() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil

	data, ok, err := s.slot.Load()
	if err != nil {
		slog.Warn("record snapshot unreadable, starting empty", "error", err)
		return
	}
	if !ok {
		return
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		slog.Warn("record snapshot corrupt, starting empty", "error", err)
		return
	}
	s.records = records
}

// Create validates nothing itself (validation is the caller's
// responsibility), assigns a fresh unique id, appends the record to the end
// of the collection, and persists. Returns the stored record.
func (s *Store) Create(rec Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec.ID = uuid.New().String()

	next := make([]Record, len(s.records), len(s.records)+1)
	copy(next, s.records)
	next = append(next, rec)

	if err := s.persist(next); err != nil {
		return Record{}, err
	}
	s.records = next
	return rec, nil
}

// Update replaces the record with the given id. The replacement's id is
// forced to the target id regardless of what the caller set. An unknown id
// is a silent no-op.
func (s *Store) Update(id string, replacement Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Record, len(s.records))
	copy(next, s.records)

	found := false
	for i := range next {
		if next[i].ID == id {
			replacement.ID = id
			next[i] = replacement
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	if err := s.persist(next); err != nil {
		return err
	}
	s.records = next
	return nil
}

// Delete removes the record with the given id. An unknown id is a silent
// no-op.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]Record, 0, len(s.records))
	for _, rec := range s.records {
		if rec.ID != id {
			next = append(next, rec)
		}
	}
	if len(next) == len(s.records) {
		return nil
	}

	if err := s.persist(next); err != nil {
		return err
	}
	s.records = next
	return nil
}

// Get returns the record with the given id.
func (s *Store) Get(id string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.records {
		if rec.ID == id {
			return rec, true
		}
	}
	return Record{}, false
}

// All returns a copy of the full collection in insertion order.
func (s *Store) All() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// persist overwrites the slot with the full collection. Callers hold the
// write lock.
func (s *Store) persist(records []Record) error {
	if records == nil {
		records = []Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	if err := s.slot.Save(data); err != nil {
		return fmt.Errorf("persist records: %w", err)
	}
	return nil
}
