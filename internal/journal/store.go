package journal

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultCap bounds the journal length. On overflow the oldest records
// are discarded to make room for new ones.
const DefaultCap = 100

// Backend persists the serialized journal blob. Load returns nil bytes
// when the slot has never been written. Save overwrites the whole blob.
type Backend interface {
	Load() ([]byte, error)
	Save(raw []byte) error
}

// Store is the sole durable owner of meal records. Every mutation
// rewrites the full blob, so readers never observe a partial write.
type Store struct {
	mu      sync.Mutex
	backend Backend
	cap     int
	records []MealRecord
	loaded  bool
	log     *zap.SugaredLogger
}

// NewStore creates a store over the given backend. The journal is read
// lazily on first access.
func NewStore(backend Backend, log *zap.SugaredLogger) *Store {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Store{backend: backend, cap: DefaultCap, log: log}
}

// SetCap overrides the record cap. Values below 1 are ignored.
func (s *Store) SetCap(n int) {
	if n < 1 {
		return
	}
	s.mu.Lock()
	s.cap = n
	s.mu.Unlock()
}

// AssignID returns a fresh record identifier, unique against every
// identifier previously assigned.
func (s *Store) AssignID() string {
	return uuid.NewString()
}

// LoadAll returns the journal newest-first. The journal is cached state,
// not a source of truth: an absent slot or a malformed blob degrades to
// an empty journal rather than an error.
func (s *Store) LoadAll() []MealRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()

	out := make([]MealRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Append assigns an identifier and creation timestamp, inserts the record
// at the head, enforces the cap, and persists the full journal. On a
// persistence failure the in-memory journal is left unchanged and the
// error is returned.
func (s *Store) Append(rec MealRecord) (MealRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()

	rec.ID = s.AssignID()
	rec.CreatedAt = time.Now()

	next := make([]MealRecord, 0, len(s.records)+1)
	next = append(next, rec)
	next = append(next, s.records...)
	if len(next) > s.cap {
		next = next[:s.cap]
	}

	if err := s.persist(next); err != nil {
		s.log.Errorw("append failed", "id", rec.ID, "error", err)
		return MealRecord{}, err
	}
	s.records = next
	return rec, nil
}

// Remove deletes the record with the given identifier. It reports false
// when no such record exists, which makes a repeated call a safe no-op.
func (s *Store) Remove(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded()

	idx := -1
	for i, r := range s.records {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}

	next := make([]MealRecord, 0, len(s.records)-1)
	next = append(next, s.records[:idx]...)
	next = append(next, s.records[idx+1:]...)

	if err := s.persist(next); err != nil {
		s.log.Errorw("remove failed", "id", id, "error", err)
		return false, err
	}
	s.records = next
	return true, nil
}

// ensureLoaded reads the persisted blob once. Callers must hold mu.
func (s *Store) ensureLoaded() {
	if s.loaded {
		return
	}
	s.loaded = true

	raw, err := s.backend.Load()
	if err != nil {
		s.log.Warnw("journal unreadable, starting empty", "error", err)
		return
	}
	if len(raw) == 0 {
		return
	}
	var recs []MealRecord
	if err := json.Unmarshal(raw, &recs); err != nil {
		s.log.Warnw("journal malformed, starting empty", "error", err)
		return
	}
	s.records = recs
}

func (s *Store) persist(recs []MealRecord) error {
	raw, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("encode journal: %w", err)
	}
	if err := s.backend.Save(raw); err != nil {
		return fmt.Errorf("save journal: %w", err)
	}
	return nil
}
