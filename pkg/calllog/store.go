package calllog

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Logger is the minimal interface the mock handler logs calls to.
type Logger interface {
	Log(entry *Entry)
}

// Filter restricts List results. Zero fields match everything.
type Filter struct {
	Operation string
	FaultOnly bool
	Limit     int
}

// MemoryStore keeps the most recent entries in memory. It is safe for
// concurrent use.
type MemoryStore struct {
	mu         sync.RWMutex
	entries    []*Entry
	maxEntries int
}

// DefaultMaxEntries is used when NewMemoryStore is given a non-positive size.
const DefaultMaxEntries = 1000

// NewMemoryStore returns a store holding at most maxEntries entries; older
// entries are evicted first.
func NewMemoryStore(maxEntries int) *MemoryStore {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &MemoryStore{maxEntries: maxEntries}
}

// Log stores entry, assigning an ID and timestamp when missing.
func (s *MemoryStore) Log(entry *Entry) {
	if entry == nil {
		return
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	if over := len(s.entries) - s.maxEntries; over > 0 {
		s.entries = append(s.entries[:0:0], s.entries[over:]...)
	}
}

// Get returns the entry with the given ID, or nil.
func (s *MemoryStore) Get(id string) *Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// List returns matching entries, oldest first.
func (s *MemoryStore) List(filter *Filter) []*Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if filter != nil {
			if filter.Operation != "" && e.Operation != filter.Operation {
				continue
			}
			if filter.FaultOnly && !e.Fault {
				continue
			}
		}
		out = append(out, e)
		if filter != nil && filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out
}

// Count returns the number of stored entries.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Clear removes all entries.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}
