package store

import "sync"

// MemoryStore holds records in process memory. It grows for the lifetime of
// the process; nothing depends on old jobs being evicted, so a bounded store
// can replace it behind the same interface.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
	order   []string
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

// Put inserts a record. Re-inserting an existing job id overwrites the
// record without duplicating its position.
func (s *MemoryStore) Put(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[rec.JobID]; !exists {
		s.order = append(s.order, rec.JobID)
	}
	s.records[rec.JobID] = rec
}

// Get returns the record for jobID, reporting whether it exists.
func (s *MemoryStore) Get(jobID string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[jobID]
	return rec, ok
}

// List returns all records in insertion order.
func (s *MemoryStore) List() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out
}

var _ Store = (*MemoryStore)(nil)
