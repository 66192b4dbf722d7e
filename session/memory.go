package session

import (
	"context"
	"sync"
)

// MemoryStore is the in-process [RecordStore]: a mutex-guarded map shared by
// all request goroutines for the life of the process. It is an explicit,
// injectable object, never a package-level singleton.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]Record
}

// NewMemoryStore creates an empty in-memory record store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]Record),
	}
}

// Save records rec, replacing any record under the same session ID.
func (m *MemoryStore) Save(ctx context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[rec.SessionID] = rec
	return nil
}

// Find returns the record under sessionID, if any.
func (m *MemoryStore) Find(ctx context.Context, sessionID string) (Record, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[sessionID]
	return rec, ok, nil
}

// Remove deletes the record under sessionID and reports whether it existed.
func (m *MemoryStore) Remove(ctx context.Context, sessionID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.records[sessionID]
	delete(m.records, sessionID)
	return ok, nil
}

// Len reports the number of records currently held. Test helper.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.records)
}
