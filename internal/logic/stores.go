package logic

import (
	"context"
	"strings"
	"sync"
)

// MemoryHistoryRepository is an in-memory implementation of HistoryRepository
type MemoryHistoryRepository struct {
	mu      sync.RWMutex
	nextID  int64
	entries map[string][]HistoryRecord // owner -> records, oldest first
}

// NewMemoryHistoryRepository creates a new memory-based history repository
func NewMemoryHistoryRepository() *MemoryHistoryRepository {
	return &MemoryHistoryRepository{
		entries: make(map[string][]HistoryRecord),
	}
}

func (r *MemoryHistoryRepository) Insert(_ context.Context, owner, encoded string) (int64, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := NormalizeQuery(encoded)
	for _, rec := range r.entries[owner] {
		if NormalizeQuery(rec.Encoded) == key {
			return rec.ID, false, nil
		}
	}

	r.nextID++
	r.entries[owner] = append(r.entries[owner], HistoryRecord{ID: r.nextID, Encoded: encoded})
	return r.nextID, true, nil
}

func (r *MemoryHistoryRepository) Search(_ context.Context, owner, prefix string, limit int) ([]HistoryRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := r.entries[owner]
	var result []HistoryRecord
	for i := len(records) - 1; i >= 0; i-- {
		if !strings.HasPrefix(NormalizeQuery(records[i].Encoded), prefix) {
			continue
		}
		result = append(result, records[i])
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

func (r *MemoryHistoryRepository) Delete(_ context.Context, owner string, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.entries[owner]
	for i, rec := range records {
		if rec.ID == id {
			r.entries[owner] = append(records[:i:i], records[i+1:]...)
			break
		}
	}
	return nil
}

func (r *MemoryHistoryRepository) DeleteAll(_ context.Context, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, owner)
	return nil
}

// MemoryCheckpointStore is an in-memory implementation of CheckpointStore
type MemoryCheckpointStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryCheckpointStore creates a new memory-based checkpoint store
func NewMemoryCheckpointStore() *MemoryCheckpointStore {
	return &MemoryCheckpointStore{
		data: make(map[string][]byte),
	}
}

func (s *MemoryCheckpointStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	// Return a copy to prevent external modification
	return append([]byte(nil), data...), true, nil
}

func (s *MemoryCheckpointStore) Save(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), data...)
	return nil
}
