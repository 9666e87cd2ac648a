package paystore

import (
	"context"
	"sync"
)

// MemoryStore is the single-node backing: a process-wide map behind a
// mutex. Tests use it too.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]PaymentRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]PaymentRecord)}
}

func (s *MemoryStore) Put(_ context.Context, record PaymentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.Id] = record
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (PaymentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	if !ok {
		return PaymentRecord{}, ErrNotFound
	}
	return record, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}
