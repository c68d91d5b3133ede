package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bilancio/internal/core"
)

// MemoryStore keeps datasets in process memory. Default backend for local
// runs and tests; nothing survives a restart.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	sets   map[int64]Dataset
	txs    map[int64][]core.Transaction
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID: 1,
		sets:   make(map[int64]Dataset),
		txs:    make(map[int64][]core.Transaction),
	}
}

func (s *MemoryStore) CreateDataset(_ context.Context, name, currency string, txs []core.Transaction) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.sets[id] = Dataset{
		ID:           id,
		Name:         name,
		Currency:     currency,
		RowCount:     len(txs),
		ReportStatus: StatusPending,
		CreatedAt:    time.Now(),
	}
	s.txs[id] = append([]core.Transaction(nil), txs...)
	return id, nil
}

func (s *MemoryStore) GetDataset(_ context.Context, id int64) (Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.sets[id]
	if !ok {
		return Dataset{}, fmt.Errorf("get dataset %d: %w", id, ErrNotFound)
	}
	return d, nil
}

func (s *MemoryStore) ListTransactions(_ context.Context, id int64) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, ok := s.txs[id]
	if !ok {
		return nil, fmt.Errorf("list transactions for dataset %d: %w", id, ErrNotFound)
	}
	return append([]core.Transaction(nil), txs...), nil
}
