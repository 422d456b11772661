package inmem

import (
	"sync"

	"github.com/darlculus/franciscancatholicschool-sub001/app/models"
	"github.com/darlculus/franciscancatholicschool-sub001/app/storage"
)

// Store keeps the ledger in memory. Used in tests and as a throwaway
// backend for local development.
type Store struct {
	mu      sync.RWMutex
	records []*models.PaymentRecord // oldest first
}

var _ storage.PaymentStore = (*Store)(nil)

func New() *Store {
	return &Store{}
}

func (s *Store) List() ([]*models.PaymentRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.PaymentRecord, 0, len(s.records))
	for i := len(s.records) - 1; i >= 0; i-- {
		rec := *s.records[i]
		out = append(out, &rec)
	}
	return out, nil
}

func (s *Store) Add(record *models.PaymentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.records {
		if existing.ReceiptID == record.ReceiptID {
			return storage.ErrDuplicateReceipt
		}
	}

	rec := *record
	s.records = append(s.records, &rec)
	return nil
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	return nil
}
