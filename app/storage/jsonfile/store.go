package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/darlculus/franciscancatholicschool-sub001/app/models"
	"github.com/darlculus/franciscancatholicschool-sub001/app/storage"
)

// Store persists the ledger as a single JSON array document. Every mutation
// performs a full read-modify-write under the store lock and replaces the
// file atomically (write to a temp file, then rename), so readers never
// observe a partially written document and concurrent submissions cannot
// overwrite each other's appended record.
type Store struct {
	mu   sync.Mutex
	path string
}

var _ storage.PaymentStore = (*Store)(nil)

// New creates a store backed by the JSON document at path. The parent
// directory is created if missing; the file itself is created on first write.
func New(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create ledger directory: %w", err)
	}
	return &Store{path: path}, nil
}

func (s *Store) List() ([]*models.PaymentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}

	// File order is oldest first; callers get newest first.
	out := make([]*models.PaymentRecord, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		out = append(out, records[i])
	}
	return out, nil
}

func (s *Store) Add(record *models.PaymentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}

	for _, existing := range records {
		if existing.ReceiptID == record.ReceiptID {
			return storage.ErrDuplicateReceipt
		}
	}

	rec := *record
	return s.save(append(records, &rec))
}

func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save([]*models.PaymentRecord{})
}

// load reads the whole document. A missing file is an empty ledger.
func (s *Store) load() ([]*models.PaymentRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read ledger file: %w", err)
	}

	var records []*models.PaymentRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("ledger file is corrupt: %w", err)
	}
	return records, nil
}

// save rewrites the whole document atomically. A failed write leaves the
// previous document untouched.
func (s *Store) save(records []*models.PaymentRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".payments-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp ledger file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write ledger file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close ledger file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace ledger file: %w", err)
	}
	return nil
}
