package storage

import (
	"errors"

	"github.com/darlculus/franciscancatholicschool-sub001/app/models"
)

// ErrDuplicateReceipt is returned by Add when a record with the same
// receipt number already exists in the ledger.
var ErrDuplicateReceipt = errors.New("receipt number already exists")

// PaymentStore is the ledger's backing store. The ledger service is the
// single writer; all implementations must guarantee that a successful Add
// is visible to the very next List, and that Add and Clear are serialized
// so concurrent submissions cannot lose records.
type PaymentStore interface {
	// List returns every record, newest first.
	List() ([]*models.PaymentRecord, error)
	// Add appends one record. Returns ErrDuplicateReceipt when the
	// record's receipt number is already present.
	Add(record *models.PaymentRecord) error
	// Clear removes all records atomically.
	Clear() error
}
