package ledger

import "fmt"

// ValidationError reports a missing or invalid field on a payment
// submission. It is recovered locally with a user-facing message; the
// submitted form values stay with the caller so nothing has to be retyped.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// DuplicateReceiptError reports a receipt-number collision on insert. The
// caller should mint a fresh identity and resubmit.
type DuplicateReceiptError struct {
	ReceiptID string
}

func (e *DuplicateReceiptError) Error() string {
	return fmt.Sprintf("receipt number %s has already been used", e.ReceiptID)
}

// StorageError reports an I/O failure against the backing store. The
// operation left the ledger in its prior state; retrying is the caller's
// decision.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("ledger storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
