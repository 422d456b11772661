package receipt

import (
	"strings"
	"sync"

	"github.com/darlculus/franciscancatholicschool-sub001/app/models"
)

// Session tracks one in-progress receipt form. It mints a receipt identity
// the first time the form becomes complete and keeps returning that same
// identity while the form stays complete. Clearing any required field
// discards the identity, so an abandoned attempt can never reuse a stale
// receipt number.
//
// A session is private to one form; the only state shared across sessions
// is the ledger itself.
type Session struct {
	mu       sync.Mutex
	identity *models.ReceiptIdentity
}

func NewSession() *Session {
	return &Session{}
}

// EnsureIdentity advances the session for the given form values and returns
// the current identity, or nil while the form is incomplete.
func (s *Session) EnsureIdentity(form models.ReceiptForm) *models.ReceiptIdentity {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !FormComplete(form) {
		s.identity = nil
		return nil
	}
	if s.identity == nil {
		identity := NewIdentity()
		s.identity = &identity
	}
	identity := *s.identity
	return &identity
}

// Identity returns the minted identity without advancing the session, or
// nil if none has been minted.
func (s *Session) Identity() *models.ReceiptIdentity {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == nil {
		return nil
	}
	identity := *s.identity
	return &identity
}

// Reset discards the minted identity. The next complete form mints a fresh
// one.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
}

// FormComplete reports whether the three required fields of the receipt
// form are present.
func FormComplete(form models.ReceiptForm) bool {
	return strings.TrimSpace(form.StudentName) != "" &&
		strings.TrimSpace(form.Amount) != "" &&
		strings.TrimSpace(form.Purpose) != ""
}
