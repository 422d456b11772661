package receipt

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/darlculus/franciscancatholicschool-sub001/app/models"
)

// GenerateReceiptID returns a human-readable receipt number of the form
// FCS-<last 6 digits of the current epoch millis>-<3-digit number>.
// Collisions are possible in principle; the ledger's unique constraint is
// the backstop, surfaced to the caller as a duplicate-receipt error.
func GenerateReceiptID() string {
	suffix := time.Now().UnixMilli() % 1_000_000
	return fmt.Sprintf("FCS-%06d-%d", suffix, rand.Intn(900)+100)
}

// NewIdentity mints a fresh receipt identity stamped with the current time.
func NewIdentity() models.ReceiptIdentity {
	return models.ReceiptIdentity{
		ID:       GenerateReceiptID(),
		IssuedAt: time.Now(),
	}
}
