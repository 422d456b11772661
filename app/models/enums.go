package models

// PaymentMode defines how a fee payment was made.
type PaymentMode string

const (
	ModeCash     PaymentMode = "cash"
	ModeTransfer PaymentMode = "transfer"
	ModePOS      PaymentMode = "pos"
	ModeOnline   PaymentMode = "online"
)

// ValidPaymentMode reports whether mode is one of the accepted payment modes.
func ValidPaymentMode(mode PaymentMode) bool {
	switch mode {
	case ModeCash, ModeTransfer, ModePOS, ModeOnline:
		return true
	}
	return false
}

// PaymentStatus defines the status of a payment
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
)
