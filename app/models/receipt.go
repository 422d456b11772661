package models

import "time"

// ReceiptIdentity is the (receipt number, issue time) pair that uniquely
// names a receipt. It is minted once per completed form attempt and becomes
// part of a PaymentRecord only when the form is submitted.
type ReceiptIdentity struct {
	ID       string    `json:"receipt_id"`
	IssuedAt time.Time `json:"issued_at"`
}

// ReceiptForm carries the raw, possibly incomplete values of an in-progress
// receipt form. Unlike PaymentInput it has no required fields; completeness
// is what moves the receipt session between its states.
type ReceiptForm struct {
	StudentName  string `json:"student_name"`
	StudentClass string `json:"student_class"`
	Amount       string `json:"amount"`
	Purpose      string `json:"purpose"`
	PaymentMode  string `json:"payment_mode"`
	PaymentDate  string `json:"payment_date"` // YYYY-MM-DD
	Term         string `json:"term"`
	Session      string `json:"session"`
	Notes        string `json:"notes"`
}

// RenderedReceipt is the fully formatted projection of a receipt. The
// preview, the PDF and the email draft are all built from the same instance
// so the three outputs can never drift apart.
type RenderedReceipt struct {
	ReceiptID    string `json:"receipt_id"`
	IssuedAt     string `json:"issued_at"`
	StudentName  string `json:"student_name"`
	StudentClass string `json:"student_class,omitempty"`
	Amount       string `json:"amount"`
	Purpose      string `json:"purpose"`
	PaymentMode  string `json:"payment_mode"`
	PaymentDate  string `json:"payment_date"`
	TermSession  string `json:"term_session,omitempty"`
	Notes        string `json:"notes,omitempty"`

	SchoolName    string `json:"school_name"`
	SchoolAddress string `json:"school_address"`
	SchoolPhone   string `json:"school_phone"`
	SchoolEmail   string `json:"school_email"`
}

// EmailDraft is a pre-filled receipt email ready for review or dispatch.
type EmailDraft struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
