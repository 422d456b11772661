package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRecord represents one fee payment recorded by the bursar.
// Records are append-only: once persisted they are never mutated, and the
// only destructive operation is a full ledger clear.
type PaymentRecord struct {
	ID           string          `json:"id"`
	ReceiptID    string          `json:"receipt_id"`
	StudentName  string          `json:"student_name"`
	StudentClass string          `json:"student_class,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Purpose      string          `json:"purpose"`
	PaymentMode  PaymentMode     `json:"payment_mode"`
	PaymentDate  string          `json:"payment_date"` // YYYY-MM-DD
	Term         string          `json:"term,omitempty"`
	Session      string          `json:"session,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	Status       PaymentStatus   `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

// PaymentInput is the typed form a payment submission must take before it
// reaches the ledger. Field access by id in the dashboard is a frontend
// concern; the backend only ever sees this shape.
type PaymentInput struct {
	StudentName  string          `json:"student_name" validate:"required"`
	StudentClass string          `json:"student_class"`
	Amount       decimal.Decimal `json:"amount" validate:"required"`
	Purpose      string          `json:"purpose" validate:"required"`
	PaymentMode  PaymentMode     `json:"payment_mode"`
	PaymentDate  string          `json:"payment_date"`
	Term         string          `json:"term"`
	Session      string          `json:"session"`
	Notes        string          `json:"notes"`

	// ReceiptID carries the identity minted by an active receipt session.
	// Left empty, the ledger generates one at insert time.
	ReceiptID string `json:"receipt_id"`
}

// DashboardStats holds the aggregate figures shown on the bursar dashboard.
type DashboardStats struct {
	TodayTotal    decimal.Decimal `json:"today_total"`
	TodayCount    int             `json:"today_count"`
	TotalPayments int             `json:"total_payments"`
	PendingCount  int             `json:"pending_count"`
}
