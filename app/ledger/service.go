package ledger

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/darlculus/franciscancatholicschool-sub001/app/models"
	"github.com/darlculus/franciscancatholicschool-sub001/app/receipt"
	"github.com/darlculus/franciscancatholicschool-sub001/app/storage"
)

const dateLayout = "2006-01-02"

// Service is the single writer of the payment ledger. Every dashboard and
// receipt flow goes through it; nothing reads or writes the store directly.
type Service struct {
	store    storage.PaymentStore
	validate *validator.Validate
	now      func() time.Time
}

func NewService(store storage.PaymentStore) *Service {
	return &Service{
		store:    store,
		validate: validator.New(),
		now:      time.Now,
	}
}

// ListPayments returns every recorded payment, newest first. A storage
// failure surfaces as a StorageError, never as a silent empty list.
func (s *Service) ListPayments() ([]*models.PaymentRecord, error) {
	records, err := s.store.List()
	if err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}
	return records, nil
}

// AddPayment validates the submission, applies defaults and appends a new
// record to the ledger. The input is never partially persisted: validation
// happens before the store is touched, and a failed write leaves the ledger
// unchanged.
func (s *Service) AddPayment(input models.PaymentInput) (*models.PaymentRecord, error) {
	input.StudentName = strings.TrimSpace(input.StudentName)
	input.StudentClass = strings.TrimSpace(input.StudentClass)
	input.Purpose = strings.TrimSpace(input.Purpose)
	input.Notes = strings.TrimSpace(input.Notes)

	if err := s.validate.Struct(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return nil, validationMessage(fieldErrs[0])
		}
		return nil, &ValidationError{Message: "invalid payment details"}
	}
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, &ValidationError{Field: "amount", Message: "Amount must be greater than zero"}
	}

	paymentDate := input.PaymentDate
	if paymentDate == "" {
		paymentDate = s.now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, paymentDate); err != nil {
		return nil, &ValidationError{Field: "payment_date", Message: "Payment date must be in YYYY-MM-DD format"}
	}

	// Unrecognized or absent mode is recorded as a cash entry.
	mode := input.PaymentMode
	if !models.ValidPaymentMode(mode) {
		mode = models.ModeCash
	}

	receiptID := input.ReceiptID
	if receiptID == "" {
		receiptID = receipt.GenerateReceiptID()
	}

	record := &models.PaymentRecord{
		ID:           uuid.NewString(),
		ReceiptID:    receiptID,
		StudentName:  input.StudentName,
		StudentClass: input.StudentClass,
		Amount:       input.Amount,
		Purpose:      input.Purpose,
		PaymentMode:  mode,
		PaymentDate:  paymentDate,
		Term:         strings.TrimSpace(input.Term),
		Session:      strings.TrimSpace(input.Session),
		Notes:        input.Notes,
		Status:       models.PaymentPaid,
		CreatedAt:    s.now(),
	}

	if err := s.store.Add(record); err != nil {
		if errors.Is(err, storage.ErrDuplicateReceipt) {
			return nil, &DuplicateReceiptError{ReceiptID: record.ReceiptID}
		}
		return nil, &StorageError{Op: "add", Err: err}
	}
	return record, nil
}

// ClearPayments irreversibly empties the ledger. Confirmation is the
// caller's concern; the operation itself is all-or-nothing.
func (s *Service) ClearPayments() error {
	if err := s.store.Clear(); err != nil {
		return &StorageError{Op: "clear", Err: err}
	}
	return nil
}

// DashboardStats derives the bursar dashboard figures for the given date.
// Pure read; the ledger is never mutated.
func (s *Service) DashboardStats(asOf time.Time) (*models.DashboardStats, error) {
	records, err := s.store.List()
	if err != nil {
		return nil, &StorageError{Op: "stats", Err: err}
	}

	day := asOf.Format(dateLayout)
	stats := &models.DashboardStats{TodayTotal: decimal.Zero}
	for _, rec := range records {
		stats.TotalPayments++
		if rec.PaymentDate == day {
			stats.TodayCount++
			stats.TodayTotal = stats.TodayTotal.Add(rec.Amount)
		}
		if rec.Status == models.PaymentPending {
			stats.PendingCount++
		}
	}
	return stats, nil
}

func validationMessage(fe validator.FieldError) *ValidationError {
	switch fe.Field() {
	case "StudentName":
		return &ValidationError{Field: "student_name", Message: "Student name is required"}
	case "Amount":
		return &ValidationError{Field: "amount", Message: "Amount must be greater than zero"}
	case "Purpose":
		return &ValidationError{Field: "purpose", Message: "Payment purpose is required"}
	}
	return &ValidationError{Field: fe.Field(), Message: "Invalid value for " + fe.Field()}
}
