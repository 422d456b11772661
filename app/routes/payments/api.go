package payments

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/darlculus/franciscancatholicschool-sub001/app/ledger"
	"github.com/darlculus/franciscancatholicschool-sub001/app/models"
	"github.com/darlculus/franciscancatholicschool-sub001/app/receipt"
)

// GetPaymentsAPI returns the full ledger, newest first.
func GetPaymentsAPI(c *fiber.Ctx, svc *ledger.Service) error {
	records, err := svc.ListPayments()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payments")
	}
	if records == nil {
		records = []*models.PaymentRecord{}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    records,
	})
}

// CreatePaymentAPI records a new payment. When the submission carries a
// receipt-session token, the identity minted for that form is persisted and
// the session is ended.
func CreatePaymentAPI(c *fiber.Ctx, svc *ledger.Service, registry *receipt.Registry) error {
	type createRequest struct {
		models.PaymentInput
		SessionID string `json:"session_id"`
	}

	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.SessionID != "" && req.ReceiptID == "" {
		if identity := registry.Acquire(req.SessionID).Identity(); identity != nil {
			req.ReceiptID = identity.ID
		}
	}

	record, err := svc.AddPayment(req.PaymentInput)
	if err != nil {
		return mapLedgerError(err)
	}

	if req.SessionID != "" {
		registry.Remove(req.SessionID)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    record,
		"message": "Payment recorded successfully",
	})
}

// ClearPaymentsAPI irreversibly empties the ledger. Used to reset demo and
// test data; the dashboard asks for confirmation before calling this.
func ClearPaymentsAPI(c *fiber.Ctx, svc *ledger.Service) error {
	if err := svc.ClearPayments(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to clear payments")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "All payments cleared",
	})
}

// mapLedgerError translates ledger error kinds to HTTP statuses. Duplicate
// receipt numbers are a validation-class failure: the client regenerates
// the identity and resubmits.
func mapLedgerError(err error) error {
	var vErr *ledger.ValidationError
	if errors.As(err, &vErr) {
		return fiber.NewError(fiber.StatusBadRequest, vErr.Message)
	}
	var dErr *ledger.DuplicateReceiptError
	if errors.As(err, &dErr) {
		return fiber.NewError(fiber.StatusBadRequest, dErr.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, "Failed to record payment")
}
