package receipts

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/darlculus/franciscancatholicschool-sub001/app/models"
	"github.com/darlculus/franciscancatholicschool-sub001/app/receipt"
	"github.com/darlculus/franciscancatholicschool-sub001/app/services"
)

const incompleteFormMessage = "Student name, amount and purpose are required"

type receiptRequest struct {
	models.ReceiptForm
	SessionID string `json:"session_id"`
	To        string `json:"to"`   // email endpoint only
	Send      bool   `json:"send"` // email endpoint only
}

// PreviewReceiptAPI builds the live receipt preview for an in-progress
// form. While the required fields are incomplete it returns an empty
// placeholder; the first complete build mints the session's receipt
// identity and later builds reuse it.
func PreviewReceiptAPI(c *fiber.Ctx, registry *receipt.Registry, renderer *receipt.Renderer) error {
	var req receiptRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	session := registry.Acquire(req.SessionID)
	identity := session.EnsureIdentity(req.ReceiptForm)
	if identity == nil {
		return c.JSON(fiber.Map{
			"success":    true,
			"session_id": req.SessionID,
			"complete":   false,
			"data":       nil,
			"message":    incompleteFormMessage,
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"session_id": req.SessionID,
		"complete":   true,
		"data":       renderer.BuildPreview(req.ReceiptForm, *identity),
	})
}

// DownloadReceiptPDFAPI renders the receipt as a paged PDF document. A
// form missing any required field is rejected; no partial or blank
// document is ever produced.
func DownloadReceiptPDFAPI(c *fiber.Ctx, registry *receipt.Registry, renderer *receipt.Renderer) error {
	var req receiptRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.SessionID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "session_id is required")
	}

	session := registry.Acquire(req.SessionID)
	identity := session.EnsureIdentity(req.ReceiptForm)
	if identity == nil {
		return fiber.NewError(fiber.StatusBadRequest, incompleteFormMessage)
	}

	rendered := renderer.BuildPreview(req.ReceiptForm, *identity)
	pdfBytes, err := renderer.RenderPDF(rendered)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate receipt PDF")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="receipt-%s.pdf"`, rendered.ReceiptID))
	return c.Send(pdfBytes)
}

// EmailReceiptAPI builds the pre-filled receipt email draft and optionally
// dispatches it through the configured mailer.
func EmailReceiptAPI(c *fiber.Ctx, registry *receipt.Registry, renderer *receipt.Renderer, mailer services.Mailer) error {
	var req receiptRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if req.SessionID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "session_id is required")
	}

	session := registry.Acquire(req.SessionID)
	identity := session.EnsureIdentity(req.ReceiptForm)
	if identity == nil {
		return fiber.NewError(fiber.StatusBadRequest, incompleteFormMessage)
	}

	rendered := renderer.BuildPreview(req.ReceiptForm, *identity)
	draft := renderer.BuildEmailDraft(rendered, req.To)

	if req.Send {
		if err := mailer.Send(draft); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to send receipt email")
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"sent":    req.Send,
		"data":    draft,
	})
}

// ResetReceiptSessionAPI ends an in-progress receipt session, discarding
// its minted identity.
func ResetReceiptSessionAPI(c *fiber.Ctx, registry *receipt.Registry) error {
	registry.Remove(c.Params("id"))

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Receipt session reset",
	})
}
