package receipt

import (
	"fmt"
	"strings"

	"github.com/darlculus/franciscancatholicschool-sub001/app/models"
)

// BuildEmailDraft pre-fills a receipt email for the given recipient. The
// body carries the same facts as the preview and the PDF.
func (r *Renderer) BuildEmailDraft(rr *models.RenderedReceipt, to string) *models.EmailDraft {
	var b strings.Builder

	fmt.Fprintf(&b, "Dear Parent/Guardian,\n\n")
	fmt.Fprintf(&b, "Please find below your payment receipt from %s.\n\n", rr.SchoolName)
	fmt.Fprintf(&b, "Receipt No: %s\n", rr.ReceiptID)
	fmt.Fprintf(&b, "Issued: %s\n", rr.IssuedAt)
	fmt.Fprintf(&b, "Student Name: %s\n", rr.StudentName)
	if rr.StudentClass != "" {
		fmt.Fprintf(&b, "Class: %s\n", rr.StudentClass)
	}
	fmt.Fprintf(&b, "Amount Paid: %s\n", rr.Amount)
	fmt.Fprintf(&b, "Payment For: %s\n", rr.Purpose)
	fmt.Fprintf(&b, "Payment Mode: %s\n", rr.PaymentMode)
	fmt.Fprintf(&b, "Payment Date: %s\n", rr.PaymentDate)
	if rr.TermSession != "" {
		fmt.Fprintf(&b, "Term / Session: %s\n", rr.TermSession)
	}
	if rr.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", rr.Notes)
	}
	fmt.Fprintf(&b, "\nThank you for your payment.\n\n")
	fmt.Fprintf(&b, "Bursary Department\n%s\n%s | %s\n", rr.SchoolName, rr.SchoolPhone, rr.SchoolEmail)

	return &models.EmailDraft{
		To:      strings.TrimSpace(to),
		Subject: fmt.Sprintf("%s - Payment Receipt %s", rr.SchoolName, rr.ReceiptID),
		Body:    b.String(),
	}
}
