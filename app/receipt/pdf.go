package receipt

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/darlculus/franciscancatholicschool-sub001/app/models"
)

// RenderPDF lays the receipt out as an A5 document and returns the PDF
// bytes. The facts come straight from the RenderedReceipt, so the document
// can never disagree with the on-screen preview.
func (r *Renderer) RenderPDF(rr *models.RenderedReceipt) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// School header
	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(0, 8, tr(rr.SchoolName), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8.5)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 4.5, tr(rr.SchoolAddress), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 4.5, tr(rr.SchoolPhone+"  |  "+rr.SchoolEmail), "", 1, "C", false, 0, "")
	pdf.Ln(3)
	pdf.SetDrawColor(120, 120, 120)
	pdf.Line(14, pdf.GetY(), 134, pdf.GetY())
	pdf.Ln(4)

	// Receipt title and identity
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "OFFICIAL E-RECEIPT", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, fmt.Sprintf("Receipt No: %s", rr.ReceiptID), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Issued: %s", rr.IssuedAt), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	rows := [][2]string{
		{"Student Name", rr.StudentName},
		{"Class", rr.StudentClass},
		{"Amount Paid", r.pdfAmount(rr.Amount)},
		{"Payment For", rr.Purpose},
		{"Payment Mode", rr.PaymentMode},
		{"Payment Date", rr.PaymentDate},
		{"Term / Session", rr.TermSession},
		{"Notes", rr.Notes},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 7, row[0], "B", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(80, 7, tr(row[1]), "B", "L", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 8.5)
	pdf.SetTextColor(90, 90, 90)
	pdf.MultiCell(0, 4.5, "Thank you for your payment. This receipt was generated electronically by the bursary of "+tr(rr.SchoolName)+" and is valid without a signature.", "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// pdfAmount swaps the currency symbol for its ISO code. The built-in PDF
// fonts have no naira glyph.
func (r *Renderer) pdfAmount(amount string) string {
	if r.CurrencySymbol == "" || r.CurrencyCode == "" {
		return amount
	}
	return strings.Replace(amount, r.CurrencySymbol, r.CurrencyCode+" ", 1)
}
