package receipt

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darlculus/franciscancatholicschool-sub001/app/models"
)

func testRenderer() *Renderer {
	return &Renderer{
		CurrencySymbol: "₦",
		CurrencyCode:   "NGN",
		SchoolName:     "Franciscan Catholic School",
		SchoolAddress:  "6 Friary Road, Enugu, Nigeria",
		SchoolPhone:    "+234 803 555 0146",
		SchoolEmail:    "bursary@franciscancatholicschool.edu.ng",
	}
}

func testIdentity() models.ReceiptIdentity {
	issued, _ := time.Parse("2006-01-02", "2025-01-05")
	return models.ReceiptIdentity{ID: "FCS-123456-789", IssuedAt: issued}
}

func TestFormatCurrency(t *testing.T) {
	r := testRenderer()

	cases := map[int64]string{
		0:       "₦0",
		950:     "₦950",
		1500:    "₦1,500",
		150000:  "₦150,000",
		2500000: "₦2,500,000",
	}
	for amount, want := range cases {
		assert.Equal(t, want, r.FormatCurrency(decimal.NewFromInt(amount)))
	}

	// Zero decimal places by default.
	assert.Equal(t, "₦150,000", r.FormatCurrency(decimal.NewFromFloat(150000.4)))
}

func TestFormatPaymentMode(t *testing.T) {
	assert.Equal(t, "Bank Transfer", FormatPaymentMode("transfer"))
	assert.Equal(t, "POS", FormatPaymentMode("pos"))
	assert.Equal(t, "Cash", FormatPaymentMode("cash"))
	assert.Equal(t, "Online Payment", FormatPaymentMode("online"))
	assert.Equal(t, "Pending selection", FormatPaymentMode(""))
	assert.Equal(t, "Pending selection", FormatPaymentMode("cheque"))
}

func TestFormatTermSession(t *testing.T) {
	assert.Equal(t, "Second Term, 2024/2025", FormatTermSession("second", "2024/2025"))
	assert.Equal(t, "First Term, 2024/2025", FormatTermSession("FIRST", "2024/2025"))

	// Rendered only when both parts are present.
	assert.Empty(t, FormatTermSession("second", ""))
	assert.Empty(t, FormatTermSession("", "2024/2025"))
}

func TestBuildPreview(t *testing.T) {
	r := testRenderer()

	form := models.ReceiptForm{
		StudentName:  "Amaka Obi",
		StudentClass: "JSS 2",
		Amount:       "150000",
		Purpose:      "Second Term Fees",
		PaymentMode:  "transfer",
		PaymentDate:  "2025-01-20",
		Term:         "second",
		Session:      "2024/2025",
	}

	rr := r.BuildPreview(form, testIdentity())

	assert.Equal(t, "FCS-123456-789", rr.ReceiptID)
	assert.Equal(t, "05 Jan 2025", rr.IssuedAt)
	assert.Equal(t, "Amaka Obi", rr.StudentName)
	assert.Equal(t, "₦150,000", rr.Amount)
	assert.Equal(t, "Bank Transfer", rr.PaymentMode)
	assert.Equal(t, "20 Jan 2025", rr.PaymentDate)
	assert.Equal(t, "Second Term, 2024/2025", rr.TermSession)
	assert.Equal(t, "Franciscan Catholic School", rr.SchoolName)
}

func TestBuildPreviewDateDefaultsToIssueDate(t *testing.T) {
	r := testRenderer()

	form := models.ReceiptForm{
		StudentName: "Amaka Obi",
		Amount:      "50000",
		Purpose:     "Second Term Fees",
	}

	rr := r.BuildPreview(form, testIdentity())
	assert.Equal(t, "05 Jan 2025", rr.PaymentDate)
}

func TestBuildPreviewIsPure(t *testing.T) {
	r := testRenderer()
	form := models.ReceiptForm{
		StudentName: "Amaka Obi",
		Amount:      "50000",
		Purpose:     "Second Term Fees",
	}

	first := r.BuildPreview(form, testIdentity())
	second := r.BuildPreview(form, testIdentity())
	assert.Equal(t, first, second)
}

func TestRenderPDF(t *testing.T) {
	r := testRenderer()
	rr := r.BuildPreview(models.ReceiptForm{
		StudentName: "Amaka Obi",
		Amount:      "150000",
		Purpose:     "Second Term Fees",
		PaymentMode: "pos",
	}, testIdentity())

	pdfBytes, err := r.RenderPDF(rr)
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestBuildEmailDraft(t *testing.T) {
	r := testRenderer()
	rr := r.BuildPreview(models.ReceiptForm{
		StudentName: "Amaka Obi",
		Amount:      "150000",
		Purpose:     "Second Term Fees",
		PaymentMode: "transfer",
		Term:        "second",
		Session:     "2024/2025",
	}, testIdentity())

	draft := r.BuildEmailDraft(rr, "parent@example.com")

	assert.Equal(t, "parent@example.com", draft.To)
	assert.Contains(t, draft.Subject, "FCS-123456-789")
	assert.Contains(t, draft.Body, "Amaka Obi")
	assert.Contains(t, draft.Body, "₦150,000")
	assert.Contains(t, draft.Body, "Bank Transfer")
	assert.Contains(t, draft.Body, "Second Term, 2024/2025")
}
