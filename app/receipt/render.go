package receipt

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/darlculus/franciscancatholicschool-sub001/app/models"
)

const displayDateLayout = "02 Jan 2006"

// PendingSelectionLabel is what the preview shows for a payment mode that
// has not been picked yet. Persisted records never carry it; the ledger
// defaults an unset mode to cash.
const PendingSelectionLabel = "Pending selection"

var paymentModeLabels = map[string]string{
	"cash":     "Cash",
	"transfer": "Bank Transfer",
	"pos":      "POS",
	"online":   "Online Payment",
}

// Renderer projects a receipt identity plus form values into the three
// receipt outputs: on-screen preview, paged PDF, and email draft. All three
// are built from the same RenderedReceipt, so they always show the same
// facts.
type Renderer struct {
	CurrencySymbol string // e.g. "₦", used in preview and email
	CurrencyCode   string // e.g. "NGN", used where the symbol glyph is unavailable
	SchoolName     string
	SchoolAddress  string
	SchoolPhone    string
	SchoolEmail    string
}

// BuildPreview formats the receipt for the given identity and form values.
// Pure: nothing is persisted, and calling it twice with the same inputs
// yields the same output.
func (r *Renderer) BuildPreview(form models.ReceiptForm, identity models.ReceiptIdentity) *models.RenderedReceipt {
	amount, err := decimal.NewFromString(strings.TrimSpace(form.Amount))
	if err != nil {
		amount = decimal.Zero
	}

	return &models.RenderedReceipt{
		ReceiptID:    identity.ID,
		IssuedAt:     identity.IssuedAt.Format(displayDateLayout),
		StudentName:  strings.TrimSpace(form.StudentName),
		StudentClass: strings.TrimSpace(form.StudentClass),
		Amount:       r.FormatCurrency(amount),
		Purpose:      strings.TrimSpace(form.Purpose),
		PaymentMode:  FormatPaymentMode(form.PaymentMode),
		PaymentDate:  r.formatPaymentDate(form.PaymentDate, identity.IssuedAt),
		TermSession:  FormatTermSession(form.Term, form.Session),
		Notes:        strings.TrimSpace(form.Notes),

		SchoolName:    r.SchoolName,
		SchoolAddress: r.SchoolAddress,
		SchoolPhone:   r.SchoolPhone,
		SchoolEmail:   r.SchoolEmail,
	}
}

// FormatCurrency renders an amount in the deployment currency with zero
// decimal places and thousands separators, e.g. 150000 -> "₦150,000".
func (r *Renderer) FormatCurrency(amount decimal.Decimal) string {
	return r.CurrencySymbol + groupThousands(amount.Round(0).String())
}

// FormatPaymentMode maps a raw payment-mode value to its display label.
// Unrecognized or absent modes render as "Pending selection".
func FormatPaymentMode(mode string) string {
	if label, ok := paymentModeLabels[strings.ToLower(strings.TrimSpace(mode))]; ok {
		return label
	}
	return PendingSelectionLabel
}

// FormatTermSession renders the academic period line, e.g.
// ("second", "2024/2025") -> "Second Term, 2024/2025". Empty unless both
// parts are present.
func FormatTermSession(term, session string) string {
	term = strings.TrimSpace(term)
	session = strings.TrimSpace(session)
	if term == "" || session == "" {
		return ""
	}
	return titleWords(term) + " Term, " + session
}

// formatPaymentDate renders the explicit payment date, falling back to the
// receipt's issue date when none was given.
func (r *Renderer) formatPaymentDate(raw string, issuedAt time.Time) string {
	raw = strings.TrimSpace(raw)
	if raw != "" {
		if d, err := time.Parse("2006-01-02", raw); err == nil {
			return d.Format(displayDateLayout)
		}
	}
	return issuedAt.Format(displayDateLayout)
}

// groupThousands inserts comma separators into a plain integer string.
func groupThousands(digits string) string {
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}

	var b strings.Builder
	for i, ch := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func titleWords(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
