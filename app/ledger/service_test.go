package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darlculus/franciscancatholicschool-sub001/app/models"
	"github.com/darlculus/franciscancatholicschool-sub001/app/storage/inmem"
)

func validInput() models.PaymentInput {
	return models.PaymentInput{
		StudentName: "Amaka Obi",
		Amount:      decimal.NewFromInt(50000),
		Purpose:     "Second Term Fees",
		PaymentMode: models.ModePOS,
		PaymentDate: "2025-01-20",
	}
}

func TestAddPaymentRoundTrip(t *testing.T) {
	svc := NewService(inmem.New())

	record, err := svc.AddPayment(validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, record.ID)
	assert.NotEmpty(t, record.ReceiptID)
	assert.Equal(t, "Amaka Obi", record.StudentName)
	assert.True(t, record.Amount.Equal(decimal.NewFromInt(50000)))
	assert.Equal(t, "Second Term Fees", record.Purpose)
	assert.Equal(t, models.ModePOS, record.PaymentMode)
	assert.Equal(t, "2025-01-20", record.PaymentDate)
	assert.Equal(t, models.PaymentPaid, record.Status)
	assert.False(t, record.CreatedAt.IsZero())

	records, err := svc.ListPayments()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, record.ID, records[0].ID)
	assert.Equal(t, record.ReceiptID, records[0].ReceiptID)
}

func TestAddPaymentValidation(t *testing.T) {
	svc := NewService(inmem.New())

	cases := []struct {
		name   string
		mutate func(*models.PaymentInput)
	}{
		{"missing student name", func(in *models.PaymentInput) { in.StudentName = "" }},
		{"whitespace student name", func(in *models.PaymentInput) { in.StudentName = "   " }},
		{"missing purpose", func(in *models.PaymentInput) { in.Purpose = "" }},
		{"zero amount", func(in *models.PaymentInput) { in.Amount = decimal.Zero }},
		{"negative amount", func(in *models.PaymentInput) { in.Amount = decimal.NewFromInt(-100) }},
		{"bad payment date", func(in *models.PaymentInput) { in.PaymentDate = "20/01/2025" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)

			_, err := svc.AddPayment(input)
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)

			// Rejection leaves the ledger unchanged.
			records, listErr := svc.ListPayments()
			require.NoError(t, listErr)
			assert.Empty(t, records)
		})
	}
}

func TestAddPaymentDefaults(t *testing.T) {
	svc := NewService(inmem.New())

	input := validInput()
	input.PaymentMode = ""
	input.PaymentDate = ""

	record, err := svc.AddPayment(input)
	require.NoError(t, err)

	assert.Equal(t, models.ModeCash, record.PaymentMode)
	assert.Equal(t, time.Now().Format("2006-01-02"), record.PaymentDate)
	assert.Equal(t, models.PaymentPaid, record.Status)
}

func TestAddPaymentUnknownModeBecomesCash(t *testing.T) {
	svc := NewService(inmem.New())

	input := validInput()
	input.PaymentMode = "cheque"

	record, err := svc.AddPayment(input)
	require.NoError(t, err)
	assert.Equal(t, models.ModeCash, record.PaymentMode)
}

func TestAddPaymentDuplicateReceipt(t *testing.T) {
	svc := NewService(inmem.New())

	input := validInput()
	input.ReceiptID = "FCS-123456-789"
	_, err := svc.AddPayment(input)
	require.NoError(t, err)

	second := validInput()
	second.StudentName = "Chidi Eze"
	second.ReceiptID = "FCS-123456-789"
	_, err = svc.AddPayment(second)

	var dErr *DuplicateReceiptError
	require.ErrorAs(t, err, &dErr)
	assert.Equal(t, "FCS-123456-789", dErr.ReceiptID)

	records, err := svc.ListPayments()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestSequentialReceiptIDsNeverCollide(t *testing.T) {
	svc := NewService(inmem.New())

	first, err := svc.AddPayment(validInput())
	require.NoError(t, err)

	second := validInput()
	second.StudentName = "Chidi Eze"
	rec, err := svc.AddPayment(second)
	require.NoError(t, err)

	assert.NotEqual(t, first.ReceiptID, rec.ReceiptID)
}

func TestClearPayments(t *testing.T) {
	svc := NewService(inmem.New())

	for i := 0; i < 3; i++ {
		_, err := svc.AddPayment(validInput())
		require.NoError(t, err)
	}

	require.NoError(t, svc.ClearPayments())

	records, err := svc.ListPayments()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDashboardStats(t *testing.T) {
	svc := NewService(inmem.New())

	asOf, err := time.Parse("2006-01-02", "2025-01-20")
	require.NoError(t, err)

	// Two records on the stats date, one on another day.
	for _, amount := range []int64{50000, 25000} {
		input := validInput()
		input.Amount = decimal.NewFromInt(amount)
		_, err := svc.AddPayment(input)
		require.NoError(t, err)
	}
	other := validInput()
	other.PaymentDate = "2025-01-19"
	_, err = svc.AddPayment(other)
	require.NoError(t, err)

	stats, err := svc.DashboardStats(asOf)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TodayCount)
	assert.True(t, stats.TodayTotal.Equal(decimal.NewFromInt(75000)))
	assert.Equal(t, 3, stats.TotalPayments)
	assert.Equal(t, 0, stats.PendingCount)
}

func TestDashboardStatsDoesNotMutate(t *testing.T) {
	svc := NewService(inmem.New())

	_, err := svc.AddPayment(validInput())
	require.NoError(t, err)

	asOf, _ := time.Parse("2006-01-02", "2025-01-20")
	_, err = svc.DashboardStats(asOf)
	require.NoError(t, err)

	records, err := svc.ListPayments()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
