package sqldb

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/darlculus/franciscancatholicschool-sub001/app/models"
	"github.com/darlculus/franciscancatholicschool-sub001/app/storage"
)

// Store persists the ledger in a relational payments table. The SQL sticks
// to what PostgreSQL (lib/pq) and SQLite (mattn/go-sqlite3) both accept:
// numbered placeholders, TEXT/NUMERIC columns, timestamps as RFC 3339 text.
type Store struct {
	db *sql.DB
}

var _ storage.PaymentStore = (*Store)(nil)

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Migrate creates the payments table if it does not exist. Run at startup.
func Migrate(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS payments (
			id            TEXT PRIMARY KEY,
			receipt_id    TEXT NOT NULL UNIQUE,
			student_name  TEXT NOT NULL,
			student_class TEXT NOT NULL DEFAULT '',
			amount        NUMERIC NOT NULL,
			purpose       TEXT NOT NULL,
			payment_mode  TEXT NOT NULL,
			payment_date  TEXT NOT NULL,
			term          TEXT NOT NULL DEFAULT '',
			session       TEXT NOT NULL DEFAULT '',
			notes         TEXT NOT NULL DEFAULT '',
			status        TEXT NOT NULL,
			created_at    TEXT NOT NULL
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create payments table: %w", err)
	}
	return nil
}

func (s *Store) List() ([]*models.PaymentRecord, error) {
	query := `SELECT id, receipt_id, student_name, student_class, amount, purpose,
	          payment_mode, payment_date, term, session, notes, status, created_at
	          FROM payments
	          ORDER BY created_at DESC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payments: %w", err)
	}
	defer rows.Close()

	var records []*models.PaymentRecord
	for rows.Next() {
		rec := &models.PaymentRecord{}
		var mode, status, createdAt string
		err := rows.Scan(
			&rec.ID, &rec.ReceiptID, &rec.StudentName, &rec.StudentClass,
			&rec.Amount, &rec.Purpose, &mode, &rec.PaymentDate,
			&rec.Term, &rec.Session, &rec.Notes, &status, &createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		rec.PaymentMode = models.PaymentMode(mode)
		rec.Status = models.PaymentStatus(status)
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			rec.CreatedAt = ts
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read payment rows: %w", err)
	}
	return records, nil
}

func (s *Store) Add(record *models.PaymentRecord) error {
	query := `INSERT INTO payments (id, receipt_id, student_name, student_class, amount,
	          purpose, payment_mode, payment_date, term, session, notes, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := s.db.Exec(query,
		record.ID,
		record.ReceiptID,
		record.StudentName,
		record.StudentClass,
		record.Amount.String(),
		record.Purpose,
		string(record.PaymentMode),
		record.PaymentDate,
		record.Term,
		record.Session,
		record.Notes,
		string(record.Status),
		record.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrDuplicateReceipt
		}
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM payments`); err != nil {
		return fmt.Errorf("failed to clear payments: %w", err)
	}
	return nil
}

// isUniqueViolation matches the receipt_id unique-constraint error of both
// supported drivers (pq: "duplicate key value violates unique constraint",
// sqlite3: "UNIQUE constraint failed").
func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key value")
}
