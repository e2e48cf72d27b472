package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceEntry represents a row in the attendance_entries table (the open
// period). Uniqueness over (owner_id, employee_id, entry_date) is enforced by
// the schema; writes upsert on that key.
type AttendanceEntry struct {
	EntryID     string          `db:"entry_id"`
	OwnerID     string          `db:"owner_id"`
	EmployeeID  string          `db:"employee_id"`
	EntryDate   time.Time       `db:"entry_date"`
	Status      string          `db:"status"`
	AmountTaken decimal.Decimal `db:"amount_taken"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}
