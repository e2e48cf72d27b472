package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySnapshot represents a row in the monthly_snapshots table. Rows are
// insert-only; uniqueness over (owner_id, employee_id, month, year) is
// enforced by the schema.
type MonthlySnapshot struct {
	SnapshotID       string          `db:"snapshot_id"`
	OwnerID          string          `db:"owner_id"`
	EmployeeID       string          `db:"employee_id"`
	Month            int             `db:"month"`
	Year             int             `db:"year"`
	TotalPresent     int             `db:"total_present"`
	TotalHalfDay     int             `db:"total_half_day"`
	TotalAbsent      int             `db:"total_absent"`
	TotalEarnings    decimal.Decimal `db:"total_earnings"`
	TotalAmountTaken decimal.Decimal `db:"total_amount_taken"`
	SealedAt         time.Time       `db:"sealed_at"`
}

// ArchivalAnomaly represents a row in the archival_anomalies table.
type ArchivalAnomaly struct {
	AnomalyID  string    `db:"anomaly_id"`
	OwnerID    string    `db:"owner_id"`
	EmployeeID string    `db:"employee_id"`
	Month      int       `db:"month"`
	Year       int       `db:"year"`
	SnapshotID string    `db:"snapshot_id"`
	Detail     string    `db:"detail"`
	FlaggedAt  time.Time `db:"flagged_at"`
}
