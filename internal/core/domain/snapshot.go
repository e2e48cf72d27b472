package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySnapshot is the immutable record of a sealed period, keyed by
// (owner, employee, month, year). It is created exactly once by the archival
// shift and never mutated afterwards; re-sealing the same period fails.
type MonthlySnapshot struct {
	SnapshotID       string          `json:"snapshotID"` // Primary key (UUID)
	OwnerID          string          `json:"ownerID"`
	EmployeeID       string          `json:"employeeID"`
	Month            int             `json:"month"` // 1-12
	Year             int             `json:"year"`
	TotalPresent     int             `json:"totalPresent"`
	TotalHalfDay     int             `json:"totalHalfDay"`
	TotalAbsent      int             `json:"totalAbsent"`
	TotalEarnings    decimal.Decimal `json:"totalEarnings"`
	TotalAmountTaken decimal.Decimal `json:"totalAmountTaken"`
	SealedAt         time.Time       `json:"sealedAt"`
}

// ArchivalAnomaly records a seal that left partial state behind (snapshot
// written, open entries not fully cleared). These rows are the operator-visible
// flag for manual reconciliation; nothing retries them automatically.
type ArchivalAnomaly struct {
	AnomalyID  string    `json:"anomalyID"`
	OwnerID    string    `json:"ownerID"`
	EmployeeID string    `json:"employeeID"`
	Month      int       `json:"month"`
	Year       int       `json:"year"`
	SnapshotID string    `json:"snapshotID,omitempty"`
	Detail     string    `json:"detail"`
	FlaggedAt  time.Time `json:"flaggedAt"`
}
