package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceState enumerates the possible states of a single day entry.
type AttendanceState string

const (
	StatePresent AttendanceState = "PRESENT"
	StateAbsent  AttendanceState = "ABSENT"
	StateHalfDay AttendanceState = "HALF_DAY"
)

// IsValid reports whether s is one of the three known attendance states.
func (s AttendanceState) IsValid() bool {
	switch s {
	case StatePresent, StateAbsent, StateHalfDay:
		return true
	}
	return false
}

// AttendanceEntry is one employee's record for one calendar day within the
// current open (not yet sealed) period. At most one entry exists per
// (owner, employee, date); writes to an existing date overwrite it.
type AttendanceEntry struct {
	EntryID    string `json:"entryID"` // Primary key (UUID)
	OwnerID    string `json:"ownerID"`
	EmployeeID string `json:"employeeID"`
	// EntryDate is the calendar day, normalized to midnight UTC.
	EntryDate time.Time       `json:"entryDate"`
	Status    AttendanceState `json:"status"`
	// AmountTaken is the cash drawn against wages on this day, independent of
	// attendance state (an absent day may still record a draw).
	AmountTaken decimal.Decimal `json:"amountTaken"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// NormalizeDay strips the time-of-day component so that a day maps to exactly
// one entry key regardless of the submitted timestamp.
func NormalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AttendanceTotals holds the aggregate of a set of entries against a daily wage.
// It is a pure value; it is persisted only as part of a MonthlySnapshot.
type AttendanceTotals struct {
	TotalPresent     int             `json:"totalPresent"`
	TotalHalfDay     int             `json:"totalHalfDay"`
	TotalAbsent      int             `json:"totalAbsent"`
	TotalEarnings    decimal.Decimal `json:"totalEarnings"`
	TotalAmountTaken decimal.Decimal `json:"totalAmountTaken"`
	// Remaining is clamped at zero: over-draws are not reported as debt.
	Remaining decimal.Decimal `json:"remaining"`
}
