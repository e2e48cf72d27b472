package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffkhata/staffkhata_backend/internal/core/domain"
)

// UpsertAttendanceRequest defines the payload for recording one day's attendance.
// Writing the same date twice overwrites the previous state and amount.
type UpsertAttendanceRequest struct {
	Date        time.Time       `json:"date" binding:"required"`
	Status      string          `json:"status" binding:"required,attendance_state"`
	AmountTaken decimal.Decimal `json:"amountTaken"`
}

// AttendanceEntryResponse is the externally visible shape of a day entry.
type AttendanceEntryResponse struct {
	EntryID     string          `json:"entryID"`
	EmployeeID  string          `json:"employeeID"`
	Date        string          `json:"date"` // YYYY-MM-DD
	Status      string          `json:"status"`
	AmountTaken decimal.Decimal `json:"amountTaken"`
}

// ListAttendanceResponse wraps an employee's open-period entries.
type ListAttendanceResponse struct {
	Entries []AttendanceEntryResponse `json:"entries"`
}

// TotalsResponse is the live aggregate of the open period.
type TotalsResponse struct {
	TotalPresent     int             `json:"totalPresent"`
	TotalHalfDay     int             `json:"totalHalfDay"`
	TotalAbsent      int             `json:"totalAbsent"`
	TotalEarnings    decimal.Decimal `json:"totalEarnings"`
	TotalAmountTaken decimal.Decimal `json:"totalAmountTaken"`
	Remaining        decimal.Decimal `json:"remaining"`
}

// ToAttendanceEntryResponse converts a domain AttendanceEntry to its response DTO
func ToAttendanceEntryResponse(entry *domain.AttendanceEntry) AttendanceEntryResponse {
	return AttendanceEntryResponse{
		EntryID:     entry.EntryID,
		EmployeeID:  entry.EmployeeID,
		Date:        entry.EntryDate.Format("2006-01-02"),
		Status:      string(entry.Status),
		AmountTaken: entry.AmountTaken,
	}
}

// ToListAttendanceResponse converts domain entries to the list DTO
func ToListAttendanceResponse(entries []domain.AttendanceEntry) ListAttendanceResponse {
	responses := make([]AttendanceEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToAttendanceEntryResponse(&entries[i])
	}
	return ListAttendanceResponse{Entries: responses}
}

// ToTotalsResponse converts domain AttendanceTotals to its response DTO
func ToTotalsResponse(totals domain.AttendanceTotals) TotalsResponse {
	return TotalsResponse{
		TotalPresent:     totals.TotalPresent,
		TotalHalfDay:     totals.TotalHalfDay,
		TotalAbsent:      totals.TotalAbsent,
		TotalEarnings:    totals.TotalEarnings,
		TotalAmountTaken: totals.TotalAmountTaken,
		Remaining:        totals.Remaining,
	}
}
