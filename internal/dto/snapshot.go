package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffkhata/staffkhata_backend/internal/core/domain"
)

// ShiftRequest defines the payload for sealing an employee's open period.
type ShiftRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000,max=2100"`
}

// SnapshotResponse is the externally visible shape of a sealed monthly snapshot.
type SnapshotResponse struct {
	SnapshotID       string          `json:"snapshotID"`
	EmployeeID       string          `json:"employeeID"`
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	TotalPresent     int             `json:"totalPresent"`
	TotalHalfDay     int             `json:"totalHalfDay"`
	TotalAbsent      int             `json:"totalAbsent"`
	TotalEarnings    decimal.Decimal `json:"totalEarnings"`
	TotalAmountTaken decimal.Decimal `json:"totalAmountTaken"`
	SealedAt         time.Time       `json:"sealedAt"`
}

// ListSnapshotsResponse wraps an employee's archived months.
type ListSnapshotsResponse struct {
	Snapshots []SnapshotResponse `json:"snapshots"`
}

// ToSnapshotResponse converts a domain MonthlySnapshot to its response DTO
func ToSnapshotResponse(s *domain.MonthlySnapshot) SnapshotResponse {
	return SnapshotResponse{
		SnapshotID:       s.SnapshotID,
		EmployeeID:       s.EmployeeID,
		Month:            s.Month,
		Year:             s.Year,
		TotalPresent:     s.TotalPresent,
		TotalHalfDay:     s.TotalHalfDay,
		TotalAbsent:      s.TotalAbsent,
		TotalEarnings:    s.TotalEarnings,
		TotalAmountTaken: s.TotalAmountTaken,
		SealedAt:         s.SealedAt,
	}
}

// ToListSnapshotsResponse converts domain snapshots to the list DTO
func ToListSnapshotsResponse(snapshots []domain.MonthlySnapshot) ListSnapshotsResponse {
	responses := make([]SnapshotResponse, len(snapshots))
	for i := range snapshots {
		responses[i] = ToSnapshotResponse(&snapshots[i])
	}
	return ListSnapshotsResponse{Snapshots: responses}
}
