package services

import (
	"context"

	"github.com/staffkhata/staffkhata_backend/internal/core/domain"
	"github.com/staffkhata/staffkhata_backend/internal/dto"
)

// AttendanceWriterSvc defines write operations over the open period
type AttendanceWriterSvc interface {
	// UpsertEntry records one day's attendance for an employee, overwriting any
	// existing entry for that calendar day. Fails with ErrShiftInProgress while
	// the employee's period is being sealed.
	UpsertEntry(ctx context.Context, ownerID string, employeeID string, req dto.UpsertAttendanceRequest) (*domain.AttendanceEntry, error)
}

// AttendanceReaderSvc defines read operations over the open period
type AttendanceReaderSvc interface {
	// ListOpenPeriod returns the employee's open-period entries ascending by date.
	ListOpenPeriod(ctx context.Context, ownerID string, employeeID string) ([]domain.AttendanceEntry, error)

	// GetOpenPeriodTotals computes live totals over the open period using the
	// employee's current daily wage. Single source of truth for UI previews.
	GetOpenPeriodTotals(ctx context.Context, ownerID string, employeeID string) (*domain.AttendanceTotals, error)
}

// AttendanceSvcFacade combines the attendance service interfaces
type AttendanceSvcFacade interface {
	AttendanceWriterSvc
	AttendanceReaderSvc
}
