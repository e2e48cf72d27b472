package services

import (
	"context"

	"github.com/staffkhata/staffkhata_backend/internal/core/domain"
)

// ArchivalSvcFacade seals open periods into immutable monthly snapshots.
type ArchivalSvcFacade interface {
	// Shift seals the employee's open period into a MonthlySnapshot for
	// (month, year) and starts a fresh open period. Fails with ErrNotFound when
	// there is nothing to archive, ErrConflict when the period is already
	// sealed, and ErrShiftInProgress when another shift holds the employee lock.
	Shift(ctx context.Context, ownerID string, employeeID string, month int, year int) (*domain.MonthlySnapshot, error)

	// GetSnapshot retrieves one sealed period.
	GetSnapshot(ctx context.Context, ownerID string, employeeID string, month int, year int) (*domain.MonthlySnapshot, error)

	// ListSnapshots retrieves the employee's sealed periods, newest first.
	ListSnapshots(ctx context.Context, ownerID string, employeeID string) ([]domain.MonthlySnapshot, error)
}
