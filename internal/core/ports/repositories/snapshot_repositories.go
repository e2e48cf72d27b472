package repositories

import (
	"context"

	"github.com/staffkhata/staffkhata_backend/internal/core/domain"
)

// SnapshotReader defines read operations for sealed monthly snapshots
type SnapshotReader interface {
	// FindSnapshot retrieves the snapshot for (owner, employee, month, year).
	FindSnapshot(ctx context.Context, ownerID string, employeeID string, month int, year int) (*domain.MonthlySnapshot, error)

	// FindSnapshots retrieves all snapshots for an employee, newest period first.
	FindSnapshots(ctx context.Context, ownerID string, employeeID string) ([]domain.MonthlySnapshot, error)
}

// SnapshotSealer defines the archival write operation
type SnapshotSealer interface {
	// SealPeriod inserts the snapshot and clears the employee's open-period
	// entries as one atomic unit (insert-then-clear within a transaction).
	// Returns apperrors.ErrConflict when the period is already sealed.
	SealPeriod(ctx context.Context, snapshot domain.MonthlySnapshot) error

	// RecordAnomaly persists an operator-visible flag for a seal that left
	// partial state behind. Never retried automatically.
	RecordAnomaly(ctx context.Context, anomaly domain.ArchivalAnomaly) error
}

// SnapshotRepositoryFacade combines the snapshot repository interfaces
type SnapshotRepositoryFacade interface {
	SnapshotReader
	SnapshotSealer
}
