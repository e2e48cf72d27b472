package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/staffkhata/staffkhata_backend/internal/apperrors"
	"github.com/staffkhata/staffkhata_backend/internal/core/domain"
	portsrepo "github.com/staffkhata/staffkhata_backend/internal/core/ports/repositories"
	portssvc "github.com/staffkhata/staffkhata_backend/internal/core/ports/services"
	"github.com/staffkhata/staffkhata_backend/internal/utils/payroll"
)

// archivalServiceImpl implements the ArchivalSvcFacade interface
type archivalServiceImpl struct {
	BaseService
	snapshotRepo   portsrepo.SnapshotRepositoryFacade
	attendanceRepo portsrepo.AttendanceRepositoryFacade
	employeeRepo   portsrepo.EmployeeReader
	shiftGuard     *ShiftGuard
	now            func() time.Time
}

// ArchivalServiceOption is a functional option for configuring the archival service
type ArchivalServiceOption func(*archivalServiceImpl)

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) ArchivalServiceOption {
	return func(s *archivalServiceImpl) {
		s.now = now
	}
}

// NewArchivalService creates a new archival service. The shift guard must be
// shared with the attendance service.
func NewArchivalService(
	snapshotRepo portsrepo.SnapshotRepositoryFacade,
	attendanceRepo portsrepo.AttendanceRepositoryFacade,
	employeeRepo portsrepo.EmployeeReader,
	guard *ShiftGuard,
	options ...ArchivalServiceOption,
) portssvc.ArchivalSvcFacade {
	svc := &archivalServiceImpl{
		snapshotRepo:   snapshotRepo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		shiftGuard:     guard,
		now:            time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure archivalServiceImpl implements the ArchivalSvcFacade interface
var _ portssvc.ArchivalSvcFacade = (*archivalServiceImpl)(nil)

// Shift seals the employee's open period into an immutable monthly snapshot
// and starts a fresh open period. Per employee the transition is
// OPEN -> SEALED[+new OPEN]; there is no way back from SEALED.
func (s *archivalServiceImpl) Shift(ctx context.Context, ownerID string, employeeID string, month int, year int) (*domain.MonthlySnapshot, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12: %w", apperrors.ErrValidation)
	}
	if year < 2000 || year > 2100 {
		return nil, fmt.Errorf("year %d out of range: %w", year, apperrors.ErrValidation)
	}

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, ownerID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find employee for shift: %w", err)
	}

	key := shiftKey(ownerID, employeeID)
	if !s.shiftGuard.TryAcquire(key) {
		return nil, fmt.Errorf("another shift holds the lock for employee %s: %w", employeeID, apperrors.ErrShiftInProgress)
	}
	defer s.shiftGuard.Release(key)

	// Precondition: something to archive. An empty period is an error, not a
	// zero-valued snapshot.
	entries, err := s.attendanceRepo.FindOpenPeriod(ctx, ownerID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load open period for shift: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no open entries to archive for employee %s: %w", employeeID, apperrors.ErrNotFound)
	}

	// Precondition: period not already sealed. The unique index on the
	// snapshots table backs this up against races across processes.
	if _, err := s.snapshotRepo.FindSnapshot(ctx, ownerID, employeeID, month, year); err == nil {
		return nil, fmt.Errorf("period %d/%d already sealed for employee %s: %w", month, year, employeeID, apperrors.ErrConflict)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing snapshot: %w", err)
	}

	totals := payroll.ComputeTotals(entries, employee.SalaryPerDay)

	snapshot := domain.MonthlySnapshot{
		SnapshotID:       uuid.NewString(),
		OwnerID:          ownerID,
		EmployeeID:       employeeID,
		Month:            month,
		Year:             year,
		TotalPresent:     totals.TotalPresent,
		TotalHalfDay:     totals.TotalHalfDay,
		TotalAbsent:      totals.TotalAbsent,
		TotalEarnings:    totals.TotalEarnings,
		TotalAmountTaken: totals.TotalAmountTaken,
		SealedAt:         s.now(),
	}

	// Snapshot insert and entry clear run as one atomic unit in the
	// repository (insert-then-clear). A failure that leaves partial state is
	// surfaced as ErrPartialArchival; flag it for reconciliation and never
	// retry it automatically, since a retry could double-count the period.
	if err := s.snapshotRepo.SealPeriod(ctx, snapshot); err != nil {
		if errors.Is(err, apperrors.ErrPartialArchival) {
			s.flagPartialArchival(ctx, snapshot, err)
			return nil, err
		}
		s.LogError(ctx, err, "Failed to seal period",
			slog.String("employee_id", employeeID),
			slog.Int("month", month),
			slog.Int("year", year))
		return nil, fmt.Errorf("failed to seal period: %w", err)
	}

	s.LogInfo(ctx, "Period sealed",
		slog.String("employee_id", employeeID),
		slog.String("snapshot_id", snapshot.SnapshotID),
		slog.Int("month", month),
		slog.Int("year", year))
	return &snapshot, nil
}

// flagPartialArchival records the operator-visible anomaly row. The flag write
// is best effort on top of an already-reported failure; if it fails too, the
// error log is the remaining trace.
func (s *archivalServiceImpl) flagPartialArchival(ctx context.Context, snapshot domain.MonthlySnapshot, cause error) {
	anomaly := domain.ArchivalAnomaly{
		AnomalyID:  uuid.NewString(),
		OwnerID:    snapshot.OwnerID,
		EmployeeID: snapshot.EmployeeID,
		Month:      snapshot.Month,
		Year:       snapshot.Year,
		SnapshotID: snapshot.SnapshotID,
		Detail:     cause.Error(),
		FlaggedAt:  s.now(),
	}
	s.LogError(ctx, cause, "Partial archival detected, flagging for manual reconciliation",
		slog.String("employee_id", snapshot.EmployeeID),
		slog.String("snapshot_id", snapshot.SnapshotID),
		slog.Int("month", snapshot.Month),
		slog.Int("year", snapshot.Year))
	if err := s.snapshotRepo.RecordAnomaly(ctx, anomaly); err != nil {
		s.LogError(ctx, err, "Failed to record archival anomaly",
			slog.String("snapshot_id", snapshot.SnapshotID))
	}
}

func (s *archivalServiceImpl) GetSnapshot(ctx context.Context, ownerID string, employeeID string, month int, year int) (*domain.MonthlySnapshot, error) {
	snapshot, err := s.snapshotRepo.FindSnapshot(ctx, ownerID, employeeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return snapshot, nil
}

func (s *archivalServiceImpl) ListSnapshots(ctx context.Context, ownerID string, employeeID string) ([]domain.MonthlySnapshot, error) {
	if _, err := s.employeeRepo.FindEmployeeByID(ctx, ownerID, employeeID); err != nil {
		return nil, fmt.Errorf("failed to find employee for snapshot listing: %w", err)
	}
	snapshots, err := s.snapshotRepo.FindSnapshots(ctx, ownerID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return snapshots, nil
}
