package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/staffkhata/staffkhata_backend/internal/apperrors"
	"github.com/staffkhata/staffkhata_backend/internal/core/domain"
	portsrepo "github.com/staffkhata/staffkhata_backend/internal/core/ports/repositories"
	portssvc "github.com/staffkhata/staffkhata_backend/internal/core/ports/services"
	"github.com/staffkhata/staffkhata_backend/internal/dto"
	"github.com/staffkhata/staffkhata_backend/internal/utils/payroll"
)

// attendanceServiceImpl implements the AttendanceSvcFacade interface
type attendanceServiceImpl struct {
	BaseService
	attendanceRepo portsrepo.AttendanceRepositoryFacade
	employeeRepo   portsrepo.EmployeeReader
	shiftGuard     *ShiftGuard
}

// NewAttendanceService creates a new attendance service. The shift guard must
// be the same instance handed to the archival service so upserts observe
// in-flight seals.
func NewAttendanceService(repo portsrepo.AttendanceRepositoryFacade, employeeRepo portsrepo.EmployeeReader, guard *ShiftGuard) portssvc.AttendanceSvcFacade {
	return &attendanceServiceImpl{
		attendanceRepo: repo,
		employeeRepo:   employeeRepo,
		shiftGuard:     guard,
	}
}

// Ensure attendanceServiceImpl implements the AttendanceSvcFacade interface
var _ portssvc.AttendanceSvcFacade = (*attendanceServiceImpl)(nil)

func (s *attendanceServiceImpl) UpsertEntry(ctx context.Context, ownerID string, employeeID string, req dto.UpsertAttendanceRequest) (*domain.AttendanceEntry, error) {
	status := domain.AttendanceState(req.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("unknown attendance status %q: %w", req.Status, apperrors.ErrValidation)
	}
	if req.AmountTaken.IsNegative() {
		return nil, fmt.Errorf("amount taken cannot be negative: %w", apperrors.ErrValidation)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("date is required: %w", apperrors.ErrValidation)
	}

	// Employee must exist within the owner's scope.
	if _, err := s.employeeRepo.FindEmployeeByID(ctx, ownerID, employeeID); err != nil {
		return nil, fmt.Errorf("failed to find employee for attendance entry: %w", err)
	}

	// Hold the write token across the repository write so a concurrent seal
	// cannot start inside this entry's commit window.
	key := shiftKey(ownerID, employeeID)
	if !s.shiftGuard.TryAcquireShared(key) {
		return nil, fmt.Errorf("period seal in flight for employee %s: %w", employeeID, apperrors.ErrShiftInProgress)
	}
	defer s.shiftGuard.ReleaseShared(key)

	now := time.Now()
	entry := domain.AttendanceEntry{
		EntryID:     uuid.NewString(),
		OwnerID:     ownerID,
		EmployeeID:  employeeID,
		EntryDate:   domain.NormalizeDay(req.Date),
		Status:      status,
		AmountTaken: req.AmountTaken,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	entryID, err := s.attendanceRepo.UpsertEntry(ctx, entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert attendance entry",
			slog.String("employee_id", employeeID),
			slog.String("entry_date", entry.EntryDate.Format("2006-01-02")))
		return nil, fmt.Errorf("failed to upsert attendance entry: %w", err)
	}
	entry.EntryID = entryID

	return &entry, nil
}

func (s *attendanceServiceImpl) ListOpenPeriod(ctx context.Context, ownerID string, employeeID string) ([]domain.AttendanceEntry, error) {
	if _, err := s.employeeRepo.FindEmployeeByID(ctx, ownerID, employeeID); err != nil {
		return nil, fmt.Errorf("failed to find employee for listing: %w", err)
	}
	entries, err := s.attendanceRepo.FindOpenPeriod(ctx, ownerID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list open period: %w", err)
	}
	return entries, nil
}

// GetOpenPeriodTotals aggregates the open period with the employee's current
// wage. Server and client previews both go through this path so displayed and
// persisted totals cannot drift.
func (s *attendanceServiceImpl) GetOpenPeriodTotals(ctx context.Context, ownerID string, employeeID string) (*domain.AttendanceTotals, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, ownerID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find employee for totals: %w", err)
	}
	entries, err := s.attendanceRepo.FindOpenPeriod(ctx, ownerID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load open period for totals: %w", err)
	}

	totals := payroll.ComputeTotals(entries, employee.SalaryPerDay)
	return &totals, nil
}
