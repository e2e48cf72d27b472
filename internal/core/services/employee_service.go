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
)

// employeeServiceImpl implements the EmployeeSvcFacade interface
type employeeServiceImpl struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// EmployeeServiceOption is a functional option for configuring the employee service
type EmployeeServiceOption func(*employeeServiceImpl)

// NewEmployeeService creates a new employee service with the provided options
func NewEmployeeService(repo portsrepo.EmployeeRepositoryFacade, options ...EmployeeServiceOption) portssvc.EmployeeSvcFacade {
	svc := &employeeServiceImpl{employeeRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure employeeServiceImpl implements the EmployeeSvcFacade interface
var _ portssvc.EmployeeSvcFacade = (*employeeServiceImpl)(nil)

func (s *employeeServiceImpl) CreateEmployee(ctx context.Context, ownerID string, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("employee name is required: %w", apperrors.ErrValidation)
	}
	if req.SalaryPerDay.IsNegative() {
		return nil, fmt.Errorf("salary per day cannot be negative: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	employee := domain.Employee{
		EmployeeID:   uuid.NewString(),
		OwnerID:      ownerID,
		Name:         req.Name,
		SalaryPerDay: req.SalaryPerDay,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "Failed to save employee", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	s.LogInfo(ctx, "Employee created", slog.String("employee_id", employee.EmployeeID))
	return &employee, nil
}

func (s *employeeServiceImpl) GetEmployeeByID(ctx context.Context, ownerID string, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, ownerID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}

func (s *employeeServiceImpl) ListEmployees(ctx context.Context, ownerID string) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.FindEmployees(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// UpdateEmployee applies name or wage changes. Wage changes take effect for
// future aggregation only; sealed snapshots keep the totals they were sealed
// with.
func (s *employeeServiceImpl) UpdateEmployee(ctx context.Context, ownerID string, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, ownerID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find employee for update: %w", err)
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("employee name cannot be empty: %w", apperrors.ErrValidation)
		}
		employee.Name = *req.Name
	}
	if req.SalaryPerDay != nil {
		if req.SalaryPerDay.IsNegative() {
			return nil, fmt.Errorf("salary per day cannot be negative: %w", apperrors.ErrValidation)
		}
		employee.SalaryPerDay = *req.SalaryPerDay
	}
	employee.LastUpdatedAt = time.Now()
	employee.LastUpdatedBy = ownerID

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		s.LogError(ctx, err, "Failed to update employee", slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee, nil
}

func (s *employeeServiceImpl) DeleteEmployee(ctx context.Context, ownerID string, employeeID string) error {
	// Existence check first so a bogus ID surfaces as NotFound, not a no-op.
	if _, err := s.employeeRepo.FindEmployeeByID(ctx, ownerID, employeeID); err != nil {
		return fmt.Errorf("failed to find employee for deletion: %w", err)
	}

	if err := s.employeeRepo.DeleteEmployeeCascade(ctx, ownerID, employeeID); err != nil {
		s.LogError(ctx, err, "Failed to delete employee", slog.String("employee_id", employeeID))
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	s.LogInfo(ctx, "Employee deleted with entries and snapshots", slog.String("employee_id", employeeID))
	return nil
}
