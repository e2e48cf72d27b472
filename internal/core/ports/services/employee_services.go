package services

import (
	"context"

	"github.com/staffkhata/staffkhata_backend/internal/core/domain"
	"github.com/staffkhata/staffkhata_backend/internal/dto"
)

// EmployeeReaderSvc defines read operations for employee data
type EmployeeReaderSvc interface {
	// GetEmployeeByID retrieves an employee scoped to the owner.
	GetEmployeeByID(ctx context.Context, ownerID string, employeeID string) (*domain.Employee, error)

	// ListEmployees retrieves all of the owner's employees.
	ListEmployees(ctx context.Context, ownerID string) ([]domain.Employee, error)
}

// EmployeeWriterSvc defines write operations for employee data
type EmployeeWriterSvc interface {
	// CreateEmployee registers a new employee for the owner.
	CreateEmployee(ctx context.Context, ownerID string, req dto.CreateEmployeeRequest) (*domain.Employee, error)

	// UpdateEmployee updates an employee's name or daily wage. Wage changes are
	// prospective only; sealed snapshots are never recomputed.
	UpdateEmployee(ctx context.Context, ownerID string, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error)
}

// EmployeeLifecycleSvc defines operations for managing employee lifecycle
type EmployeeLifecycleSvc interface {
	// DeleteEmployee removes the employee and cascades to their attendance
	// entries and monthly snapshots.
	DeleteEmployee(ctx context.Context, ownerID string, employeeID string) error
}

// EmployeeSvcFacade combines all employee-related service interfaces
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
	EmployeeLifecycleSvc
}
