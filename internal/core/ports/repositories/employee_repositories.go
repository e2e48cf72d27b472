package repositories

import (
	"context"

	"github.com/staffkhata/staffkhata_backend/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// FindEmployeeByID retrieves an employee scoped to the given owner.
	FindEmployeeByID(ctx context.Context, ownerID string, employeeID string) (*domain.Employee, error)

	// FindEmployees retrieves all employees registered by the owner.
	FindEmployees(ctx context.Context, ownerID string) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee data
type EmployeeWriter interface {
	// SaveEmployee persists a new employee.
	SaveEmployee(ctx context.Context, employee domain.Employee) error

	// UpdateEmployee updates an existing employee (name, daily wage).
	UpdateEmployee(ctx context.Context, employee domain.Employee) error
}

// EmployeeLifecycleManager defines operations for managing employee lifecycle
type EmployeeLifecycleManager interface {
	// DeleteEmployeeCascade removes the employee together with all of their
	// open-period entries and monthly snapshots, as a single atomic unit.
	DeleteEmployeeCascade(ctx context.Context, ownerID string, employeeID string) error
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
	EmployeeLifecycleManager
}
