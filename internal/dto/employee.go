package dto

import (
	"github.com/shopspring/decimal"
	"github.com/staffkhata/staffkhata_backend/internal/core/domain"
)

// CreateEmployeeRequest defines the payload for registering an employee.
type CreateEmployeeRequest struct {
	Name         string          `json:"name" binding:"required"`
	SalaryPerDay decimal.Decimal `json:"salaryPerDay"`
}

// UpdateEmployeeRequest defines the data allowed for updating an employee.
// Pointers differentiate omitted fields from zero values.
type UpdateEmployeeRequest struct {
	Name         *string          `json:"name"`
	SalaryPerDay *decimal.Decimal `json:"salaryPerDay"`
}

// EmployeeResponse is the externally visible shape of an employee.
type EmployeeResponse struct {
	EmployeeID   string          `json:"employeeID"`
	Name         string          `json:"name"`
	SalaryPerDay decimal.Decimal `json:"salaryPerDay"`
}

// ListEmployeesResponse wraps the owner's employee list.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// ToEmployeeResponse converts a domain Employee to its response DTO
func ToEmployeeResponse(employee *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:   employee.EmployeeID,
		Name:         employee.Name,
		SalaryPerDay: employee.SalaryPerDay,
	}
}

// ToListEmployeesResponse converts a slice of domain Employees to the list DTO
func ToListEmployeesResponse(employees []domain.Employee) ListEmployeesResponse {
	responses := make([]EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = ToEmployeeResponse(&employees[i])
	}
	return ListEmployeesResponse{Employees: responses}
}
