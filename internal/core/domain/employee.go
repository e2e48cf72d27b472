package domain

import "github.com/shopspring/decimal"

// Employee represents a worker registered by a store owner.
type Employee struct {
	EmployeeID   string          `json:"employeeID"` // Primary key (UUID)
	OwnerID      string          `json:"ownerID"`
	Name         string          `json:"name"`
	SalaryPerDay decimal.Decimal `json:"salaryPerDay"` // Non-negative daily wage
	AuditFields
}
