package models

import "github.com/shopspring/decimal"

// Employee represents a row in the employees table.
type Employee struct {
	EmployeeID   string          `db:"employee_id"`
	OwnerID      string          `db:"owner_id"`
	Name         string          `db:"name"`
	SalaryPerDay decimal.Decimal `db:"salary_per_day"`
	AuditFields
}
