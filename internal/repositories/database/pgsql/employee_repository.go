package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffkhata/staffkhata_backend/internal/apperrors"
	"github.com/staffkhata/staffkhata_backend/internal/core/domain"
	portsrepo "github.com/staffkhata/staffkhata_backend/internal/core/ports/repositories"
	"github.com/staffkhata/staffkhata_backend/internal/models"
	"github.com/staffkhata/staffkhata_backend/internal/utils/mapping"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(db DB) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository{Pool: db}}
}

// Ensure PgxEmployeeRepository implements portsrepo.EmployeeRepositoryFacade
var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const employeeColumns = `employee_id, owner_id, name, salary_per_day, created_at, created_by, last_updated_at, last_updated_by`

func scanEmployee(row pgx.Row) (*models.Employee, error) {
	var m models.Employee
	err := row.Scan(
		&m.EmployeeID,
		&m.OwnerID,
		&m.Name,
		&m.SalaryPerDay,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateConnError(err)
	}
	return &m, nil
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `
        INSERT INTO employees (employee_id, owner_id, name, salary_per_day, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.EmployeeID,
		m.OwnerID,
		m.Name,
		m.SalaryPerDay,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("employee already exists: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save employee: %w", translateConnError(err))
	}
	return nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, ownerID string, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE owner_id = $1 AND employee_id = $2;`
	m, err := scanEmployee(r.Pool.QueryRow(ctx, query, ownerID, employeeID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find employee by ID %s: %w", employeeID, err)
	}
	employee := mapping.ToDomainEmployee(*m)
	return &employee, nil
}

func (r *PgxEmployeeRepository) FindEmployees(ctx context.Context, ownerID string) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE owner_id = $1 ORDER BY created_at ASC;`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", translateConnError(err))
	}
	defer rows.Close()

	modelEmployees := []models.Employee{}
	for rows.Next() {
		m, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		modelEmployees = append(modelEmployees, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", rows.Err())
	}

	return mapping.ToDomainEmployeeSlice(modelEmployees), nil
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `
        UPDATE employees
        SET name = $1, salary_per_day = $2, last_updated_at = $3, last_updated_by = $4
        WHERE owner_id = $5 AND employee_id = $6;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.SalaryPerDay,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.OwnerID,
		m.EmployeeID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", translateConnError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("employee not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

// DeleteEmployeeCascade removes the employee with all of their open-period
// entries and sealed snapshots in one transaction. Entries and snapshots go
// first so a failure never leaves an orphaned employee row.
func (r *PgxEmployeeRepository) DeleteEmployeeCascade(ctx context.Context, ownerID string, employeeID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM attendance_entries WHERE owner_id = $1 AND employee_id = $2;`, ownerID, employeeID); err != nil {
		return fmt.Errorf("failed to delete attendance entries for employee: %w", translateConnError(err))
	}
	if _, err := tx.Exec(ctx, `DELETE FROM monthly_snapshots WHERE owner_id = $1 AND employee_id = $2;`, ownerID, employeeID); err != nil {
		return fmt.Errorf("failed to delete snapshots for employee: %w", translateConnError(err))
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM employees WHERE owner_id = $1 AND employee_id = $2;`, ownerID, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", translateConnError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("employee not found: %w", apperrors.ErrNotFound)
	}

	return r.Commit(ctx, tx)
}
