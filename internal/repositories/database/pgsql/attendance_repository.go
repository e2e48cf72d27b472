package pgsql

import (
	"context"
	"fmt"

	"github.com/staffkhata/staffkhata_backend/internal/core/domain"
	portsrepo "github.com/staffkhata/staffkhata_backend/internal/core/ports/repositories"
	"github.com/staffkhata/staffkhata_backend/internal/models"
	"github.com/staffkhata/staffkhata_backend/internal/utils/mapping"
)

type PgxAttendanceRepository struct {
	BaseRepository
}

func newPgxAttendanceRepository(db DB) portsrepo.AttendanceRepositoryFacade {
	return &PgxAttendanceRepository{BaseRepository{Pool: db}}
}

// Ensure PgxAttendanceRepository implements portsrepo.AttendanceRepositoryFacade
var _ portsrepo.AttendanceRepositoryFacade = (*PgxAttendanceRepository)(nil)

// UpsertEntry writes the entry for its (owner, employee, date) key. The unique
// index on that triple makes the overwrite semantics atomic; the stored row's
// entry_id is returned, which is the original ID when the day already existed.
func (r *PgxAttendanceRepository) UpsertEntry(ctx context.Context, entry domain.AttendanceEntry) (string, error) {
	m := mapping.ToModelAttendanceEntry(entry)
	query := `
        INSERT INTO attendance_entries (entry_id, owner_id, employee_id, entry_date, status, amount_taken, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (owner_id, employee_id, entry_date) DO UPDATE SET
            status = EXCLUDED.status,
            amount_taken = EXCLUDED.amount_taken,
            updated_at = EXCLUDED.updated_at
        RETURNING entry_id;
    `
	var entryID string
	err := r.Pool.QueryRow(ctx, query,
		m.EntryID,
		m.OwnerID,
		m.EmployeeID,
		m.EntryDate,
		m.Status,
		m.AmountTaken,
		m.CreatedAt,
		m.UpdatedAt,
	).Scan(&entryID)
	if err != nil {
		return "", fmt.Errorf("failed to upsert attendance entry: %w", translateConnError(err))
	}
	return entryID, nil
}

func (r *PgxAttendanceRepository) FindOpenPeriod(ctx context.Context, ownerID string, employeeID string) ([]domain.AttendanceEntry, error) {
	query := `
        SELECT entry_id, owner_id, employee_id, entry_date, status, amount_taken, created_at, updated_at
        FROM attendance_entries
        WHERE owner_id = $1 AND employee_id = $2
        ORDER BY entry_date ASC;
    `
	rows, err := r.Pool.Query(ctx, query, ownerID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query open period: %w", translateConnError(err))
	}
	defer rows.Close()

	modelEntries := []models.AttendanceEntry{}
	for rows.Next() {
		var m models.AttendanceEntry
		err := rows.Scan(
			&m.EntryID,
			&m.OwnerID,
			&m.EmployeeID,
			&m.EntryDate,
			&m.Status,
			&m.AmountTaken,
			&m.CreatedAt,
			&m.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance entry row: %w", err)
		}
		modelEntries = append(modelEntries, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating attendance entry rows: %w", rows.Err())
	}

	return mapping.ToDomainAttendanceEntrySlice(modelEntries), nil
}
