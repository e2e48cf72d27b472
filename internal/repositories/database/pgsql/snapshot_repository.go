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

type PgxSnapshotRepository struct {
	BaseRepository
}

func newPgxSnapshotRepository(db DB) portsrepo.SnapshotRepositoryFacade {
	return &PgxSnapshotRepository{BaseRepository{Pool: db}}
}

// Ensure PgxSnapshotRepository implements portsrepo.SnapshotRepositoryFacade
var _ portsrepo.SnapshotRepositoryFacade = (*PgxSnapshotRepository)(nil)

const snapshotColumns = `snapshot_id, owner_id, employee_id, month, year, total_present, total_half_day, total_absent,
	total_earnings, total_amount_taken, sealed_at`

func scanSnapshot(row pgx.Row) (*models.MonthlySnapshot, error) {
	var m models.MonthlySnapshot
	err := row.Scan(
		&m.SnapshotID,
		&m.OwnerID,
		&m.EmployeeID,
		&m.Month,
		&m.Year,
		&m.TotalPresent,
		&m.TotalHalfDay,
		&m.TotalAbsent,
		&m.TotalEarnings,
		&m.TotalAmountTaken,
		&m.SealedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateConnError(err)
	}
	return &m, nil
}

func (r *PgxSnapshotRepository) FindSnapshot(ctx context.Context, ownerID string, employeeID string, month int, year int) (*domain.MonthlySnapshot, error) {
	query := `SELECT ` + snapshotColumns + ` FROM monthly_snapshots WHERE owner_id = $1 AND employee_id = $2 AND month = $3 AND year = $4;`
	m, err := scanSnapshot(r.Pool.QueryRow(ctx, query, ownerID, employeeID, month, year))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find snapshot: %w", err)
	}
	snapshot := mapping.ToDomainMonthlySnapshot(*m)
	return &snapshot, nil
}

func (r *PgxSnapshotRepository) FindSnapshots(ctx context.Context, ownerID string, employeeID string) ([]domain.MonthlySnapshot, error) {
	query := `SELECT ` + snapshotColumns + ` FROM monthly_snapshots WHERE owner_id = $1 AND employee_id = $2 ORDER BY year DESC, month DESC;`
	rows, err := r.Pool.Query(ctx, query, ownerID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", translateConnError(err))
	}
	defer rows.Close()

	modelSnapshots := []models.MonthlySnapshot{}
	for rows.Next() {
		m, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot row: %w", err)
		}
		modelSnapshots = append(modelSnapshots, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating snapshot rows: %w", rows.Err())
	}

	return mapping.ToDomainMonthlySnapshotSlice(modelSnapshots), nil
}

// SealPeriod inserts the snapshot and clears the employee's open period as one
// transaction. The unique index on (owner_id, employee_id, month, year) turns
// a concurrent seal into ErrConflict. If the clear fails and the rollback
// fails too, the snapshot may have been persisted without its entries being
// removed; that partial state is reported as ErrPartialArchival for the
// caller to flag.
func (r *PgxSnapshotRepository) SealPeriod(ctx context.Context, snapshot domain.MonthlySnapshot) error {
	m := mapping.ToModelMonthlySnapshot(snapshot)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	insertQuery := `
        INSERT INTO monthly_snapshots (snapshot_id, owner_id, employee_id, month, year, total_present, total_half_day, total_absent,
            total_earnings, total_amount_taken, sealed_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err = tx.Exec(ctx, insertQuery,
		m.SnapshotID,
		m.OwnerID,
		m.EmployeeID,
		m.Month,
		m.Year,
		m.TotalPresent,
		m.TotalHalfDay,
		m.TotalAbsent,
		m.TotalEarnings,
		m.TotalAmountTaken,
		m.SealedAt,
	)
	if err != nil {
		_ = r.Rollback(ctx, tx)
		if isUniqueViolation(err) {
			return fmt.Errorf("period %d/%d already sealed: %w", m.Month, m.Year, apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to insert snapshot: %w", translateConnError(err))
	}

	clearQuery := `DELETE FROM attendance_entries WHERE owner_id = $1 AND employee_id = $2;`
	if _, err := tx.Exec(ctx, clearQuery, m.OwnerID, m.EmployeeID); err != nil {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			return fmt.Errorf("clear failed (%v) and rollback failed (%v): %w", err, rbErr, apperrors.ErrPartialArchival)
		}
		return fmt.Errorf("failed to clear open period during seal: %w", translateConnError(err))
	}

	if err := r.Commit(ctx, tx); err != nil {
		return err
	}
	return nil
}

func (r *PgxSnapshotRepository) RecordAnomaly(ctx context.Context, anomaly domain.ArchivalAnomaly) error {
	m := mapping.ToModelArchivalAnomaly(anomaly)
	query := `
        INSERT INTO archival_anomalies (anomaly_id, owner_id, employee_id, month, year, snapshot_id, detail, flagged_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.AnomalyID,
		m.OwnerID,
		m.EmployeeID,
		m.Month,
		m.Year,
		m.SnapshotID,
		m.Detail,
		m.FlaggedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record archival anomaly: %w", translateConnError(err))
	}
	return nil
}
