package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/staffkhata/staffkhata_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	ownerRepo := newPgxOwnerRepository(dbPool)
	employeeRepo := newPgxEmployeeRepository(dbPool)
	attendanceRepo := newPgxAttendanceRepository(dbPool)
	snapshotRepo := newPgxSnapshotRepository(dbPool)

	return portsrepo.RepositoryProvider{
		OwnerRepo:      ownerRepo,
		EmployeeRepo:   employeeRepo,
		AttendanceRepo: attendanceRepo,
		SnapshotRepo:   snapshotRepo,
	}
}
