package services

import (
	portsrepo "github.com/staffkhata/staffkhata_backend/internal/core/ports/repositories"
	portssvc "github.com/staffkhata/staffkhata_backend/internal/core/ports/services"
	"github.com/staffkhata/staffkhata_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// One guard instance shared by attendance and archival so upserts observe
	// in-flight seals.
	shiftGuard := NewShiftGuard()

	container.Owner = NewOwnerService(repos.OwnerRepo)
	container.Employee = NewEmployeeService(repos.EmployeeRepo)
	container.Attendance = NewAttendanceService(repos.AttendanceRepo, repos.EmployeeRepo, shiftGuard)
	container.Archival = NewArchivalService(repos.SnapshotRepo, repos.AttendanceRepo, repos.EmployeeRepo, shiftGuard)

	container.TokenService = NewTokenService(cfg, container.Owner)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
